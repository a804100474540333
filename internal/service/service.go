package service

import (
	"go.uber.org/zap"

	"github.com/botomics/bomwallet/internal/config"
	"github.com/botomics/bomwallet/internal/handlers/admin"
	"github.com/botomics/bomwallet/internal/handlers/wallet"
	"github.com/botomics/bomwallet/internal/handlers/withdrawal"
	"github.com/botomics/bomwallet/internal/pg"
	"github.com/botomics/bomwallet/internal/repo"
	"github.com/botomics/bomwallet/internal/service/adminservice"
	"github.com/botomics/bomwallet/internal/service/freezeservice"
	"github.com/botomics/bomwallet/internal/service/ledgerservice"
	"github.com/botomics/bomwallet/internal/service/walletservice"
	"github.com/botomics/bomwallet/internal/service/withdrawalservice"
	pkgauth "github.com/botomics/bomwallet/pkg/auth"
	"github.com/botomics/bomwallet/pkg/money"
)

type Services struct {
	AdminService      admin.AuthService
	FreezeService     admin.FreezeService
	LedgerService     admin.Engine
	WalletService     wallet.Service
	WithdrawalService withdrawal.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	freezeService := freezeservice.New(repo.AccountRepo, cfg.FrozenCreditTypes)
	ledgerService := ledgerservice.New(repo.AccountRepo, repo.TransactionRepo, freezeService, txManager)

	minAmount, err := money.FromFloat(cfg.WithdrawalMin)
	if err != nil {
		zap.L().Warn("invalid withdrawal minimum in config, using 20 BOM", zap.Float64("value", cfg.WithdrawalMin))
		minAmount = money.FromMinor(20 * money.Scale)
	}
	withdrawalService := withdrawalservice.New(ledgerService, repo.WithdrawalRepo, txManager, minAmount)
	walletService := walletservice.New(ledgerService, repo.AccountRepo, withdrawalService)
	adminService := adminservice.New(repo.AdminRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AdminService:      adminService,
		FreezeService:     freezeService,
		LedgerService:     ledgerService,
		WalletService:     walletService,
		WithdrawalService: withdrawalService,
	}
}
