package repo

import (
	"github.com/botomics/bomwallet/internal/pg"
	accountrepo "github.com/botomics/bomwallet/internal/repo/account-repo"
	adminrepo "github.com/botomics/bomwallet/internal/repo/admin-repo"
	transactionrepo "github.com/botomics/bomwallet/internal/repo/transaction-repo"
	withdrawalrepo "github.com/botomics/bomwallet/internal/repo/withdrawal-repo"
	"github.com/botomics/bomwallet/internal/service/adminservice"
	"github.com/botomics/bomwallet/internal/service/ledgerservice"
	"github.com/botomics/bomwallet/internal/service/withdrawalservice"
)

type Repositories struct {
	AccountRepo     *accountrepo.Repository
	TransactionRepo ledgerservice.TransactionRepo
	WithdrawalRepo  withdrawalservice.WithdrawalRepo
	AdminRepo       adminservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)
	adminRepo := adminrepo.New(conn)

	return &Repositories{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		WithdrawalRepo:  withdrawalRepo,
		AdminRepo:       adminRepo,
	}
}
