package service

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/botomics/bomwallet/internal/config"
	"github.com/botomics/bomwallet/internal/pg"
	"github.com/botomics/bomwallet/internal/repo"
	accountrepo "github.com/botomics/bomwallet/internal/repo/account-repo"
	"github.com/botomics/bomwallet/internal/service/adminservice"
	"github.com/botomics/bomwallet/internal/service/ledgerservice"
	"github.com/botomics/bomwallet/internal/service/withdrawalservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockTransactionRepo := ledgerservice.NewMockTransactionRepo(ctrl)
	mockWithdrawalRepo := withdrawalservice.NewMockWithdrawalRepo(ctrl)
	mockAdminRepo := adminservice.NewMockRepo(ctrl)

	repos := &repo.Repositories{
		AccountRepo:     accountrepo.New(mockPool, mockTxManager),
		TransactionRepo: mockTransactionRepo,
		WithdrawalRepo:  mockWithdrawalRepo,
		AdminRepo:       mockAdminRepo,
	}

	cfg := &config.Config{
		WithdrawalMin:     20,
		FrozenCreditTypes: "admin_adjustment,refund",
	}
	services := New(repos, mockTxManager, cfg)

	assert.NotNil(t, services.AdminService)
	assert.NotNil(t, services.FreezeService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.WithdrawalService)
}
