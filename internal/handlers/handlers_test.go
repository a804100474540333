package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/botomics/bomwallet/docs"
	"github.com/botomics/bomwallet/internal/handlers/admin"
	"github.com/botomics/bomwallet/internal/handlers/wallet"
	"github.com/botomics/bomwallet/internal/handlers/withdrawal"
	"github.com/botomics/bomwallet/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AdminService:      admin.NewMockAuthService(ctrl),
		FreezeService:     admin.NewMockFreezeService(ctrl),
		LedgerService:     admin.NewMockEngine(ctrl),
		WalletService:     wallet.NewMockService(ctrl),
		WithdrawalService: withdrawal.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdminHandler := NewMockAdminHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)

	mockAdminHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Transfer(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().CancelWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AdminHandler:      mockAdminHandler,
		WalletHandler:     mockWalletHandler,
		WithdrawalHandler: mockWithdrawalHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/admin/register", http.StatusOK},
		{"POST", "/api/admin/login", http.StatusOK},
		{"POST", "/api/wallet/tg:100500", http.StatusOK},
		{"GET", "/api/wallet/tg:100500/balance", http.StatusOK},
		{"POST", "/api/wallet/tg:100500/deposit", http.StatusOK},
		{"POST", "/api/wallet/tg:100500/transfer", http.StatusOK},
		{"GET", "/api/wallet/tg:100500/transactions", http.StatusOK},
		{"POST", "/api/wallet/tg:100500/withdrawals", http.StatusOK},
		{"GET", "/api/wallet/tg:100500/withdrawals", http.StatusOK},
		{"POST", "/api/wallet/tg:100500/withdrawals/wr-1/cancel", http.StatusOK},
		{"POST", "/api/admin/accounts/tg:100500/freeze", http.StatusUnauthorized},
		{"POST", "/api/admin/accounts/tg:100500/unfreeze", http.StatusUnauthorized},
		{"POST", "/api/admin/accounts/tg:100500/credit", http.StatusUnauthorized},
		{"POST", "/api/admin/accounts/tg:100500/debit", http.StatusUnauthorized},
		{"GET", "/api/admin/withdrawals", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/wr-1/approve", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/wr-1/complete", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/wr-1/reject", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
