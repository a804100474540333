package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/botomics/bomwallet/docs"
	adminhandlers "github.com/botomics/bomwallet/internal/handlers/admin"
	wallethandlers "github.com/botomics/bomwallet/internal/handlers/wallet"
	withdrawalhandlers "github.com/botomics/bomwallet/internal/handlers/withdrawal"
	"github.com/botomics/bomwallet/internal/service"
	"github.com/botomics/bomwallet/pkg/auth"
)

type AdminHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Freeze(w http.ResponseWriter, r *http.Request)
	Unfreeze(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	Deduct(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	CancelWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AdminHandler      AdminHandler
	WalletHandler     WalletHandler
	WithdrawalHandler WithdrawalHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AdminHandler:      adminhandlers.New(s.AdminService, s.FreezeService, s.LedgerService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/wallet", func(r chi.Router) {
		r.Route("/{userID}", func(r chi.Router) {
			r.Post("/", h.WalletHandler.GetWallet)
			r.Get("/balance", h.WalletHandler.GetBalance)
			r.Post("/deposit", h.WalletHandler.Deposit)
			r.Post("/transfer", h.WalletHandler.Transfer)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WalletHandler.RequestWithdrawal)
				r.Get("/", h.WalletHandler.GetWithdrawals)
				r.Post("/{requestID}/cancel", h.WalletHandler.CancelWithdrawal)
			})
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/register", h.AdminHandler.Register)
		r.Post("/login", h.AdminHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/accounts/{accountID}", func(r chi.Router) {
				r.Post("/freeze", h.AdminHandler.Freeze)
				r.Post("/unfreeze", h.AdminHandler.Unfreeze)
				r.Post("/credit", h.AdminHandler.Adjust)
				r.Post("/debit", h.AdminHandler.Deduct)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.WithdrawalHandler.ListPending)
				r.Post("/{requestID}/approve", h.WithdrawalHandler.Approve)
				r.Post("/{requestID}/complete", h.WithdrawalHandler.Complete)
				r.Post("/{requestID}/reject", h.WithdrawalHandler.Reject)
			})
		})
	})

	return r
}
