package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/internal/dto"
	"github.com/botomics/bomwallet/pkg/money"
	"github.com/botomics/bomwallet/pkg/utils"
)

type Service interface {
	GetOrCreateWallet(ctx context.Context, userID string) (*domain.Account, error)
	GetBalance(ctx context.Context, userID string) (money.Money, error)
	Deposit(ctx context.Context, userID string, amount money.Money, description string) (*domain.Transaction, error)
	Transfer(ctx context.Context, fromUserID, toUserID string, amount money.Money, description string) (*domain.Transaction, *domain.Transaction, error)
	RequestWithdrawal(ctx context.Context, userID string, amount money.Money, method domain.WithdrawalMethod, payoutDetails string) (*domain.WithdrawalRequest, error)
	CancelWithdrawal(ctx context.Context, userID, requestID string) (*domain.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get or create a wallet
//	@Description	Return the wallet for the user, creating a zero-balance one on first access.
//	@Tags			Wallet
//	@Produce		json
//	@Param			userID	path		string	true	"Opaque user identifier"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userID} [post]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	account, err := h.walletService.GetOrCreateWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		AccountID: account.ID,
		Balance:   money.FromMinor(account.Balance).Float(),
		Currency:  account.Currency,
		Frozen:    account.Frozen,
	})
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Return the current BOM balance for the user.
//	@Tags			Wallet
//	@Produce		json
//	@Param			userID	path		string	true	"Opaque user identifier"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userID}/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Wallet not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:  balance.Float(),
		Currency: domain.Currency,
	})
}

// Deposit godoc
//
//	@Summary		Deposit BOM
//	@Description	Credit the user's wallet with a deposit transaction.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string					true	"Opaque user identifier"
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		403		{object}	utils.Response	"Account frozen"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userID}/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := money.FromFloat(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.walletService.Deposit(r.Context(), userID, amount, req.Description)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

// Transfer godoc
//
//	@Summary		Transfer BOM between wallets
//	@Description	Move BOM from this user's wallet to another. Both legs commit atomically.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string					true	"Source user identifier"
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer payload"
//	@Success		200		{object}	dto.TransferResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or same-account transfer"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Account frozen"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userID}/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := money.FromFloat(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	debit, credit, err := h.walletService.Transfer(r.Context(), userID, req.To, amount, req.Description)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		Debit:  toTransactionDTO(debit),
		Credit: toTransactionDTO(credit),
	})
}

// GetTransactions godoc
//
//	@Summary		List wallet transactions
//	@Description	Return the user's transaction history, newest first. Optional type and status filters.
//	@Tags			Wallet
//	@Produce		json
//	@Param			userID	path		string	true	"Opaque user identifier"
//	@Param			type	query		string	false	"Transaction type filter"
//	@Param			status	query		string	false	"Transaction status filter"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Success		204		{object}	utils.Response	"No transactions"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userID}/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	filter := domain.TransactionFilter{
		Type:   domain.TransactionType(r.URL.Query().Get("type")),
		Status: domain.TransactionStatus(r.URL.Query().Get("status")),
	}

	txs, err := h.walletService.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i, tx := range txs {
		response[i] = toTransactionDTO(&tx)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RequestWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Reserve funds and create a withdrawal request pending admin review.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string						true	"Opaque user identifier"
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount, method or payout details"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Account frozen"
//	@Failure		422		{object}	utils.Response	"Amount below minimum"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userID}/withdrawals [post]
func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := money.FromFloat(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	wd, err := h.walletService.RequestWithdrawal(r.Context(), userID, amount, domain.WithdrawalMethod(req.Method), req.PayoutDetails)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrInvalidMethod), errors.Is(err, domain.ErrInvalidPayoutDetails):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithLedgerError(w, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(wd))
}

// CancelWithdrawal godoc
//
//	@Summary		Cancel a pending withdrawal
//	@Description	Cancel the user's own withdrawal request before admin approval and refund the reserved amount.
//	@Tags			Wallet
//	@Produce		json
//	@Param			userID		path		string	true	"Opaque user identifier"
//	@Param			requestID	path		string	true	"Withdrawal request id"
//	@Success		200			{object}	dto.WithdrawalResponseDTO
//	@Failure		404			{object}	utils.Response	"Request not found"
//	@Failure		409			{object}	utils.Response	"Request is no longer pending"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userID}/withdrawals/{requestID}/cancel [post]
func (h *WalletHandler) CancelWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	requestID := chi.URLParam(r, "requestID")

	wd, err := h.walletService.CancelWithdrawal(r.Context(), userID, requestID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWithdrawalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Withdrawal request not found")
		case errors.Is(err, domain.ErrInvalidState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(wd))
}

// GetWithdrawals godoc
//
//	@Summary		List the user's withdrawal requests
//	@Tags			Wallet
//	@Produce		json
//	@Param			userID	path		string	true	"Opaque user identifier"
//	@Success		200		{array}		dto.WithdrawalResponseDTO
//	@Success		204		{object}	utils.Response	"No withdrawal requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{userID}/withdrawals [get]
func (h *WalletHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	wds, err := h.walletService.ListWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(wds) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No withdrawal requests")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(wds))
	for i := range wds {
		response[i] = toWithdrawalDTO(&wds[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondWithLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrSameAccountTransfer):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrAccountFrozen):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toTransactionDTO(tx *domain.Transaction) dto.TransactionResponseDTO {
	related := ""
	if tx.RelatedTransactionID != nil {
		related = *tx.RelatedTransactionID
	}
	return dto.TransactionResponseDTO{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      money.FromMinor(tx.Amount).Float(),
		Currency:    tx.Currency,
		Description: tx.Description,
		Status:      string(tx.Status),
		RelatedID:   related,
		CreatedAt:   tx.CreatedAt,
	}
}

func toWithdrawalDTO(wd *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:              wd.ID,
		AccountID:       wd.AccountID,
		Amount:          money.FromMinor(wd.Amount).Float(),
		USDValue:        money.FromMinor(wd.USDValue).Float(),
		Method:          string(wd.Method),
		Status:          string(wd.Status),
		RejectionReason: wd.RejectionReason,
		ProcessedBy:     wd.ProcessedBy,
		ProcessedAt:     wd.ProcessedAt,
		CreatedAt:       wd.CreatedAt,
	}
}
