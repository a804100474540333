package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/internal/dto"
	pkgauth "github.com/botomics/bomwallet/pkg/auth"
	"github.com/botomics/bomwallet/pkg/money"
	"github.com/botomics/bomwallet/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, login, password string) (*domain.Admin, error)
	Authenticate(ctx context.Context, login, password string) (*domain.Admin, error)
	GenerateToken(adminID int) (string, error)
}

type FreezeService interface {
	Freeze(ctx context.Context, accountID, reason string) error
	Unfreeze(ctx context.Context, accountID string) error
	IsDebitAllowed(account *domain.Account) bool
	IsCreditAllowed(account *domain.Account, t domain.TransactionType) bool
}

// Engine is the transaction-engine surface used for manual adjustments.
type Engine interface {
	Credit(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string) (*domain.Transaction, error)
	Debit(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string) (*domain.Transaction, error)
}

type AdminHandler struct {
	authService   AuthService
	freezeService FreezeService
	engine        Engine
}

func New(authService AuthService, freezeService FreezeService, engine Engine) *AdminHandler {
	return &AdminHandler{
		authService:   authService,
		freezeService: freezeService,
		engine:        engine,
	}
}

// Register godoc
//
//	@Summary		Register a new admin
//	@Description	Create a new admin account with login and password
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Admin already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/register [post]
func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	admin, err := h.authService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	token, err := h.authService.GenerateToken(admin.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "Admin successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate admin
//	@Description	Log in with an admin account and get a JWT token
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	admin, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(admin.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Admin successfully authenticated",
	})
}

// Freeze godoc
//
//	@Summary		Freeze an account
//	@Description	Put an administrative hold on the account. Debits are blocked while frozen.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		string				true	"Account id"
//	@Param			request		body		dto.FreezeRequestDTO	true	"Freeze reason"
//	@Success		200			{object}	utils.Response
//	@Failure		401			{object}	utils.Response	"Admin not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts/{accountID}/freeze [post]
func (h *AdminHandler) Freeze(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var req dto.FreezeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.freezeService.Freeze(r.Context(), accountID, req.Reason); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "account frozen"})
}

// Unfreeze godoc
//
//	@Summary		Unfreeze an account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			accountID	path		string	true	"Account id"
//	@Success		200			{object}	utils.Response
//	@Failure		401			{object}	utils.Response	"Admin not authorized"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts/{accountID}/unfreeze [post]
func (h *AdminHandler) Unfreeze(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	if err := h.freezeService.Unfreeze(r.Context(), accountID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "account unfrozen"})
}

// Adjust godoc
//
//	@Summary		Credit an account manually
//	@Description	Apply an admin_adjustment credit, allowed even on frozen accounts.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		string					true	"Account id"
//	@Param			request		body		dto.AdjustmentRequestDTO	true	"Adjustment payload"
//	@Success		200			{object}	dto.TransactionResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid amount"
//	@Failure		401			{object}	utils.Response	"Admin not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts/{accountID}/credit [post]
func (h *AdminHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, domain.TypeAdminAdjustment)
}

// Deduct godoc
//
//	@Summary		Debit an account manually
//	@Description	Apply an admin_deduction debit. Blocked on frozen accounts like any other debit.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		string					true	"Account id"
//	@Param			request		body		dto.AdjustmentRequestDTO	true	"Deduction payload"
//	@Success		200			{object}	dto.TransactionResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid amount"
//	@Failure		401			{object}	utils.Response	"Admin not authorized"
//	@Failure		402			{object}	utils.Response	"Insufficient funds"
//	@Failure		403			{object}	utils.Response	"Account frozen"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts/{accountID}/debit [post]
func (h *AdminHandler) Deduct(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, domain.TypeAdminDeduction)
}

func (h *AdminHandler) adjust(w http.ResponseWriter, r *http.Request, txType domain.TransactionType) {
	accountID := chi.URLParam(r, "accountID")
	adminID := strconv.Itoa(r.Context().Value(pkgauth.AdminIDKey).(int))

	var req dto.AdjustmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := money.FromFloat(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	description := req.Description + " (by admin " + adminID + ")"
	var tx *domain.Transaction
	if txType == domain.TypeAdminDeduction {
		tx, err = h.engine.Debit(r.Context(), accountID, txType, amount, description)
	} else {
		tx, err = h.engine.Credit(r.Context(), accountID, txType, amount, description)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrAccountFrozen):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, money.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidTransactionType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      money.FromMinor(tx.Amount).Float(),
		Currency:    tx.Currency,
		Description: tx.Description,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt,
	})
}
