package withdrawal

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

// Service is the workflow surface for admin review of withdrawal requests.
type Service interface {
	Approve(ctx context.Context, requestID, adminID string) (*domain.WithdrawalRequest, error)
	Complete(ctx context.Context, requestID, adminID string) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, requestID, adminID, reason string) (*domain.WithdrawalRequest, error)
	GetByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)
	ListByStatus(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// ListPending godoc
//
//	@Summary		List withdrawal requests by status
//	@Description	Return withdrawal requests in the given status (default pending), oldest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"	default(pending)
//	@Success		200		{array}		dto.WithdrawalResponseDTO
//	@Success		204		{object}	utils.Response	"Nothing to review"
//	@Failure		401		{object}	utils.Response	"Admin not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *WithdrawalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	status := domain.WithdrawalStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.WithdrawalPending
	}

	wds, err := h.withdrawalService.ListByStatus(r.Context(), status, 100)
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

// Approve godoc
//
//	@Summary		Approve a pending withdrawal
//	@Description	Move the request to processing so the payout can be executed.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			requestID	path		string	true	"Withdrawal request id"
//	@Success		200			{object}	dto.WithdrawalResponseDTO
//	@Failure		401			{object}	utils.Response	"Admin not authorized"
//	@Failure		404			{object}	utils.Response	"Request not found"
//	@Failure		409			{object}	utils.Response	"Request is not pending"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{requestID}/approve [post]
func (h *WithdrawalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, requestID, adminID string) (*domain.WithdrawalRequest, error) {
		return h.withdrawalService.Approve(ctx, requestID, adminID)
	})
}

// Complete godoc
//
//	@Summary		Complete a processing withdrawal
//	@Description	Confirm the external payout succeeded. Finalizes the reserved transaction; no balance change.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			requestID	path		string	true	"Withdrawal request id"
//	@Success		200			{object}	dto.WithdrawalResponseDTO
//	@Failure		401			{object}	utils.Response	"Admin not authorized"
//	@Failure		404			{object}	utils.Response	"Request not found"
//	@Failure		409			{object}	utils.Response	"Request is not processing"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{requestID}/complete [post]
func (h *WithdrawalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(ctx context.Context, requestID, adminID string) (*domain.WithdrawalRequest, error) {
		return h.withdrawalService.Complete(ctx, requestID, adminID)
	})
}

// Reject godoc
//
//	@Summary		Reject a withdrawal
//	@Description	Reject a pending or processing request and refund the reserved amount.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		string							true	"Withdrawal request id"
//	@Param			request		body		dto.RejectWithdrawalRequestDTO	true	"Rejection reason"
//	@Success		200			{object}	dto.WithdrawalResponseDTO
//	@Failure		401			{object}	utils.Response	"Admin not authorized"
//	@Failure		404			{object}	utils.Response	"Request not found"
//	@Failure		409			{object}	utils.Response	"Request already settled"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{requestID}/reject [post]
func (h *WithdrawalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req dto.RejectWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.transition(w, r, func(ctx context.Context, requestID, adminID string) (*domain.WithdrawalRequest, error) {
		return h.withdrawalService.Reject(ctx, requestID, adminID, req.Reason)
	})
}

func (h *WithdrawalHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, requestID, adminID string) (*domain.WithdrawalRequest, error)) {
	requestID := chi.URLParam(r, "requestID")
	adminID := strconv.Itoa(r.Context().Value(pkgauth.AdminIDKey).(int))

	wd, err := fn(r.Context(), requestID, adminID)
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
