package withdrawalservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/internal/pg"
	"github.com/botomics/bomwallet/pkg/money"
	"github.com/botomics/bomwallet/pkg/validate"
)

// Engine is the slice of the transaction engine the workflow needs.
type Engine interface {
	Reserve(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string) (*domain.Transaction, error)
	Refund(ctx context.Context, accountID string, amount money.Money, description, relatedTxID string) (*domain.Transaction, error)
	CompleteTransaction(ctx context.Context, txID string) error
	ReleaseTransaction(ctx context.Context, txID string) error
}

type WithdrawalRepo interface {
	Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error)
	LockByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error)
	Update(ctx context.Context, req *domain.WithdrawalRequest) error
	ListByAccount(ctx context.Context, accountID string) ([]domain.WithdrawalRequest, error)
	ListByStatus(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.WithdrawalRequest, error)
}

// Service drives the withdrawal request state machine:
// pending -> processing -> completed, pending -> rejected|cancelled,
// processing -> rejected. Terminal states never transition again.
type Service struct {
	engine         Engine
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager
	minAmount      money.Money
}

func New(engine Engine, withdrawalRepo WithdrawalRepo, txManager pg.TXManager, minAmount money.Money) *Service {
	return &Service{
		engine:         engine,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
		minAmount:      minAmount,
	}
}

// Request reserves the funds up front and creates the request in pending
// status. If the account cannot cover the amount nothing is recorded.
func (s *Service) Request(ctx context.Context, accountID string, amount money.Money, method domain.WithdrawalMethod, payoutDetails string) (*domain.WithdrawalRequest, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMethod, method)
	}
	if err := validatePayoutDetails(method, payoutDetails); err != nil {
		return nil, err
	}
	if amount.Compare(s.minAmount) < 0 {
		return nil, fmt.Errorf("%w: minimum is %s", domain.ErrBelowMinimum, s.minAmount.Display(domain.Currency))
	}

	var req *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		reservation, err := s.engine.Reserve(ctx, accountID, domain.TypeWithdrawal, amount, "withdrawal reservation")
		if err != nil {
			return err
		}
		req, err = s.withdrawalRepo.Create(ctx, &domain.WithdrawalRequest{
			ID:            uuid.NewString(),
			AccountID:     accountID,
			Amount:        amount.Minor(),
			USDValue:      amount.Minor(),
			Method:        method,
			PayoutDetails: payoutDetails,
			Status:        domain.WithdrawalPending,
			TransactionID: reservation.ID,
		})
		return err
	})
	if err != nil {
		zap.L().Error("withdrawal request failed", zap.String("accountID", accountID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("withdrawal requested",
		zap.String("requestID", req.ID),
		zap.String("accountID", accountID),
		zap.Int64("amount", req.Amount),
	)
	return req, nil
}

// Approve moves a pending request to processing.
func (s *Service) Approve(ctx context.Context, requestID, adminID string) (*domain.WithdrawalRequest, error) {
	return s.transition(ctx, requestID, func(req *domain.WithdrawalRequest) error {
		if req.Status != domain.WithdrawalPending {
			return fmt.Errorf("%w: cannot approve %s request", domain.ErrInvalidState, req.Status)
		}
		req.Status = domain.WithdrawalProcessing
		req.ProcessedBy = adminID
		return nil
	})
}

// Complete confirms the external payout succeeded. The reservation was
// balance-effective at request time; this only finalizes the records.
func (s *Service) Complete(ctx context.Context, requestID, adminID string) (*domain.WithdrawalRequest, error) {
	return s.transition(ctx, requestID, func(req *domain.WithdrawalRequest) error {
		if req.Status != domain.WithdrawalProcessing {
			return fmt.Errorf("%w: cannot complete %s request", domain.ErrInvalidState, req.Status)
		}
		req.Status = domain.WithdrawalCompleted
		req.ProcessedBy = adminID
		now := time.Now()
		req.ProcessedAt = &now
		return s.engine.CompleteTransaction(ctx, req.TransactionID)
	})
}

// Reject refuses a pending or processing request and refunds the reserved
// amount in full.
func (s *Service) Reject(ctx context.Context, requestID, adminID, reason string) (*domain.WithdrawalRequest, error) {
	return s.transition(ctx, requestID, func(req *domain.WithdrawalRequest) error {
		if req.Status != domain.WithdrawalPending && req.Status != domain.WithdrawalProcessing {
			return fmt.Errorf("%w: cannot reject %s request", domain.ErrInvalidState, req.Status)
		}
		req.Status = domain.WithdrawalRejected
		req.RejectionReason = reason
		req.ProcessedBy = adminID
		now := time.Now()
		req.ProcessedAt = &now
		return s.compensate(ctx, req, "withdrawal rejected")
	})
}

// Cancel lets the account owner back out before an admin approves. After
// approval the payout may already be in flight, so cancel is refused.
func (s *Service) Cancel(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	return s.transition(ctx, requestID, func(req *domain.WithdrawalRequest) error {
		if req.Status != domain.WithdrawalPending {
			return fmt.Errorf("%w: cannot cancel %s request", domain.ErrInvalidState, req.Status)
		}
		req.Status = domain.WithdrawalCancelled
		return s.compensate(ctx, req, "withdrawal cancelled")
	})
}

func (s *Service) compensate(ctx context.Context, req *domain.WithdrawalRequest, description string) error {
	if err := s.engine.ReleaseTransaction(ctx, req.TransactionID); err != nil {
		return err
	}
	_, err := s.engine.Refund(ctx, req.AccountID, money.FromMinor(req.Amount), description, req.TransactionID)
	return err
}

// transition locks the request row, applies fn and persists the result, all
// inside one database transaction.
func (s *Service) transition(ctx context.Context, requestID string, fn func(req *domain.WithdrawalRequest) error) (*domain.WithdrawalRequest, error) {
	var req *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.withdrawalRepo.LockByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrWithdrawalNotFound
		}
		if err := fn(req); err != nil {
			return err
		}
		return s.withdrawalRepo.Update(ctx, req)
	})
	if err != nil {
		zap.L().Error("withdrawal transition failed", zap.String("requestID", requestID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("withdrawal transitioned",
		zap.String("requestID", req.ID),
		zap.String("status", string(req.Status)),
	)
	return req, nil
}

func (s *Service) GetByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	req, err := s.withdrawalRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrWithdrawalNotFound
	}
	return req, nil
}

func (s *Service) ListByAccount(ctx context.Context, accountID string) ([]domain.WithdrawalRequest, error) {
	return s.withdrawalRepo.ListByAccount(ctx, accountID)
}

func (s *Service) ListByStatus(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.WithdrawalRequest, error) {
	return s.withdrawalRepo.ListByStatus(ctx, status, limit)
}

func validatePayoutDetails(method domain.WithdrawalMethod, details string) error {
	switch method {
	case domain.MethodPaypal:
		if !validate.IsEmail(details) {
			return fmt.Errorf("%w: paypal details must be an e-mail", domain.ErrInvalidPayoutDetails)
		}
	case domain.MethodBankTransfer:
		if !validate.IsCardNumber(details) {
			return fmt.Errorf("%w: bank details must be a valid card number", domain.ErrInvalidPayoutDetails)
		}
	case domain.MethodCrypto:
		if !validate.IsCryptoAddress(details) {
			return fmt.Errorf("%w: not a wallet address", domain.ErrInvalidPayoutDetails)
		}
	default:
		if details == "" {
			return fmt.Errorf("%w: details required", domain.ErrInvalidPayoutDetails)
		}
	}
	return nil
}
