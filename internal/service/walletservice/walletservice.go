package walletservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/pkg/money"
)

// Engine is the transaction-engine surface exposed to bot-facing callers.
type Engine interface {
	Credit(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string) (*domain.Transaction, error)
	Debit(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string) (*domain.Transaction, error)
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount money.Money, description string) (*domain.Transaction, *domain.Transaction, error)
	GetBalance(ctx context.Context, accountID string) (money.Money, error)
	ListTransactions(ctx context.Context, accountID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

type AccountRepo interface {
	GetOrCreate(ctx context.Context, accountID string) (*domain.Account, error)
}

type Workflow interface {
	Request(ctx context.Context, accountID string, amount money.Money, method domain.WithdrawalMethod, payoutDetails string) (*domain.WithdrawalRequest, error)
	Cancel(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)
	GetByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.WithdrawalRequest, error)
}

// Service is the narrow wallet API handed to collaborator layers (the bot
// backend). It deals only in opaque user ids and amounts; everything about
// presentation stays on the caller's side.
type Service struct {
	engine      Engine
	accountRepo AccountRepo
	workflow    Workflow
}

func New(engine Engine, accountRepo AccountRepo, workflow Workflow) *Service {
	return &Service{
		engine:      engine,
		accountRepo: accountRepo,
		workflow:    workflow,
	}
}

// GetOrCreateWallet returns the wallet for userID, creating it on first
// access.
func (s *Service) GetOrCreateWallet(ctx context.Context, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get or create wallet", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) GetBalance(ctx context.Context, userID string) (money.Money, error) {
	return s.engine.GetBalance(ctx, userID)
}

func (s *Service) Deposit(ctx context.Context, userID string, amount money.Money, description string) (*domain.Transaction, error) {
	return s.engine.Credit(ctx, userID, domain.TypeDeposit, amount, description)
}

func (s *Service) Transfer(ctx context.Context, fromUserID, toUserID string, amount money.Money, description string) (*domain.Transaction, *domain.Transaction, error) {
	return s.engine.Transfer(ctx, fromUserID, toUserID, amount, description)
}

func (s *Service) RequestWithdrawal(ctx context.Context, userID string, amount money.Money, method domain.WithdrawalMethod, payoutDetails string) (*domain.WithdrawalRequest, error) {
	if _, err := s.accountRepo.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	return s.workflow.Request(ctx, userID, amount, method, payoutDetails)
}

// CancelWithdrawal cancels a request on behalf of its owner. Requests that
// belong to another account are reported as not found.
func (s *Service) CancelWithdrawal(ctx context.Context, userID, requestID string) (*domain.WithdrawalRequest, error) {
	req, err := s.workflow.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.AccountID != userID {
		return nil, domain.ErrWithdrawalNotFound
	}
	return s.workflow.Cancel(ctx, requestID)
}

func (s *Service) ListWithdrawals(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	return s.workflow.ListByAccount(ctx, userID)
}

func (s *Service) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.engine.ListTransactions(ctx, userID, filter)
}
