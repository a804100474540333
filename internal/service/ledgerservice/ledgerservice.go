package ledgerservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/internal/pg"
	"github.com/botomics/bomwallet/pkg/money"
)

type AccountRepo interface {
	GetOrCreate(ctx context.Context, accountID string) (*domain.Account, error)
	GetByID(ctx context.Context, accountID string) (*domain.Account, error)
	ApplyDelta(ctx context.Context, accountID string, delta money.Money) (money.Money, error)
}

type TransactionRepo interface {
	Append(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	SetRelated(ctx context.Context, id, relatedID string) error
	ListByAccount(ctx context.Context, accountID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// FreezePolicy gates mutations on frozen accounts. Consulted before any
// balance change.
type FreezePolicy interface {
	IsDebitAllowed(account *domain.Account) bool
	IsCreditAllowed(account *domain.Account, t domain.TransactionType) bool
}

// Service is the transaction engine: every balance mutation in the system
// goes through Credit, Debit, Reserve or Transfer, each of which runs as a
// single database transaction.
type Service struct {
	accountRepo AccountRepo
	txRepo      TransactionRepo
	policy      FreezePolicy
	txManager   pg.TXManager
}

func New(accountRepo AccountRepo, txRepo TransactionRepo, policy FreezePolicy, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		policy:      policy,
		txManager:   txManager,
	}
}

// creditDisallowed lists types that only ever move value out of an account.
var creditDisallowed = map[domain.TransactionType]struct{}{
	domain.TypeWithdrawal:     {},
	domain.TypeAdminDeduction: {},
}

func (s *Service) ValidateType(t domain.TransactionType) bool {
	return t.Valid()
}

// Credit adds amount to the account and appends a completed transaction.
func (s *Service) Credit(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string) (*domain.Transaction, error) {
	return s.credit(ctx, accountID, txType, amount, description, nil)
}

// Refund credits amount back and links the record to the transaction being
// compensated.
func (s *Service) Refund(ctx context.Context, accountID string, amount money.Money, description, relatedTxID string) (*domain.Transaction, error) {
	return s.credit(ctx, accountID, domain.TypeRefund, amount, description, &relatedTxID)
}

func (s *Service) credit(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string, relatedTxID *string) (*domain.Transaction, error) {
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, txType)
	}
	if _, ok := creditDisallowed[txType]; ok {
		return nil, fmt.Errorf("%w: %q is debit-only", domain.ErrInvalidTransactionType, txType)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", money.ErrInvalidAmount)
	}

	var tx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetOrCreate(ctx, accountID)
		if err != nil {
			return err
		}
		if !s.policy.IsCreditAllowed(account, txType) {
			return domain.ErrAccountFrozen
		}
		if _, err := s.accountRepo.ApplyDelta(ctx, accountID, amount); err != nil {
			return err
		}
		tx, err = s.txRepo.Append(ctx, &domain.Transaction{
			ID:                   uuid.NewString(),
			AccountID:            accountID,
			Type:                 txType,
			Amount:               amount.Minor(),
			Currency:             domain.Currency,
			Description:          description,
			Status:               domain.StatusCompleted,
			RelatedTransactionID: relatedTxID,
		})
		return err
	})
	if err != nil {
		zap.L().Error("credit failed", zap.String("accountID", accountID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// Debit removes amount from the account and appends a completed transaction.
// Debits are always blocked on frozen accounts.
func (s *Service) Debit(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string) (*domain.Transaction, error) {
	return s.debit(ctx, accountID, txType, amount, description, domain.StatusCompleted)
}

// Reserve debits amount immediately but records the transaction as pending.
// The withdrawal workflow later completes or releases it.
func (s *Service) Reserve(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string) (*domain.Transaction, error) {
	return s.debit(ctx, accountID, txType, amount, description, domain.StatusPending)
}

func (s *Service) debit(ctx context.Context, accountID string, txType domain.TransactionType, amount money.Money, description string, status domain.TransactionStatus) (*domain.Transaction, error) {
	if !txType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, txType)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", money.ErrInvalidAmount)
	}

	var tx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetOrCreate(ctx, accountID)
		if err != nil {
			return err
		}
		if !s.policy.IsDebitAllowed(account) {
			return domain.ErrAccountFrozen
		}
		if _, err := s.accountRepo.ApplyDelta(ctx, accountID, amount.Neg()); err != nil {
			return err
		}
		tx, err = s.txRepo.Append(ctx, &domain.Transaction{
			ID:          uuid.NewString(),
			AccountID:   accountID,
			Type:        txType,
			Amount:      amount.Minor(),
			Currency:    domain.Currency,
			Description: description,
			Status:      status,
		})
		return err
	})
	if err != nil {
		zap.L().Error("debit failed", zap.String("accountID", accountID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// Transfer debits the source and credits the destination in one database
// transaction. Balance deltas are applied in ascending account-id order so
// that concurrent transfers over the same pair cannot deadlock. The two
// records reference each other via RelatedTransactionID.
func (s *Service) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount money.Money, description string) (*domain.Transaction, *domain.Transaction, error) {
	if fromAccountID == toAccountID {
		return nil, nil, domain.ErrSameAccountTransfer
	}
	if !amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: amount must be positive", money.ErrInvalidAmount)
	}

	var debitTx, creditTx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		from, err := s.accountRepo.GetOrCreate(ctx, fromAccountID)
		if err != nil {
			return err
		}
		to, err := s.accountRepo.GetOrCreate(ctx, toAccountID)
		if err != nil {
			return err
		}
		if !s.policy.IsDebitAllowed(from) {
			return domain.ErrAccountFrozen
		}
		if !s.policy.IsCreditAllowed(to, domain.TypeTransfer) {
			return domain.ErrAccountFrozen
		}

		// Row locks are taken in id order regardless of transfer direction.
		deltas := []struct {
			accountID string
			delta     money.Money
		}{
			{fromAccountID, amount.Neg()},
			{toAccountID, amount},
		}
		if deltas[0].accountID > deltas[1].accountID {
			deltas[0], deltas[1] = deltas[1], deltas[0]
		}
		for _, d := range deltas {
			if _, err := s.accountRepo.ApplyDelta(ctx, d.accountID, d.delta); err != nil {
				return err
			}
		}

		debitTx, err = s.txRepo.Append(ctx, &domain.Transaction{
			ID:          uuid.NewString(),
			AccountID:   fromAccountID,
			Type:        domain.TypeTransfer,
			Amount:      amount.Minor(),
			Currency:    domain.Currency,
			Description: description,
			Status:      domain.StatusCompleted,
		})
		if err != nil {
			return err
		}
		creditTx, err = s.txRepo.Append(ctx, &domain.Transaction{
			ID:                   uuid.NewString(),
			AccountID:            toAccountID,
			Type:                 domain.TypeTransfer,
			Amount:               amount.Minor(),
			Currency:             domain.Currency,
			Description:          description,
			Status:               domain.StatusCompleted,
			RelatedTransactionID: &debitTx.ID,
		})
		if err != nil {
			return err
		}
		if err := s.txRepo.SetRelated(ctx, debitTx.ID, creditTx.ID); err != nil {
			return err
		}
		debitTx.RelatedTransactionID = &creditTx.ID
		return nil
	})
	if err != nil {
		zap.L().Error("transfer failed",
			zap.String("from", fromAccountID),
			zap.String("to", toAccountID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	return debitTx, creditTx, nil
}

// CompleteTransaction finalizes a pending reservation.
func (s *Service) CompleteTransaction(ctx context.Context, txID string) error {
	return s.txRepo.UpdateStatus(ctx, txID, domain.StatusCompleted)
}

// ReleaseTransaction cancels a pending reservation record. The compensating
// credit is the caller's responsibility.
func (s *Service) ReleaseTransaction(ctx context.Context, txID string) error {
	return s.txRepo.UpdateStatus(ctx, txID, domain.StatusCancelled)
}

// GetBalance returns the current balance, failing with ErrAccountNotFound for
// ids that never touched the wallet.
func (s *Service) GetBalance(ctx context.Context, accountID string) (money.Money, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, domain.ErrAccountNotFound
	}
	return money.FromMinor(account.Balance), nil
}

func (s *Service) ListTransactions(ctx context.Context, accountID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.txRepo.ListByAccount(ctx, accountID, filter)
}
