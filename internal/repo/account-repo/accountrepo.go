package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/internal/pg"
	"github.com/botomics/bomwallet/pkg/money"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// GetOrCreate returns the account for id, inserting a zero-balance unfrozen
// row if none exists yet. The ON CONFLICT clause makes concurrent first
// accesses for the same id collapse into a single insert.
func (r *Repository) GetOrCreate(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (id, balance, currency)
        VALUES ($1, 0, $2)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, accountID, domain.Currency)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	account, err := r.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *Repository) GetByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
        SELECT id, balance, currency, frozen, freeze_reason, created_at
        FROM accounts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, accountID)
	var account domain.Account
	err := row.Scan(&account.ID, &account.Balance, &account.Currency, &account.Frozen, &account.FreezeReason, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// ApplyDelta atomically adds delta to the account balance. The guard in the
// WHERE clause rejects any debit that would take the balance below zero, so
// concurrent overdrawing debits cannot both succeed.
func (r *Repository) ApplyDelta(ctx context.Context, accountID string, delta money.Money) (money.Money, error) {
	query := `
        UPDATE accounts
        SET balance = balance + $1
        WHERE id = $2 AND balance + $1 >= 0
        RETURNING balance
    `
	var newBalance int64
	err := r.db.QueryRow(ctx, query, delta.Minor(), accountID).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			account, gerr := r.GetByID(ctx, accountID)
			if gerr != nil {
				return 0, gerr
			}
			if account == nil {
				return 0, domain.ErrAccountNotFound
			}
			return 0, domain.ErrInsufficientFunds
		}
		zap.L().Error("failed to apply balance delta", zap.Error(err))
		return 0, err
	}
	return money.FromMinor(newBalance), nil
}

// SetFrozen toggles the administrative hold on an account. Repeating the same
// state is a no-op, which keeps freeze and unfreeze idempotent.
func (r *Repository) SetFrozen(ctx context.Context, accountID string, frozen bool, reason string) error {
	query := `
        UPDATE accounts
        SET frozen = $1, freeze_reason = $2
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, frozen, reason, accountID)
	if err != nil {
		zap.L().Error("failed to set account freeze state", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
