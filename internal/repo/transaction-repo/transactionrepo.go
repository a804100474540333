package transactionrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Append persists an immutable transaction record. A colliding id fails with
// domain.ErrDuplicateTransaction.
func (r *Repository) Append(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (id, account_id, type, amount, currency, description, status, related_transaction_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query,
		tx.ID, tx.AccountID, tx.Type, tx.Amount, tx.Currency, tx.Description, tx.Status, tx.RelatedTransactionID,
	).Scan(&tx.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicateTransaction
		}
		zap.L().Error("can't append transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

// UpdateStatus moves a pending transaction to its final status. Rows already
// in a terminal status are left untouched and reported as ErrInvalidState.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus) error {
	query := `
        UPDATE transactions
        SET status = $1
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
        SELECT id, account_id, type, amount, currency, description, status, related_transaction_id, created_at
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.AccountID, &tx.Type, &tx.Amount, &tx.Currency, &tx.Description, &tx.Status, &tx.RelatedTransactionID, &tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

// SetRelated links a transaction to its counterpart, e.g. the two legs of a
// transfer or a refund to its reservation.
func (r *Repository) SetRelated(ctx context.Context, id, relatedID string) error {
	query := `
        UPDATE transactions
        SET related_transaction_id = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, relatedID, id)
	if err != nil {
		zap.L().Error("failed to link transactions", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `
        SELECT id, account_id, type, amount, currency, description, status, related_transaction_id, created_at
        FROM transactions
        WHERE account_id = $1
    `
	args := []any{accountID}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Type, &tx.Amount, &tx.Currency, &tx.Description, &tx.Status, &tx.RelatedTransactionID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
