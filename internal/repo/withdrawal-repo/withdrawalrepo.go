package withdrawalrepo

import (
	"context"
	"errors"

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

const columns = `id, account_id, amount, usd_value, method, payout_details, status,
        rejection_reason, processed_by, processed_at, transaction_id, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests (id, account_id, amount, usd_value, method, payout_details, status, transaction_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		req.ID, req.AccountID, req.Amount, req.USDValue, req.Method, req.PayoutDetails, req.Status, req.TransactionID,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + columns + ` FROM withdrawal_requests WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// LockByID reads a request with FOR UPDATE. Must run inside a TXManager
// transaction; it serializes competing state transitions on the same request.
func (r *Repository) LockByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error) {
	query := `SELECT ` + columns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var req domain.WithdrawalRequest
	err := row.Scan(
		&req.ID, &req.AccountID, &req.Amount, &req.USDValue, &req.Method, &req.PayoutDetails, &req.Status,
		&req.RejectionReason, &req.ProcessedBy, &req.ProcessedAt, &req.TransactionID, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't read withdrawal request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

// Update writes the mutable workflow fields of a request.
func (r *Repository) Update(ctx context.Context, req *domain.WithdrawalRequest) error {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, rejection_reason = $2, processed_by = $3, processed_at = $4, updated_at = now()
        WHERE id = $5
    `
	tag, err := r.db.Exec(ctx, query, req.Status, req.RejectionReason, req.ProcessedBy, req.ProcessedAt, req.ID)
	if err != nil {
		zap.L().Error("can't update withdrawal request", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWithdrawalNotFound
	}
	return nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID string) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + columns + `
        FROM withdrawal_requests
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, accountID)
}

// ListByStatus returns the oldest requests in the given status, used by the
// payout dispatcher to pick up approved work.
func (r *Repository) ListByStatus(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + columns + `
        FROM withdrawal_requests
        WHERE status = $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	return r.list(ctx, query, status, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.WithdrawalRequest
	for rows.Next() {
		var req domain.WithdrawalRequest
		err := rows.Scan(
			&req.ID, &req.AccountID, &req.Amount, &req.USDValue, &req.Method, &req.PayoutDetails, &req.Status,
			&req.RejectionReason, &req.ProcessedBy, &req.ProcessedAt, &req.TransactionID, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
