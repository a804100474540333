package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/botomics/bomwallet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var withdrawalColumns = []string{
	"id", "account_id", "amount", "usd_value", "method", "payout_details", "status",
	"rejection_reason", "processed_by", "processed_at", "transaction_id", "created_at", "updated_at",
}

func pendingRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(withdrawalColumns).
		AddRow("wr-1", "tg:100500", int64(2500), 25.0, domain.MethodPaypal, "user@example.com", domain.WithdrawalPending,
			"", "", nil, "tx-1", now, now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	insertQuery := `
        INSERT INTO withdrawal_requests (id, account_id, amount, usd_value, method, payout_details, status, transaction_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at
    `
	req := &domain.WithdrawalRequest{
		ID:            "wr-1",
		AccountID:     "tg:100500",
		Amount:        2500,
		USDValue:      25.0,
		Method:        domain.MethodPaypal,
		PayoutDetails: "user@example.com",
		Status:        domain.WithdrawalPending,
		TransactionID: "tx-1",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Creates request",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now)
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(req.ID, req.AccountID, req.Amount, req.USDValue, req.Method, req.PayoutDetails, req.Status, req.TransactionID).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(req.ID, req.AccountID, req.Amount, req.USDValue, req.Method, req.PayoutDetails, req.Status, req.TransactionID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), req)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, result.CreatedAt)
				assert.Equal(t, now, result.UpdatedAt)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `SELECT ` + columns + ` FROM withdrawal_requests WHERE id = $1`

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing request",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("wr-1").
					WillReturnRows(pendingRow(now))
			},
			found: true,
		},
		{
			name: "Unknown request returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("wr-1").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("wr-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), "wr-1")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, "wr-1", result.ID)
				assert.Equal(t, domain.WithdrawalPending, result.Status)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `SELECT ` + columns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("wr-1").
		WillReturnRows(pendingRow(now))

	result, err := repo.LockByID(context.Background(), "wr-1")
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "tg:100500", result.AccountID)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	updateQuery := `
        UPDATE withdrawal_requests
        SET status = $1, rejection_reason = $2, processed_by = $3, processed_at = $4, updated_at = now()
        WHERE id = $5
    `
	req := &domain.WithdrawalRequest{
		ID:          "wr-1",
		Status:      domain.WithdrawalProcessing,
		ProcessedBy: "42",
		ProcessedAt: &now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Updates request",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs(req.Status, req.RejectionReason, req.ProcessedBy, req.ProcessedAt, req.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Unknown request",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs(req.Status, req.RejectionReason, req.ProcessedBy, req.ProcessedAt, req.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: domain.ErrWithdrawalNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs(req.Status, req.RejectionReason, req.ProcessedBy, req.ProcessedAt, req.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), req)

			if tt.expectErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectErr, domain.ErrWithdrawalNotFound) {
					assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_ListByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        SELECT ` + columns + `
        FROM withdrawal_requests
        WHERE account_id = $1
        ORDER BY created_at DESC
    `

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("tg:100500").
		WillReturnRows(pendingRow(now))

	result, err := repo.ListByAccount(context.Background(), "tg:100500")
	assert.NoError(t, err)
	assert.Len(t, result, 1)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("tg:100500").
		WillReturnError(errors.New("database error"))

	result, err = repo.ListByAccount(context.Background(), "tg:100500")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRepository_ListByStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        SELECT ` + columns + `
        FROM withdrawal_requests
        WHERE status = $1
        ORDER BY created_at ASC
        LIMIT $2
    `

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(domain.WithdrawalPending, 100).
		WillReturnRows(pendingRow(now))

	result, err := repo.ListByStatus(context.Background(), domain.WithdrawalPending, 100)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, domain.WithdrawalPending, result[0].Status)
}
