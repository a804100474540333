package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

var (
	insertQuery = `
        INSERT INTO transactions (id, account_id, type, amount, currency, description, status, related_transaction_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	statusQuery = `
        UPDATE transactions
        SET status = $1
        WHERE id = $2 AND status = 'pending'
    `
	selectQuery = `
        SELECT id, account_id, type, amount, currency, description, status, related_transaction_id, created_at
        FROM transactions
        WHERE id = $1
    `
	relatedQuery = `
        UPDATE transactions
        SET related_transaction_id = $1
        WHERE id = $2
    `
	listQuery = `
        SELECT id, account_id, type, amount, currency, description, status, related_transaction_id, created_at
        FROM transactions
        WHERE account_id = $1
    `
)

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tx := &domain.Transaction{
		ID:        "7d8f3a52-9a91-4f0a-b7b4-6f4ba2f0c001",
		AccountID: "tg:100500",
		Type:      domain.TypeDeposit,
		Amount:    2550,
		Currency:  "BOM",
		Status:    domain.StatusCompleted,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Appends transaction",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"created_at"}).AddRow(now)
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(tx.ID, tx.AccountID, tx.Type, tx.Amount, tx.Currency, tx.Description, tx.Status, tx.RelatedTransactionID).
					WillReturnRows(rows)
			},
		},
		{
			name: "Duplicate id rejected",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(tx.ID, tx.AccountID, tx.Type, tx.Amount, tx.Currency, tx.Description, tx.Status, tx.RelatedTransactionID).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrDuplicateTransaction,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
					WithArgs(tx.ID, tx.AccountID, tx.Type, tx.Amount, tx.Currency, tx.Description, tx.Status, tx.RelatedTransactionID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Append(context.Background(), tx)

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
				if errors.Is(tt.expectErr, domain.ErrDuplicateTransaction) {
					assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        string
		status    domain.TransactionStatus
		mockSetup func()
		expectErr error
	}{
		{
			name:   "Pending transaction completed",
			id:     "tx-1",
			status: domain.StatusCompleted,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(statusQuery)).
					WithArgs(domain.StatusCompleted, "tx-1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:   "Terminal transaction untouched",
			id:     "tx-2",
			status: domain.StatusCancelled,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(statusQuery)).
					WithArgs(domain.StatusCancelled, "tx-2").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: domain.ErrInvalidState,
		},
		{
			name:   "Database error",
			id:     "tx-3",
			status: domain.StatusCompleted,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(statusQuery)).
					WithArgs(domain.StatusCompleted, "tx-3").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), tt.id, tt.status)

			if tt.expectErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	related := "tx-related"

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.Transaction
	}{
		{
			name: "Existing transaction",
			id:   "tx-1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "account_id", "type", "amount", "currency", "description", "status", "related_transaction_id", "created_at"}).
					AddRow("tx-1", "tg:100500", domain.TypeTransfer, int64(1000), "BOM", "donation", domain.StatusCompleted, &related, now)
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs("tx-1").
					WillReturnRows(rows)
			},
			result: &domain.Transaction{
				ID:                   "tx-1",
				AccountID:            "tg:100500",
				Type:                 domain.TypeTransfer,
				Amount:               1000,
				Currency:             "BOM",
				Description:          "donation",
				Status:               domain.StatusCompleted,
				RelatedTransactionID: &related,
				CreatedAt:            now,
			},
		},
		{
			name: "Unknown transaction returns nil",
			id:   "tx-missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs("tx-missing").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   "tx-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
					WithArgs("tx-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_SetRelated(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(relatedQuery)).
		WithArgs("tx-2", "tx-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetRelated(context.Background(), "tx-1", "tx-2")
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(relatedQuery)).
		WithArgs("tx-2", "tx-1").
		WillReturnError(errors.New("database error"))

	err = repo.SetRelated(context.Background(), "tx-1", "tx-2")
	assert.Error(t, err)
}

func TestRepository_ListByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		filter    domain.TransactionFilter
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name:   "All transactions",
			filter: domain.TransactionFilter{},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "account_id", "type", "amount", "currency", "description", "status", "related_transaction_id", "created_at"}).
					AddRow("tx-1", "tg:100500", domain.TypeDeposit, int64(1000), "BOM", "", domain.StatusCompleted, nil, now).
					AddRow("tx-2", "tg:100500", domain.TypeWithdrawal, int64(500), "BOM", "", domain.StatusPending, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(listQuery) + " ORDER BY created_at DESC").
					WithArgs("tg:100500").
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name:   "Filtered by type and status with limit",
			filter: domain.TransactionFilter{Type: domain.TypeDeposit, Status: domain.StatusCompleted, Limit: 1},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "account_id", "type", "amount", "currency", "description", "status", "related_transaction_id", "created_at"}).
					AddRow("tx-1", "tg:100500", domain.TypeDeposit, int64(1000), "BOM", "", domain.StatusCompleted, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(listQuery+" AND type = $2 AND status = $3")+" ORDER BY created_at DESC"+regexp.QuoteMeta(" LIMIT $4")).
					WithArgs("tg:100500", domain.TypeDeposit, domain.StatusCompleted, 1).
					WillReturnRows(rows)
			},
			count: 1,
		},
		{
			name:   "Database error",
			filter: domain.TransactionFilter{},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
					WithArgs("tg:100500").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByAccount(context.Background(), "tg:100500", tt.filter)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}
