package ledgerservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/internal/pg"
	"github.com/botomics/bomwallet/pkg/money"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockTransactionRepo, *MockFreezePolicy, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	txRepo := NewMockTransactionRepo(ctrl)
	policy := NewMockFreezePolicy(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(accountRepo, txRepo, policy, txManager)
	defer ctrl.Finish()
	return service, accountRepo, txRepo, policy, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
}

func TestCredit(t *testing.T) {
	account := &domain.Account{ID: "tg:100500", Balance: 0, Currency: "BOM"}

	tests := []struct {
		name          string
		txType        domain.TransactionType
		amount        money.Money
		prepareMock   func(accountRepo *MockAccountRepo, txRepo *MockTransactionRepo, policy *MockFreezePolicy)
		expectedError error
	}{
		{
			name:   "Credit succeeds",
			txType: domain.TypeDeposit,
			amount: money.FromMinor(2550),
			prepareMock: func(accountRepo *MockAccountRepo, txRepo *MockTransactionRepo, policy *MockFreezePolicy) {
				accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(account, nil)
				policy.EXPECT().IsCreditAllowed(account, domain.TypeDeposit).Return(true)
				accountRepo.EXPECT().ApplyDelta(gomock.Any(), "tg:100500", money.FromMinor(2550)).Return(money.FromMinor(2550), nil)
				txRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
					assert.NotEmpty(t, tx.ID)
					assert.Equal(t, domain.TypeDeposit, tx.Type)
					assert.Equal(t, int64(2550), tx.Amount)
					assert.Equal(t, domain.StatusCompleted, tx.Status)
					assert.Nil(t, tx.RelatedTransactionID)
					return tx, nil
				})
			},
		},
		{
			name:          "Unknown transaction type",
			txType:        domain.TransactionType("bogus"),
			amount:        money.FromMinor(100),
			expectedError: domain.ErrInvalidTransactionType,
		},
		{
			name:          "Debit-only type rejected",
			txType:        domain.TypeWithdrawal,
			amount:        money.FromMinor(100),
			expectedError: domain.ErrInvalidTransactionType,
		},
		{
			name:          "Zero amount rejected",
			txType:        domain.TypeDeposit,
			amount:        money.FromMinor(0),
			expectedError: money.ErrInvalidAmount,
		},
		{
			name:   "Frozen account blocks disallowed credit",
			txType: domain.TypeReward,
			amount: money.FromMinor(100),
			prepareMock: func(accountRepo *MockAccountRepo, txRepo *MockTransactionRepo, policy *MockFreezePolicy) {
				frozen := &domain.Account{ID: "tg:100500", Frozen: true}
				accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(frozen, nil)
				policy.EXPECT().IsCreditAllowed(frozen, domain.TypeReward).Return(false)
			},
			expectedError: domain.ErrAccountFrozen,
		},
		{
			name:   "Repo error surfaces",
			txType: domain.TypeDeposit,
			amount: money.FromMinor(100),
			prepareMock: func(accountRepo *MockAccountRepo, txRepo *MockTransactionRepo, policy *MockFreezePolicy) {
				accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, txRepo, policy, txManager := NewMock(t)
			passthroughTx(txManager)
			if tt.prepareMock != nil {
				tt.prepareMock(accountRepo, txRepo, policy)
			}

			tx, err := service.Credit(context.Background(), "tg:100500", tt.txType, tt.amount, "test credit")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, tx)
				var target error
				switch {
				case errors.Is(tt.expectedError, domain.ErrInvalidTransactionType),
					errors.Is(tt.expectedError, money.ErrInvalidAmount),
					errors.Is(tt.expectedError, domain.ErrAccountFrozen):
					target = tt.expectedError
				}
				if target != nil {
					assert.ErrorIs(t, err, target)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, tx)
			}
		})
	}
}

func TestRefund(t *testing.T) {
	service, accountRepo, txRepo, policy, txManager := NewMock(t)
	passthroughTx(txManager)

	account := &domain.Account{ID: "tg:100500", Frozen: true}
	accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(account, nil)
	policy.EXPECT().IsCreditAllowed(account, domain.TypeRefund).Return(true)
	accountRepo.EXPECT().ApplyDelta(gomock.Any(), "tg:100500", money.FromMinor(2500)).Return(money.FromMinor(2500), nil)
	txRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
		assert.Equal(t, domain.TypeRefund, tx.Type)
		assert.NotNil(t, tx.RelatedTransactionID)
		assert.Equal(t, "tx-reserved", *tx.RelatedTransactionID)
		return tx, nil
	})

	tx, err := service.Refund(context.Background(), "tg:100500", money.FromMinor(2500), "withdrawal rejected", "tx-reserved")
	assert.NoError(t, err)
	assert.NotNil(t, tx)
}

func TestDebit(t *testing.T) {
	account := &domain.Account{ID: "tg:100500", Balance: 10000}

	tests := []struct {
		name          string
		amount        money.Money
		prepareMock   func(accountRepo *MockAccountRepo, txRepo *MockTransactionRepo, policy *MockFreezePolicy)
		expectedError error
	}{
		{
			name:   "Debit succeeds",
			amount: money.FromMinor(2500),
			prepareMock: func(accountRepo *MockAccountRepo, txRepo *MockTransactionRepo, policy *MockFreezePolicy) {
				accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(account, nil)
				policy.EXPECT().IsDebitAllowed(account).Return(true)
				accountRepo.EXPECT().ApplyDelta(gomock.Any(), "tg:100500", money.FromMinor(-2500)).Return(money.FromMinor(7500), nil)
				txRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
					assert.Equal(t, domain.StatusCompleted, tx.Status)
					assert.Equal(t, int64(2500), tx.Amount)
					return tx, nil
				})
			},
		},
		{
			name:   "Frozen account blocks debit",
			amount: money.FromMinor(2500),
			prepareMock: func(accountRepo *MockAccountRepo, txRepo *MockTransactionRepo, policy *MockFreezePolicy) {
				frozen := &domain.Account{ID: "tg:100500", Frozen: true}
				accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(frozen, nil)
				policy.EXPECT().IsDebitAllowed(frozen).Return(false)
			},
			expectedError: domain.ErrAccountFrozen,
		},
		{
			name:   "Insufficient funds",
			amount: money.FromMinor(99999),
			prepareMock: func(accountRepo *MockAccountRepo, txRepo *MockTransactionRepo, policy *MockFreezePolicy) {
				accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(account, nil)
				policy.EXPECT().IsDebitAllowed(account).Return(true)
				accountRepo.EXPECT().ApplyDelta(gomock.Any(), "tg:100500", money.FromMinor(-99999)).Return(money.Money(0), domain.ErrInsufficientFunds)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, txRepo, policy, txManager := NewMock(t)
			passthroughTx(txManager)
			if tt.prepareMock != nil {
				tt.prepareMock(accountRepo, txRepo, policy)
			}

			tx, err := service.Debit(context.Background(), "tg:100500", domain.TypeWithdrawal, tt.amount, "test debit")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tx)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, tx)
			}
		})
	}
}

func TestReserve(t *testing.T) {
	service, accountRepo, txRepo, policy, txManager := NewMock(t)
	passthroughTx(txManager)

	account := &domain.Account{ID: "tg:100500", Balance: 10000}
	accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(account, nil)
	policy.EXPECT().IsDebitAllowed(account).Return(true)
	accountRepo.EXPECT().ApplyDelta(gomock.Any(), "tg:100500", money.FromMinor(-2500)).Return(money.FromMinor(7500), nil)
	txRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
		assert.Equal(t, domain.StatusPending, tx.Status)
		return tx, nil
	})

	tx, err := service.Reserve(context.Background(), "tg:100500", domain.TypeWithdrawal, money.FromMinor(2500), "withdrawal reservation")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPending, tx.Status)
}

func TestTransfer(t *testing.T) {
	t.Run("Transfer succeeds and links both legs", func(t *testing.T) {
		service, accountRepo, txRepo, policy, txManager := NewMock(t)
		passthroughTx(txManager)

		from := &domain.Account{ID: "tg:200600", Balance: 10000}
		to := &domain.Account{ID: "tg:100500", Balance: 0}

		accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:200600").Return(from, nil)
		accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(to, nil)
		policy.EXPECT().IsDebitAllowed(from).Return(true)
		policy.EXPECT().IsCreditAllowed(to, domain.TypeTransfer).Return(true)

		// Deltas must be applied in ascending account id order even though the
		// source id sorts after the destination.
		gomock.InOrder(
			accountRepo.EXPECT().ApplyDelta(gomock.Any(), "tg:100500", money.FromMinor(1000)).Return(money.FromMinor(1000), nil),
			accountRepo.EXPECT().ApplyDelta(gomock.Any(), "tg:200600", money.FromMinor(-1000)).Return(money.FromMinor(9000), nil),
		)

		var debitID string
		txRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, "tg:200600", tx.AccountID)
			debitID = tx.ID
			return tx, nil
		})
		txRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, "tg:100500", tx.AccountID)
			assert.Equal(t, debitID, *tx.RelatedTransactionID)
			return tx, nil
		})
		txRepo.EXPECT().SetRelated(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		debitTx, creditTx, err := service.Transfer(context.Background(), "tg:200600", "tg:100500", money.FromMinor(1000), "donation")
		assert.NoError(t, err)
		assert.Equal(t, creditTx.ID, *debitTx.RelatedTransactionID)
		assert.Equal(t, debitTx.ID, *creditTx.RelatedTransactionID)
	})

	t.Run("Same account rejected", func(t *testing.T) {
		service, _, _, _, _ := NewMock(t)

		_, _, err := service.Transfer(context.Background(), "tg:100500", "tg:100500", money.FromMinor(1000), "")
		assert.ErrorIs(t, err, domain.ErrSameAccountTransfer)
	})

	t.Run("Frozen source blocks transfer", func(t *testing.T) {
		service, accountRepo, _, policy, txManager := NewMock(t)
		passthroughTx(txManager)

		from := &domain.Account{ID: "tg:100500", Frozen: true}
		to := &domain.Account{ID: "tg:200600"}
		accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(from, nil)
		accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:200600").Return(to, nil)
		policy.EXPECT().IsDebitAllowed(from).Return(false)

		_, _, err := service.Transfer(context.Background(), "tg:100500", "tg:200600", money.FromMinor(1000), "")
		assert.ErrorIs(t, err, domain.ErrAccountFrozen)
	})

	t.Run("Insufficient funds aborts both legs", func(t *testing.T) {
		service, accountRepo, _, policy, txManager := NewMock(t)
		passthroughTx(txManager)

		from := &domain.Account{ID: "tg:100500", Balance: 100}
		to := &domain.Account{ID: "tg:200600"}
		accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:100500").Return(from, nil)
		accountRepo.EXPECT().GetOrCreate(gomock.Any(), "tg:200600").Return(to, nil)
		policy.EXPECT().IsDebitAllowed(from).Return(true)
		policy.EXPECT().IsCreditAllowed(to, domain.TypeTransfer).Return(true)
		accountRepo.EXPECT().ApplyDelta(gomock.Any(), "tg:100500", money.FromMinor(-1000)).Return(money.Money(0), domain.ErrInsufficientFunds)

		_, _, err := service.Transfer(context.Background(), "tg:100500", "tg:200600", money.FromMinor(1000), "")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})
}

func TestCompleteAndReleaseTransaction(t *testing.T) {
	service, _, txRepo, _, _ := NewMock(t)

	txRepo.EXPECT().UpdateStatus(gomock.Any(), "tx-1", domain.StatusCompleted).Return(nil)
	assert.NoError(t, service.CompleteTransaction(context.Background(), "tx-1"))

	txRepo.EXPECT().UpdateStatus(gomock.Any(), "tx-1", domain.StatusCancelled).Return(nil)
	assert.NoError(t, service.ReleaseTransaction(context.Background(), "tx-1"))

	txRepo.EXPECT().UpdateStatus(gomock.Any(), "tx-2", domain.StatusCompleted).Return(domain.ErrInvalidState)
	assert.ErrorIs(t, service.CompleteTransaction(context.Background(), "tx-2"), domain.ErrInvalidState)
}

func TestGetBalance(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(accountRepo *MockAccountRepo)
		expected      money.Money
		expectedError error
	}{
		{
			name: "Returns balance",
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().GetByID(gomock.Any(), "tg:100500").Return(&domain.Account{ID: "tg:100500", Balance: 12550}, nil)
			},
			expected: money.FromMinor(12550),
		},
		{
			name: "Unknown account",
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().GetByID(gomock.Any(), "tg:100500").Return(nil, nil)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name: "Repo error",
			prepareMock: func(accountRepo *MockAccountRepo) {
				accountRepo.EXPECT().GetByID(gomock.Any(), "tg:100500").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, _, _ := NewMock(t)
			tt.prepareMock(accountRepo)

			balance, err := service.GetBalance(context.Background(), "tg:100500")
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
		})
	}
}

func TestListTransactions(t *testing.T) {
	service, _, txRepo, _, _ := NewMock(t)

	expected := []domain.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}
	txRepo.EXPECT().
		ListByAccount(gomock.Any(), "tg:100500", domain.TransactionFilter{Type: domain.TypeDeposit}).
		Return(expected, nil)

	txs, err := service.ListTransactions(context.Background(), "tg:100500", domain.TransactionFilter{Type: domain.TypeDeposit})
	assert.NoError(t, err)
	assert.Equal(t, expected, txs)
}

// memAccountRepo is a minimal in-memory AccountRepo with the same atomic
// balance guard the SQL layer enforces, used to exercise concurrent debits.
type memAccountRepo struct {
	mu       sync.Mutex
	balances map[string]int64
}

func (m *memAccountRepo) GetOrCreate(_ context.Context, accountID string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.balances[accountID]; !ok {
		m.balances[accountID] = 0
	}
	return &domain.Account{ID: accountID, Balance: m.balances[accountID], Currency: domain.Currency}, nil
}

func (m *memAccountRepo) GetByID(_ context.Context, accountID string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	balance, ok := m.balances[accountID]
	if !ok {
		return nil, nil
	}
	return &domain.Account{ID: accountID, Balance: balance, Currency: domain.Currency}, nil
}

func (m *memAccountRepo) ApplyDelta(_ context.Context, accountID string, delta money.Money) (money.Money, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	balance, ok := m.balances[accountID]
	if !ok {
		return 0, domain.ErrAccountNotFound
	}
	next := balance + delta.Minor()
	if next < 0 {
		return 0, domain.ErrInsufficientFunds
	}
	m.balances[accountID] = next
	return money.FromMinor(next), nil
}

type memTxRepo struct {
	mu  sync.Mutex
	txs []domain.Transaction
}

func (m *memTxRepo) Append(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = append(m.txs, *tx)
	return tx, nil
}

func (m *memTxRepo) UpdateStatus(context.Context, string, domain.TransactionStatus) error {
	return nil
}

func (m *memTxRepo) GetByID(context.Context, string) (*domain.Transaction, error) {
	return nil, nil
}

func (m *memTxRepo) SetRelated(context.Context, string, string) error { return nil }
func (m *memTxRepo) ListByAccount(context.Context, string, domain.TransactionFilter) ([]domain.Transaction, error) {
	return nil, nil
}

type allowAll struct{}

func (allowAll) IsDebitAllowed(*domain.Account) bool                          { return true }
func (allowAll) IsCreditAllowed(*domain.Account, domain.TransactionType) bool { return true }

type passthroughManager struct{}

func (passthroughManager) Begin(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }

func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	accounts := &memAccountRepo{balances: map[string]int64{"tg:100500": 1000}}
	txs := &memTxRepo{}
	service := New(accounts, txs, allowAll{}, passthroughManager{})

	const attempts = 50
	debit := money.FromMinor(100) // only 10 of 50 can fit into the balance

	var wg sync.WaitGroup
	var successes int64
	var mu sync.Mutex

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Debit(context.Background(), "tg:100500", domain.TypeDonation, debit, "load test")
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else if !errors.Is(err, domain.ErrInsufficientFunds) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), successes)

	balance, err := service.GetBalance(context.Background(), "tg:100500")
	assert.NoError(t, err)
	assert.Equal(t, money.Money(0), balance)
	assert.True(t, balance >= 0, "balance must never go negative")
}
