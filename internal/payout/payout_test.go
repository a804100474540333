package payout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/botomics/bomwallet/internal/config"
	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockWorkflow, *clients.MockHTTPClientI) {
	cfg := &config.Config{PayoutAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workflow := NewMockWorkflow(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, workflow, client)
	return service, workflow, client
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processRequests(t *testing.T) {
	tests := []struct {
		name         string
		mockList     func(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.WithdrawalRequest, error)
		mockAddTask  func(ctx context.Context, task Task) error
		expectedErr  error
		requestCount int
	}{
		{
			name: "successfully dispatches requests",
			mockList: func(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.WithdrawalRequest, error) {
				return []domain.WithdrawalRequest{
					{ID: "wr-proc-1", AccountID: "user1", Status: domain.WithdrawalProcessing},
					{ID: "wr-proc-2", AccountID: "user2", Status: domain.WithdrawalProcessing},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			expectedErr:  nil,
			requestCount: 2,
		},
		{
			name: "fails when listing requests",
			mockList: func(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.WithdrawalRequest, error) {
				return nil, fmt.Errorf("failed to fetch withdrawals for payout")
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return nil
			},
			expectedErr:  fmt.Errorf("failed to fetch withdrawals for payout"),
			requestCount: 0,
		},
		{
			name: "error in workerPool AddTask",
			mockList: func(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.WithdrawalRequest, error) {
				return []domain.WithdrawalRequest{
					{ID: "wr-proc-3", AccountID: "user1", Status: domain.WithdrawalProcessing},
				}, nil
			},
			mockAddTask: func(ctx context.Context, task Task) error {
				return fmt.Errorf("failed to add task to worker pool")
			},
			expectedErr:  fmt.Errorf("failed to add task to worker pool"),
			requestCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			workflow := NewMockWorkflow(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			workflow.EXPECT().
				ListByStatus(gomock.Any(), domain.WithdrawalProcessing, gomock.Any()).
				DoAndReturn(tt.mockList).
				Times(1)
			for i := 0; i < tt.requestCount; i++ {
				workerPool.EXPECT().
					AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockAddTask).
					AnyTimes()
			}

			service := &Service{
				workflow:   workflow,
				workerPool: workerPool,
				limit:      2,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			ctx := context.Background()
			service.processRequests(ctx)

			if tt.expectedErr != nil {
				assert.Error(t, tt.expectedErr, tt.expectedErr)
			}
		})
	}
}

func TestService_handleRequest(t *testing.T) {
	testCases := []struct {
		name          string
		request       domain.WithdrawalRequest
		httpStatus    int
		responseBody  string
		expectError   string
		cancelContext bool
		retryError    error
		retryHeaders  http.Header
		wantComplete  bool
		wantReject    bool
		wantReason    string
	}{
		{
			name:         "Gateway confirms payout",
			request:      domain.WithdrawalRequest{ID: "wr-1", AccountID: "user1", Amount: 2500, Method: domain.MethodPaypal, PayoutDetails: "user@example.com"},
			httpStatus:   http.StatusOK,
			responseBody: `{"request_id":"wr-1","status":"confirmed"}`,
			wantComplete: true,
		},
		{
			name:         "Gateway declines payout",
			request:      domain.WithdrawalRequest{ID: "wr-2", AccountID: "user1", Amount: 2500, Method: domain.MethodPaypal, PayoutDetails: "user@example.com"},
			httpStatus:   http.StatusOK,
			responseBody: `{"request_id":"wr-2","status":"declined","reason":"account closed"}`,
			wantReject:   true,
			wantReason:   "account closed",
		},
		{
			name:         "Gateway rejects order",
			request:      domain.WithdrawalRequest{ID: "wr-3", AccountID: "user1", Amount: 2500, Method: domain.MethodCrypto, PayoutDetails: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"},
			httpStatus:   http.StatusBadRequest,
			responseBody: `{"request_id":"wr-3","reason":"unsupported network"}`,
			wantReject:   true,
			wantReason:   "unsupported network",
		},
		{
			name:        "Context canceled",
			request:     domain.WithdrawalRequest{ID: "wr-4", AccountID: "user1", Amount: 2500},
			expectError: context.Canceled.Error(),

			cancelContext: true,
		},
		{
			name:        "Failed dispatch after retries",
			request:     domain.WithdrawalRequest{ID: "wr-5", AccountID: "user1", Amount: 2500},
			httpStatus:  http.StatusInternalServerError,
			expectError: "failed to dispatch payout wr-5 after 3 retries: connection refused",
			retryError:  errors.New("connection refused"),
		},
		{
			name:        "Unexpected status code",
			request:     domain.WithdrawalRequest{ID: "wr-6", AccountID: "user1", Amount: 2500},
			httpStatus:  http.StatusTeapot,
			expectError: "unexpected payout gateway status",
		},
		{
			name:         "Rate limit handling",
			request:      domain.WithdrawalRequest{ID: "wr-7", AccountID: "user1", Amount: 2500},
			httpStatus:   http.StatusTooManyRequests,
			retryHeaders: http.Header{"Retry-After": []string{"1"}},
		},
		{
			name:         "Request id mismatch",
			request:      domain.WithdrawalRequest{ID: "wr-8", AccountID: "user1", Amount: 2500},
			httpStatus:   http.StatusOK,
			responseBody: `{"request_id":"wr-other","status":"confirmed"}`,
			expectError:  "payout id mismatch: expected wr-8, got wr-other",
		},
		{
			name:         "Malformed gateway response",
			request:      domain.WithdrawalRequest{ID: "wr-9", AccountID: "user1", Amount: 2500},
			httpStatus:   http.StatusOK,
			responseBody: `{not json}`,
			expectError:  "failed to parse payout gateway response: invalid character 'n' looking for beginning of object key string",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service, workflow, client := NewMock(t)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if tt.cancelContext {
				cancel()
			} else if tt.retryError != nil {
				client.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, tt.retryError).Times(3)
			} else if tt.retryHeaders != nil {
				client.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), tt.retryHeaders, nil).Times(1)
			} else {
				client.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, nil).Times(1)
			}

			if tt.wantComplete {
				workflow.EXPECT().
					Complete(gomock.Any(), tt.request.ID, dispatcherID).
					Return(&domain.WithdrawalRequest{ID: tt.request.ID, Status: domain.WithdrawalCompleted}, nil).
					Times(1)
			}
			if tt.wantReject {
				workflow.EXPECT().
					Reject(gomock.Any(), tt.request.ID, dispatcherID, tt.wantReason).
					Return(&domain.WithdrawalRequest{ID: tt.request.ID, Status: domain.WithdrawalRejected}, nil).
					Times(1)
			}

			err := service.handleRequest(ctx, tt.request)

			if tt.expectError != "" {
				assert.EqualError(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_settle_workflowErrors(t *testing.T) {
	service, workflow, _ := NewMock(t)

	req := domain.WithdrawalRequest{ID: "wr-20", AccountID: "user1", Amount: 2500}

	workflow.EXPECT().
		Complete(gomock.Any(), "wr-20", dispatcherID).
		Return(nil, domain.ErrInvalidState).
		Times(1)

	err := service.settle(context.Background(), req, []byte(`{"request_id":"wr-20","status":"confirmed"}`))
	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	workflow.EXPECT().
		Reject(gomock.Any(), "wr-20", dispatcherID, "declined by payout gateway").
		Return(nil, domain.ErrWithdrawalNotFound).
		Times(1)

	err = service.settle(context.Background(), req, []byte(`{"request_id":"wr-20","status":"declined"}`))
	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)
}

func TestService_handleRateLimit(t *testing.T) {
	service, _, _ := NewMock(t)

	req := domain.WithdrawalRequest{ID: "wr-30"}
	attempt := 1

	headers := http.Header{}
	headers.Set("Retry-After", "1")

	start := time.Now()
	err := service.handleRateLimit(req, headers, attempt)
	elapsed := time.Since(start)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 1*time.Second)
	assert.LessOrEqual(t, elapsed, 2*time.Second)

	headers = http.Header{}
	start = time.Now()
	err = service.handleRateLimit(req, headers, attempt)
	elapsed = time.Since(start)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, retryInterval*time.Duration(attempt))
	assert.LessOrEqual(t, elapsed, retryInterval*time.Duration(attempt)+time.Second)
}
