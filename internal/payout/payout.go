package payout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/botomics/bomwallet/internal/config"
	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/pkg/clients"
	"github.com/botomics/bomwallet/pkg/money"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1

	// dispatcherID is recorded as processed_by on requests settled here.
	dispatcherID = "payout-dispatcher"
)

var inFlight sync.Map

// Workflow is the slice of the withdrawal workflow the dispatcher drives.
type Workflow interface {
	ListByStatus(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.WithdrawalRequest, error)
	Complete(ctx context.Context, requestID, adminID string) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, requestID, adminID, reason string) (*domain.WithdrawalRequest, error)
}

type payoutOrder struct {
	RequestID string  `json:"request_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Method    string  `json:"method"`
	Details   string  `json:"details"`
}

type payoutResult struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// Service polls approved (processing) withdrawal requests and executes them
// against the external payout gateway. The gateway call always happens
// outside any ledger transaction; only the resulting workflow transition
// touches the database.
type Service struct {
	url            string
	workflow       Workflow
	client         clients.HTTPClientI
	limit          int
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, workflow Workflow, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.PayoutAddress,
		workflow:       workflow,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payout dispatcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payout dispatcher")
			return
		case <-ticker.C:
			s.processRequests(ctx)
		}
	}
}

func (s *Service) processRequests(ctx context.Context) {
	requests, err := s.workflow.ListByStatus(ctx, domain.WithdrawalProcessing, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch withdrawals for payout", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, req := range requests {
		req := req

		if _, loaded := inFlight.LoadOrStore(req.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(req.ID)
				return s.handleRequest(ctx, req)
			})
			if err != nil {
				inFlight.Delete(req.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching payouts", zap.Error(err))
	}
}

func (s *Service) handleRequest(ctx context.Context, req domain.WithdrawalRequest) error {
	body, err := json.Marshal(payoutOrder{
		RequestID: req.ID,
		Amount:    money.FromMinor(req.Amount).Float(),
		Currency:  domain.Currency,
		Method:    string(req.Method),
		Details:   req.PayoutDetails,
	})
	if err != nil {
		return fmt.Errorf("failed to encode payout order: %w", err)
	}

	url := s.url + "/api/payouts"
	headers := http.Header{"Content-Type": []string{"application/json"}}

	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Post(url, headers, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to dispatch payout %s after %d retries: %w", req.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(req, respHeaders, attempt)

			case http.StatusOK:
				return s.settle(ctx, req, respBody)

			case http.StatusBadRequest, http.StatusUnprocessableEntity:
				return s.refuse(ctx, req, respBody)

			default:
				// Gateway trouble; the request stays in processing and is
				// retried on a later tick.
				zap.L().Warn("Unexpected payout gateway status",
					zap.Int("status", statusCode),
					zap.String("requestID", req.ID),
				)
				return errors.New("unexpected payout gateway status")
			}
		}
	}
	return nil
}

func (s *Service) settle(ctx context.Context, req domain.WithdrawalRequest, respBody []byte) error {
	var result payoutResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("failed to parse payout gateway response: %w", err)
	}
	if result.RequestID != req.ID {
		return fmt.Errorf("payout id mismatch: expected %s, got %s", req.ID, result.RequestID)
	}

	switch result.Status {
	case "confirmed":
		if _, err := s.workflow.Complete(ctx, req.ID, dispatcherID); err != nil {
			return fmt.Errorf("failed to complete withdrawal %s: %w", req.ID, err)
		}
		zap.L().Info("Payout confirmed", zap.String("requestID", req.ID))
	case "declined":
		reason := result.Reason
		if reason == "" {
			reason = "declined by payout gateway"
		}
		if _, err := s.workflow.Reject(ctx, req.ID, dispatcherID, reason); err != nil {
			return fmt.Errorf("failed to reject withdrawal %s: %w", req.ID, err)
		}
		zap.L().Info("Payout declined", zap.String("requestID", req.ID), zap.String("reason", reason))
	default:
		zap.L().Warn("Unrecognized payout status", zap.String("requestID", req.ID), zap.String("status", result.Status))
	}
	return nil
}

func (s *Service) refuse(ctx context.Context, req domain.WithdrawalRequest, respBody []byte) error {
	var result payoutResult
	reason := "rejected by payout gateway"
	if err := json.Unmarshal(respBody, &result); err == nil && result.Reason != "" {
		reason = result.Reason
	}
	if _, err := s.workflow.Reject(ctx, req.ID, dispatcherID, reason); err != nil {
		return fmt.Errorf("failed to reject withdrawal %s: %w", req.ID, err)
	}
	return nil
}

func (s *Service) handleRateLimit(req domain.WithdrawalRequest, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit from payout gateway, retrying",
		zap.String("requestID", req.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
