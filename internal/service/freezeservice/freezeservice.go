package freezeservice

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/botomics/bomwallet/internal/domain"
)

type AccountRepo interface {
	GetOrCreate(ctx context.Context, accountID string) (*domain.Account, error)
	SetFrozen(ctx context.Context, accountID string, frozen bool, reason string) error
}

// Service implements the freeze policy: a frozen account never pays out, and
// only the configured credit types (by default admin_adjustment and refund)
// may still land on it. The allow list is configuration because the policy is
// operational, not structural.
type Service struct {
	accountRepo       AccountRepo
	allowedFrozenType map[domain.TransactionType]struct{}
}

func New(accountRepo AccountRepo, allowedCreditTypes string) *Service {
	allowed := make(map[domain.TransactionType]struct{})
	for _, t := range strings.Split(allowedCreditTypes, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		allowed[domain.TransactionType(t)] = struct{}{}
	}
	return &Service{
		accountRepo:       accountRepo,
		allowedFrozenType: allowed,
	}
}

// Freeze puts an administrative hold on the account. Idempotent.
func (s *Service) Freeze(ctx context.Context, accountID, reason string) error {
	if _, err := s.accountRepo.GetOrCreate(ctx, accountID); err != nil {
		return err
	}
	if err := s.accountRepo.SetFrozen(ctx, accountID, true, reason); err != nil {
		zap.L().Error("failed to freeze account", zap.String("accountID", accountID), zap.Error(err))
		return err
	}
	zap.L().Info("account frozen", zap.String("accountID", accountID), zap.String("reason", reason))
	return nil
}

// Unfreeze lifts the hold. Idempotent.
func (s *Service) Unfreeze(ctx context.Context, accountID string) error {
	if err := s.accountRepo.SetFrozen(ctx, accountID, false, ""); err != nil {
		zap.L().Error("failed to unfreeze account", zap.String("accountID", accountID), zap.Error(err))
		return err
	}
	zap.L().Info("account unfrozen", zap.String("accountID", accountID))
	return nil
}

func (s *Service) IsDebitAllowed(account *domain.Account) bool {
	return !account.Frozen
}

func (s *Service) IsCreditAllowed(account *domain.Account, t domain.TransactionType) bool {
	if !account.Frozen {
		return true
	}
	_, ok := s.allowedFrozenType[t]
	return ok
}
