package adminservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/botomics/bomwallet/internal/domain"
	"github.com/botomics/bomwallet/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}

type Service struct {
	adminRepo   Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		adminRepo:   repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.Admin, error) {
	existing, err := s.adminRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find admin: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("admin already exists, login: ", zap.String("login", login))
		return nil, errors.New("login already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	admin := &domain.Admin{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	newAdmin, err := s.adminRepo.Create(ctx, admin)
	if err != nil {
		zap.L().Error("can't create admin: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("admin successfully registered", zap.String("login", login))
	return newAdmin, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindByLogin(ctx, login)
	if err != nil || admin == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(admin.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials")
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("admin successfully authenticated", zap.String("login", login))
	return admin, nil
}

func (s *Service) GenerateToken(adminID int) (string, error) {
	return s.jwtService.GenerateJWT(adminID, time.Now().Add(24*time.Hour))
}
