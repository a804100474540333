package adminrepo

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.Admin, error) {
	var admin domain.Admin
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash FROM admins WHERE login = $1", login).Scan(&admin.ID, &admin.Login, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find admin", zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

func (repo *Repository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	query := `
		INSERT INTO admins (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, admin.Login, admin.PasswordHash).Scan(&admin.ID)
	if err != nil {
		zap.L().Error("can't save admin", zap.Error(err))
		return nil, err
	}
	return admin, nil
}
