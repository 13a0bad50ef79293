package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"sobat/internal/domain/auth"
	"sobat/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	return ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return pool.QueryRow(ctx, `
    INSERT INTO users (email, name, role, password_hash, active)
    VALUES ($1, 'Administrator', $2, $3, TRUE)
    RETURNING id
  `, email, auth.RoleAdmin, hash).Scan(&id)
}
