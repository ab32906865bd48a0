package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"workforce/internal/domain/auth"
	"workforce/internal/platform/config"
	"workforce/internal/platform/ident"
)

// Seed ensures the bootstrap admin account and the initial approved network
// exist. It is idempotent and safe to run on every start.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAdmin(ctx, pool, cfg); err != nil {
		return err
	}
	return ensureNetwork(ctx, pool, cfg.SeedNetworkSSID)
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.SeedAdminEmail))
	if email == "" {
		return nil
	}

	var exists bool
	if err := pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM employees WHERE lower(email) = $1)", email).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO employees (id, name, email, password_hash, role, vacation_days, is_active, is_pending)
    VALUES ($1,$2,$3,$4,$5,$6,true,false)
  `, ident.New(ident.PrefixEmployee), cfg.SeedAdminName, email, hash, auth.RoleAdmin, cfg.DefaultVacationDays)
	return err
}

func ensureNetwork(ctx context.Context, pool *pgxpool.Pool, ssid string) error {
	ssid = strings.TrimSpace(ssid)
	if ssid == "" {
		return nil
	}
	_, err := pool.Exec(ctx, `
    INSERT INTO approved_networks (id, ssid, created_by)
    VALUES ($1,$2,'seed')
    ON CONFLICT (ssid) DO NOTHING
  `, ident.New(ident.PrefixNetwork), ssid)
	return err
}
