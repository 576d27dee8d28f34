package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/learn-track/server/migrations"
	"github.com/learn-track/server/pkg/config"
	"github.com/learn-track/server/pkg/db"
)

var (
	pgOnce    sync.Once
	pgConfig  *config.PostgresConfig
	pgInitErr error
)

// setupTestDB 启动共享的Postgres容器（整个测试进程只启动一次），应用迁移后
// 返回连接池; 池在测试结束时关闭，容器随进程退出
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed repository tests in short mode")
	}

	pgOnce.Do(func() {
		pgConfig, pgInitErr = startContainerAndMigrate()
	})
	if pgInitErr != nil {
		t.Fatalf("failed to setup test DB: %v", pgInitErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, pgConfig)
	if err != nil {
		t.Fatalf("failed to create pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startContainerAndMigrate() (*config.PostgresConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	cfg := &config.PostgresConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "testuser",
		Password: "testpass",
		Database: "testdb",
		SSLMode:  "disable",
	}

	migrator, err := db.NewMigrator(cfg, migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	defer migrator.Close()
	if err := migrator.EnsureSchema(); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return cfg, nil
}
