package testkit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
)

// Suite owns the migrated notes database and the Redis instance backing the rate store.
type Suite struct {
	mu         sync.Mutex
	cfg        Config
	containers []testcontainers.Container
	db         *sql.DB
	rdb        *redis.Client
}

var (
	globalSuite *Suite
	globalOnce  sync.Once
)

// Global returns the singleton Suite instance.
func Global() *Suite {
	globalOnce.Do(func() {
		globalSuite = &Suite{cfg: LoadConfig()}
	})
	return globalSuite
}

// Setup starts the containers (or uses the external overrides), connects and migrates.
func (s *Suite) Setup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return errors.New("suite already set up; call Shutdown first")
	}

	pgCtr, dsn, err := startPostgres(ctx, &s.cfg)
	if err != nil {
		return fmt.Errorf("setup postgres: %w", err)
	}
	s.track(pgCtr)

	redisCtr, addr, err := startRedis(ctx, &s.cfg)
	if err != nil {
		s.terminate(ctx)
		return fmt.Errorf("setup redis: %w", err)
	}
	s.track(redisCtr)

	if s.db, err = openNotesDB(ctx, dsn); err != nil {
		s.terminate(ctx)
		return err
	}
	if s.rdb, err = openRedis(ctx, addr); err != nil {
		s.terminate(ctx)
		return err
	}
	return nil
}

func (s *Suite) track(c testcontainers.Container) {
	if c != nil {
		s.containers = append(s.containers, c)
	}
}

// terminate closes connections and, unless asked to keep them, stops the containers.
func (s *Suite) terminate(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Close()
		s.rdb = nil
	}
	if s.db != nil {
		_ = s.db.Close()
		s.db = nil
	}
	if s.cfg.KeepContainers {
		fmt.Println("DASHBOARD_TEST_KEEP_CONTAINERS set, leaving containers running")
		s.containers = nil
		return
	}
	for i := len(s.containers) - 1; i >= 0; i-- {
		if err := s.containers[i].Terminate(ctx); err != nil {
			fmt.Println("warning: failed to terminate container:", err)
		}
	}
	s.containers = nil
}

// Shutdown releases everything Setup acquired.
func (s *Suite) Shutdown(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminate(ctx)
}

// DB returns the migrated notes database.
func (s *Suite) DB() *sql.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// Redis returns the client for the rate store instance.
func (s *Suite) Redis() *redis.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rdb
}

// Reset empties the notes table and the Redis database.
func (s *Suite) Reset(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.DB().ExecContext(ctx, "TRUNCATE TABLE notes"); err != nil {
		t.Fatalf("failed to truncate notes: %v", err)
	}
	if err := s.Redis().FlushDB(ctx).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
}

// Run sets up the suite, executes the tests, then shuts down. Intended for TestMain.
func (s *Suite) Run(m *testing.M) {
	ctx := context.Background()

	if err := s.Setup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "integration test setup failed: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	s.Shutdown(ctx)
	os.Exit(code)
}

// Run is a package-level convenience that delegates to Global().Run.
func Run(m *testing.M) {
	Global().Run(m)
}
