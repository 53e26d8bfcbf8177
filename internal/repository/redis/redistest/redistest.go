// Package redistest provides a Redis client for integration tests:
// TEST_REDIS_ADDR, then a local server on 6379, then a testcontainers redis:7.
package redistest

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var (
	containerOnce sync.Once
	containerAddr string
	containerErr  error
)

// NewClient returns a client on DB 1 or skips the test when no Redis can be reached
func NewClient(t *testing.T) *redis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping Redis integration test in short mode")
	}

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	if client, ok := dial(addr); ok {
		t.Cleanup(func() { client.Close() })
		return client
	}

	// Контейнер общий для всех тестов пакета
	containerOnce.Do(func() {
		containerAddr, containerErr = startContainer()
	})
	if containerErr != nil {
		t.Skipf("Redis not available for integration tests: %v", containerErr)
	}

	client, ok := dial(containerAddr)
	if !ok {
		t.Skipf("Redis container at %s is not reachable", containerAddr)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func dial(addr string) (*redis.Client, bool) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, false
	}
	return client, true
}

// startContainer leaves the container to the testcontainers reaper
func startContainer() (string, error) {
	ctx := context.Background()

	container, err := tcredis.RunContainer(ctx,
		testcontainers.WithImage("docker.io/redis:7"),
	)
	if err != nil {
		return "", err
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return "", err
	}

	return strings.TrimPrefix(uri, "redis://"), nil
}
