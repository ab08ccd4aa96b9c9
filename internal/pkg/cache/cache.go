// Package cache provides the small cache port used for idempotent request
// replay, with a redis adapter for deployments and an in-memory adapter
// for tests and cache-less runs.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores short-lived string values. Get returns "" with a nil error
// on a miss so callers only branch on the value.
type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

// generateKey namespaces cache keys by service and operation.
func generateKey(serviceName, operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", serviceName, operation, key)
}
