package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewPool_BadDSN(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://localhost:notaport/dm", time.Second, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse dsn")
}

func TestNewPool_PingTimeout(t *testing.T) {
	start := time.Now()
	_, err := NewPool(context.Background(), "postgres://dm@127.0.0.1:1/dm?sslmode=disable", 200*time.Millisecond, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping 127.0.0.1")
	assert.Less(t, time.Since(start), 5*time.Second)
}
