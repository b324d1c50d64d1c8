package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/blog-be/internal/config"
	"github.com/hongminglow/blog-be/internal/logger"
	"github.com/hongminglow/blog-be/internal/storage/memory"
)

func TestOpen_Memory(t *testing.T) {
	store, err := Open(context.Background(), config.Config{StorageDriver: config.DriverMemory}, logger.Discard())
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*memory.Store)
	assert.True(t, ok)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Config{StorageDriver: "sqlite"}, logger.Discard())
	assert.Error(t, err)
}

func TestOpen_BadPostgresURL(t *testing.T) {
	_, err := Open(context.Background(), config.Config{
		StorageDriver: config.DriverPostgres,
		DatabaseURL:   "://not a url",
	}, logger.Discard())
	assert.Error(t, err)
}
