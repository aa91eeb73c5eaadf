package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/bhp-api/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseLogLevel("silent"))
	assert.Equal(t, logger.Error, ParseLogLevel("ERROR"))
	assert.Equal(t, logger.Info, ParseLogLevel("info"))
	assert.Equal(t, logger.Warn, ParseLogLevel("warn"))
	assert.Equal(t, logger.Warn, ParseLogLevel(""))
}

func TestPing(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	assert.NoError(t, Ping(context.Background(), db))

	sqlDB, err := GetSQLDB(db)
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.Error(t, Ping(context.Background(), db))
}

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{Addr: "localhost:6379", DB: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:6379"}, opts.Addrs)
	assert.Equal(t, 2, opts.DB)

	opts, err = redisOptions(config.RedisConfig{Mode: RedisModeSingle, Addrs: []string{"a:1", "b:2"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a:1"}, opts.Addrs)

	opts, err = redisOptions(config.RedisConfig{Mode: RedisModeCluster, Addrs: []string{"a:1", "b:2"}, MinRetryBackoff: 8})
	require.NoError(t, err)
	assert.Len(t, opts.Addrs, 2)
	assert.Equal(t, 8*time.Millisecond, opts.MinRetryBackoff)

	opts, err = redisOptions(config.RedisConfig{Mode: RedisModeSentinel, Addrs: []string{"s:26379"}, MasterName: "main"})
	require.NoError(t, err)
	assert.Equal(t, "main", opts.MasterName)
}

func TestRedisOptions_Invalid(t *testing.T) {
	_, err := redisOptions(config.RedisConfig{})
	assert.Error(t, err)

	_, err = redisOptions(config.RedisConfig{Addr: "localhost:6379", Mode: RedisModeSentinel})
	assert.ErrorContains(t, err, "MasterName")

	_, err = redisOptions(config.RedisConfig{Addr: "localhost:6379", Mode: "bogus"})
	assert.ErrorContains(t, err, "unsupported")
}

func TestNewUniversalRedisClient_Unreachable(t *testing.T) {
	_, err := NewUniversalRedisClient(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1", MaxRetries: -1})
	assert.Error(t, err)
}
