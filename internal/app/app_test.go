package app

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashikfit/backend/config"
	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/infrastructure/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Store:     config.StoreConfig{Type: "memory"},
		USDA:      config.USDAConfig{BaseURL: "http://127.0.0.1:0"},
		Cache:     config.CacheConfig{TTL: time.Hour, MinConfidenceThreshold: 40},
		RateLimit: config.RateLimitConfig{PerIP: 10, USDA: 1000},
		Planner:   config.PlannerConfig{DefaultMeals: 4, MinMeals: 1, MaxMeals: 6},
	}
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, testConfig(), quietLogger())
	require.NoError(t, err)
	defer a.Close()

	user, err := a.Auth.Register(ctx, "a@example.com", "pw")
	require.NoError(t, err)

	summary, err := a.Plans.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Plan.Slots, 4, "planner config is applied")

	_, err = a.Foods.ImportFromUSDA(ctx, user.ID, "milk")
	assert.ErrorIs(t, err, domain.ErrImportDisabled)
}

func TestOpen_UnsupportedStore(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Type = "etcd"

	_, err := Open(context.Background(), cfg, quietLogger())
	assert.ErrorContains(t, err, "open etcd store")
}

func TestNew_WithUSDAKey(t *testing.T) {
	cfg := testConfig()
	cfg.USDA.APIKey = "key"
	a := New(cfg, store.NewMemoryStore(), quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Foods.ImportFromUSDA(ctx, "u1", "milk")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrImportDisabled)

	_, err = a.Foods.ImportByFdcID(ctx, "u1", 171287)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrImportDisabled)
}
