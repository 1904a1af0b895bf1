package requestlog_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"ulascansenturk/weather-glass/internal/db/requestlog"
)

const (
	dbName     = "test_request_log"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func TestRequestLogAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()

	container, err := pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	port := endpoint[strings.LastIndex(endpoint, ":")+1:]

	db, err := requestlog.Open(requestlog.ConnectionConfig{
		Host:     host,
		Port:     port,
		User:     dbUser,
		Password: dbPassword,
		Name:     dbName,
	})
	require.NoError(t, err)

	repo := requestlog.NewRepository(db)

	require.NoError(t, repo.LogProxyRequest(&requestlog.ProxyRequest{
		RequestID:      "req-a",
		Mode:           "marine",
		Location:       "36.7783,-119.4179",
		UpstreamStatus: 200,
		ResponseStatus: 400,
		ErrorCode:      105,
		ErrorType:      "function_access_restricted",
		PlanLimited:    true,
	}))
	require.NoError(t, repo.LogProxyRequest(&requestlog.ProxyRequest{
		RequestID:      "req-b",
		Mode:           "current",
		Location:       "London",
		UpstreamStatus: 200,
		ResponseStatus: 200,
	}))

	var rows []requestlog.ProxyRequest
	require.NoError(t, db.Order("created_at ASC").Find(&rows).Error)
	require.Len(t, rows, 2)

	assert.Equal(t, "marine", rows[0].Mode)
	assert.True(t, rows[0].PlanLimited)
	assert.Equal(t, 105, rows[0].ErrorCode)
	assert.Equal(t, "London", rows[1].Location)
	assert.False(t, rows[1].PlanLimited)
}
