package janitor_test

import (
	"context"
	"testing"
	"time"

	"hrhub/internal/config"
	"hrhub/internal/janitor"
	"hrhub/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOnce(t *testing.T) {
	tokens := testutil.NewFakeRefreshTokenRepo()
	audit := testutil.NewFakeAuditLogRepo()

	ctx := context.Background()
	userID := uuid.New()
	require.NoError(t, tokens.Create(ctx, userID, "live", time.Now().Add(time.Hour)))
	require.NoError(t, tokens.Create(ctx, userID, "stale", time.Now().Add(-time.Hour)))

	j := janitor.New(config.JanitorConfig{
		Schedule:           "0 3 * * *",
		AuditRetentionDays: 90,
	}, tokens, audit)

	require.NoError(t, j.RunOnce(ctx))

	_, err := tokens.GetByToken(ctx, "stale")
	assert.Error(t, err)

	// The live token survives the sweep
	live, err := tokens.GetByToken(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, userID, live.UserID)
}

func TestStart_RequiresSchedule(t *testing.T) {
	j := janitor.New(config.JanitorConfig{}, testutil.NewFakeRefreshTokenRepo(), testutil.NewFakeAuditLogRepo())
	err := j.Start(context.Background())
	assert.Error(t, err)
}
