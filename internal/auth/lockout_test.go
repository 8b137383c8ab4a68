package auth_test

import (
	"context"
	"testing"
	"time"

	"hrhub/internal/auth"
	"hrhub/internal/config"
	"hrhub/internal/models"
	"hrhub/internal/testutil"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test_secret_key"
	cfg.Auth.MaxLoginAttempts = 5
	cfg.Auth.LockoutMinutes = 15
	return cfg
}

func TestCheckLockout(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		user           *models.User
		wantAllowed    bool
		wantReason     auth.DenyReason
		wantRetryAfter int
	}{
		{
			name:        "Unknown Account Allowed",
			user:        nil,
			wantAllowed: true,
		},
		{
			name:        "Active Account Allowed",
			user:        &models.User{Status: models.UserStatusActive},
			wantAllowed: true,
		},
		{
			name:       "Inactive Account Denied",
			user:       &models.User{Status: models.UserStatusInactive},
			wantReason: auth.DenyAccountDisabled,
		},
		{
			name: "Inactive Wins Over Lock",
			user: &models.User{
				Status:              models.UserStatusInactive,
				FailedLoginAttempts: 7,
				LockedUntil:         testutil.Time(now.Add(10 * time.Minute)),
			},
			wantReason: auth.DenyAccountDisabled,
		},
		{
			name: "Locked Full Window",
			user: &models.User{
				Status:      models.UserStatusActive,
				LockedUntil: testutil.Time(now.Add(15 * time.Minute)),
			},
			wantReason:     auth.DenyAccountLocked,
			wantRetryAfter: 15,
		},
		{
			name: "Partial Minute Rounds Up",
			user: &models.User{
				Status:      models.UserStatusActive,
				LockedUntil: testutil.Time(now.Add(30 * time.Second)),
			},
			wantReason:     auth.DenyAccountLocked,
			wantRetryAfter: 1,
		},
		{
			name: "Fourteen And A Half Minutes Rounds To Fifteen",
			user: &models.User{
				Status:      models.UserStatusActive,
				LockedUntil: testutil.Time(now.Add(14*time.Minute + 30*time.Second)),
			},
			wantReason:     auth.DenyAccountLocked,
			wantRetryAfter: 15,
		},
		{
			name: "Expired Lock Allowed Despite Counter",
			user: &models.User{
				Status:              models.UserStatusActive,
				FailedLoginAttempts: 9,
				LockedUntil:         testutil.Time(now.Add(-time.Second)),
			},
			wantAllowed: true,
		},
		{
			name: "Lock Exactly Now Allowed",
			user: &models.User{
				Status:      models.UserStatusActive,
				LockedUntil: testutil.Time(now),
			},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := auth.CheckLockout(tt.user, now)
			require.Equal(t, tt.wantAllowed, decision.Allowed)
			if !tt.wantAllowed {
				require.Equal(t, tt.wantReason, decision.Reason)
				require.Equal(t, tt.wantRetryAfter, decision.RetryAfterMinutes)
			}
		})
	}
}

func TestNextFailureState(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	lockout := 15 * time.Minute

	t.Run("Below Threshold Clears Stale Lock", func(t *testing.T) {
		attempts, lockedUntil := auth.NextFailureState(2, now, 5, lockout)
		require.Equal(t, 3, attempts)
		require.Nil(t, lockedUntil)
	})

	t.Run("Threshold Arms Lock", func(t *testing.T) {
		attempts, lockedUntil := auth.NextFailureState(4, now, 5, lockout)
		require.Equal(t, 5, attempts)
		require.NotNil(t, lockedUntil)
		require.Equal(t, now.Add(lockout), *lockedUntil)
	})

	t.Run("Failure While Locked Rearms Window", func(t *testing.T) {
		attempts, lockedUntil := auth.NextFailureState(6, now, 5, lockout)
		require.Equal(t, 7, attempts)
		require.NotNil(t, lockedUntil)
		require.Equal(t, now.Add(lockout), *lockedUntil)
	})
}

func TestLockoutGuard_ThresholdSequence(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	users := testutil.NewFakeUserRepo()
	seeded := users.Seed(&models.User{Username: "erika", Status: models.UserStatusActive})

	guard := auth.NewLockoutGuard(testConfig(), users).WithClock(func() time.Time { return now })
	ctx := context.Background()

	// Four failures keep the account in the normal state
	for i := 0; i < 4; i++ {
		require.NoError(t, guard.RecordFailure(ctx, "erika"))
		decision, err := guard.CanAttemptLogin(ctx, "erika")
		require.NoError(t, err)
		require.True(t, decision.Allowed, "attempt %d should not lock", i+1)
	}

	stored, err := users.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, 4, stored.FailedLoginAttempts)
	require.Nil(t, stored.LockedUntil)

	// The fifth failure locks the account for the full window
	require.NoError(t, guard.RecordFailure(ctx, "erika"))
	stored, err = users.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, 5, stored.FailedLoginAttempts)
	require.NotNil(t, stored.LockedUntil)
	require.Equal(t, now.Add(15*time.Minute), *stored.LockedUntil)

	decision, err := guard.CanAttemptLogin(ctx, "erika")
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, auth.DenyAccountLocked, decision.Reason)
	require.GreaterOrEqual(t, decision.RetryAfterMinutes, 1)
	require.LessOrEqual(t, decision.RetryAfterMinutes, 15)
}

func TestLockoutGuard_RecordSuccessResets(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	tests := []struct {
		name string
		user *models.User
	}{
		{
			name: "From Locked State",
			user: &models.User{
				Username:            "locked",
				Status:              models.UserStatusActive,
				FailedLoginAttempts: 5,
				LockedUntil:         testutil.Time(now.Add(10 * time.Minute)),
			},
		},
		{
			name: "From Normal State",
			user: &models.User{
				Username:            "normal",
				Status:              models.UserStatusActive,
				FailedLoginAttempts: 3,
			},
		},
		{
			name: "Already Clear",
			user: &models.User{Username: "clear", Status: models.UserStatusActive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := testutil.NewFakeUserRepo()
			seeded := users.Seed(tt.user)
			guard := auth.NewLockoutGuard(testConfig(), users).WithClock(func() time.Time { return now })

			require.NoError(t, guard.RecordSuccess(ctx, seeded))

			stored, err := users.GetByID(ctx, seeded.ID)
			require.NoError(t, err)
			require.Equal(t, 0, stored.FailedLoginAttempts)
			require.Nil(t, stored.LockedUntil)
		})
	}
}

func TestLockoutGuard_UnknownIdentifierIsNoop(t *testing.T) {
	users := testutil.NewFakeUserRepo()
	guard := auth.NewLockoutGuard(testConfig(), users)
	ctx := context.Background()

	require.NoError(t, guard.RecordFailure(ctx, "nobody@example.com"))
	require.Zero(t, users.SaveLockStateCalls)

	decision, err := guard.CanAttemptLogin(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.True(t, decision.Allowed)
}

func TestLockoutGuard_DisabledAccount(t *testing.T) {
	users := testutil.NewFakeUserRepo()
	users.Seed(&models.User{Username: "gone", Status: models.UserStatusInactive})
	guard := auth.NewLockoutGuard(testConfig(), users)

	decision, err := guard.CanAttemptLogin(context.Background(), "gone")
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, auth.DenyAccountDisabled, decision.Reason)
}

func TestLockoutGuard_AtomicVariantSameThreshold(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cfg := testConfig()
	cfg.Auth.AtomicLockout = true

	users := testutil.NewFakeUserRepo()
	seeded := users.Seed(&models.User{Username: "erika", Status: models.UserStatusActive})
	guard := auth.NewLockoutGuard(cfg, users).WithClock(func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, guard.RecordFailure(ctx, "erika"))
	}

	stored, err := users.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, 5, stored.FailedLoginAttempts)
	require.NotNil(t, stored.LockedUntil)
}
