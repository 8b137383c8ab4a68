package auth

import (
	"context"
	"errors"
	"math"
	"time"

	"hrhub/internal/config"
	"hrhub/internal/models"
	"hrhub/internal/repository"
)

// CheckLockout decides whether an account may attempt to log in at now.
// A nil user is allowed through so the credential check downstream fails
// without revealing whether the identifier is registered. The check is
// pure: it never mutates the account.
func CheckLockout(user *models.User, now time.Time) Decision {
	if user == nil {
		return Allow()
	}
	if !user.IsActive() {
		return Deny(DenyAccountDisabled)
	}
	if user.IsLocked(now) {
		remaining := user.LockedUntil.Sub(now)
		return Decision{
			Reason:            DenyAccountLocked,
			RetryAfterMinutes: int(math.Ceil(remaining.Seconds() / 60)),
		}
	}
	return Allow()
}

// NextFailureState computes the counter and lock timestamp to persist
// after a failed attempt. The lock is armed only when the new count
// reaches maxAttempts; below the threshold any stale lock from an
// earlier window is cleared. A failure while already locked re-arms the
// full window from now.
func NextFailureState(attempts int, now time.Time, maxAttempts int, lockout time.Duration) (int, *time.Time) {
	newCount := attempts + 1
	if newCount >= maxAttempts {
		lockedUntil := now.Add(lockout)
		return newCount, &lockedUntil
	}
	return newCount, nil
}

// LockoutGuard gates login attempts by account status and lockout state
// and records attempt outcomes on the account row. It is the only
// writer of the failed-attempt counter and lock timestamp.
type LockoutGuard struct {
	users       repository.UserRepository
	maxAttempts int
	lockout     time.Duration
	atomic      bool
	now         func() time.Time
}

// NewLockoutGuard creates a guard using the configured attempt
// threshold and lockout duration
func NewLockoutGuard(cfg *config.Config, users repository.UserRepository) *LockoutGuard {
	return &LockoutGuard{
		users:       users,
		maxAttempts: cfg.Auth.MaxLoginAttempts,
		lockout:     time.Duration(cfg.Auth.LockoutMinutes) * time.Minute,
		atomic:      cfg.Auth.AtomicLockout,
		now:         time.Now,
	}
}

// WithClock overrides the guard's clock. Test hook.
func (g *LockoutGuard) WithClock(now func() time.Time) *LockoutGuard {
	g.now = now
	return g
}

// CanAttemptLogin runs the pre-attempt check for the submitted
// identifier. It must run before credential verification so a correct
// password on a locked or disabled account reveals nothing. Read-only.
func (g *LockoutGuard) CanAttemptLogin(ctx context.Context, identifier string) (Decision, error) {
	user, err := g.users.GetByUsername(ctx, identifier)
	if errors.Is(err, repository.ErrUserNotFound) {
		return Allow(), nil
	}
	if err != nil {
		return Decision{}, err
	}
	return CheckLockout(user, g.now()), nil
}

// RecordSuccess clears the failure counter and lock after a successful
// authentication. Safe to call on an already-clear account.
func (g *LockoutGuard) RecordSuccess(ctx context.Context, user *models.User) error {
	if err := g.users.SaveLockState(ctx, user.ID, 0, nil); err != nil {
		return err
	}
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	return nil
}

// RecordFailure bumps the failure counter for the identifier used in a
// failed attempt. An identifier with no matching account is silently
// ignored: the failure event carries whatever the client submitted.
func (g *LockoutGuard) RecordFailure(ctx context.Context, identifier string) error {
	user, err := g.users.GetByUsername(ctx, identifier)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	now := g.now()
	if g.atomic {
		return g.users.IncrementLockState(ctx, user.ID, g.maxAttempts, now.Add(g.lockout))
	}

	attempts, lockedUntil := NextFailureState(user.FailedLoginAttempts, now, g.maxAttempts, g.lockout)
	return g.users.SaveLockState(ctx, user.ID, attempts, lockedUntil)
}
