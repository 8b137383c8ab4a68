// Package testutil provides in-memory repository fakes so handlers,
// middleware and the login guard can be tested without a database.
package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/google/uuid"
)

// fakeBase satisfies the embedded repository.Repository interface
type fakeBase struct{}

func (fakeBase) Transaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return fn(nil)
}

func (fakeBase) DB() *sql.DB { return nil }

// FakeUserRepo is an in-memory repository.UserRepository
type FakeUserRepo struct {
	fakeBase
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
	// SaveLockStateCalls counts lock-state writes, so tests can assert
	// that a missing identifier never touches the store
	SaveLockStateCalls int
}

// NewFakeUserRepo creates an empty fake user repository
func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

// Seed adds a user directly, assigning an ID when missing
func (f *FakeUserRepo) Seed(user *models.User) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return user
}

func (f *FakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrUsernameExists
		}
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *FakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	for id, u := range f.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	stored.Email = user.Email
	stored.Role = user.Role
	stored.Status = user.Status
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *FakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if user.Role == models.RoleAdmin {
		return repository.ErrAdminDelete
	}
	delete(f.users, id)
	return nil
}

func (f *FakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *FakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *FakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email != nil && *user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *FakeUserRepo) List(ctx context.Context, filter repository.UserFilter) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []models.User
	for _, user := range f.users {
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		if filter.Status != nil && user.Status != *filter.Status {
			continue
		}
		if filter.Search != nil && !strings.Contains(user.Username, *filter.Search) {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

func (f *FakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (f *FakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, lastLoginAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.LastLoginAt = &lastLoginAt
	return nil
}

func (f *FakeUserRepo) SaveLockState(ctx context.Context, id uuid.UUID, attempts int, lockedUntil *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	f.SaveLockStateCalls++
	user.FailedLoginAttempts = attempts
	user.LockedUntil = lockedUntil
	if attempts > 0 {
		now := time.Now()
		user.LastFailedLogin = &now
	} else {
		user.LastFailedLogin = nil
	}
	return nil
}

func (f *FakeUserRepo) IncrementLockState(ctx context.Context, id uuid.UUID, maxAttempts int, lockedUntil time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	f.SaveLockStateCalls++
	user.FailedLoginAttempts++
	if user.FailedLoginAttempts >= maxAttempts {
		user.LockedUntil = &lockedUntil
	} else {
		user.LockedUntil = nil
	}
	return nil
}

// FakeRefreshTokenRepo is an in-memory repository.RefreshTokenRepository
type FakeRefreshTokenRepo struct {
	fakeBase
	mu     sync.Mutex
	tokens map[string]models.RefreshToken
}

// NewFakeRefreshTokenRepo creates an empty fake token repository
func NewFakeRefreshTokenRepo() *FakeRefreshTokenRepo {
	return &FakeRefreshTokenRepo{tokens: make(map[string]models.RefreshToken)}
}

func (f *FakeRefreshTokenRepo) Create(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *FakeRefreshTokenRepo) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.tokens[token]
	if !ok {
		return nil, repository.ErrTokenNotFound
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrTokenExpired
	}
	copied := stored
	return &copied, nil
}

func (f *FakeRefreshTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

func (f *FakeRefreshTokenRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, stored := range f.tokens {
		if stored.UserID == userID {
			delete(f.tokens, token)
		}
	}
	return nil
}

func (f *FakeRefreshTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for token, stored := range f.tokens {
		if stored.ExpiresAt.Before(time.Now()) {
			delete(f.tokens, token)
			removed++
		}
	}
	return removed, nil
}

// FakeAuditLogRepo is an in-memory repository.AuditLogRepository
type FakeAuditLogRepo struct {
	fakeBase
	mu      sync.Mutex
	Entries []models.CreateAuditLogRequest
}

// NewFakeAuditLogRepo creates an empty fake audit repository
func NewFakeAuditLogRepo() *FakeAuditLogRepo {
	return &FakeAuditLogRepo{}
}

func (f *FakeAuditLogRepo) Create(ctx context.Context, log *models.CreateAuditLogRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Entries = append(f.Entries, *log)
	return nil
}

func (f *FakeAuditLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AuditLog, error) {
	return nil, repository.ErrNotFound
}

func (f *FakeAuditLogRepo) List(ctx context.Context, filter repository.AuditLogFilter) ([]models.AuditLog, error) {
	return nil, nil
}

func (f *FakeAuditLogRepo) CleanupOld(ctx context.Context, olderThan time.Duration) error {
	return nil
}
