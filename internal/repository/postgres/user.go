package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/google/uuid"
)

const userColumns = `id, username, password, email, role, status,
	       failed_login_attempts, locked_until, last_login_at,
	       last_failed_login, created_at, updated_at`

type userRepository struct {
	repository.BaseRepository
}

// NewUserRepository creates a postgres-backed user repository
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{BaseRepository: repository.NewBaseRepository(db)}
}

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.Role,
		&user.Status,
		&user.FailedLoginAttempts,
		&user.LockedUntil,
		&user.LastLoginAt,
		&user.LastFailedLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, email, role, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.DB().QueryRowContext(
		ctx,
		query,
		user.Username,
		user.Password,
		user.Email,
		user.Role,
		user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "users_username_key") {
		return repository.ErrUsernameExists
	}
	if err != nil && strings.Contains(err.Error(), "users_email_key") {
		return repository.ErrEmailExists
	}
	return err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, role = $2, status = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at`

	err := r.DB().QueryRowContext(
		ctx,
		query,
		user.Email,
		user.Role,
		user.Status,
		user.ID,
	).Scan(&user.UpdatedAt)
	if err == sql.ErrNoRows {
		return repository.ErrUserNotFound
	}
	if err != nil && strings.Contains(err.Error(), "users_email_key") {
		return repository.ErrEmailExists
	}
	return err
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var role string
	err := r.DB().QueryRowContext(ctx, "SELECT role FROM users WHERE id = $1", id).Scan(&role)
	if err == sql.ErrNoRows {
		return repository.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if role == models.RoleAdmin {
		return repository.ErrAdminDelete
	}

	result, err := r.DB().ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	return scanUser(r.DB().QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE username = $1", userColumns)
	return scanUser(r.DB().QueryRowContext(ctx, query, username))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)
	return scanUser(r.DB().QueryRowContext(ctx, query, email))
}

func (r *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users", userColumns)
	var conditions []string
	var args []interface{}

	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(username ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := "username"
	if filter.OrderBy != "" {
		orderBy = filter.OrderBy
	}
	query += " ORDER BY " + orderBy
	if filter.OrderDesc {
		query += " DESC"
	}
	if filter.Limit != nil {
		args = append(args, *filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset != nil {
		args = append(args, *filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	query := `
		UPDATE users
		SET password = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`

	result, err := r.DB().ExecContext(ctx, query, hashedPassword, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, lastLoginAt time.Time) error {
	query := `
		UPDATE users
		SET last_login_at = $1
		WHERE id = $2`

	_, err := r.DB().ExecContext(ctx, query, lastLoginAt, id)
	return err
}

func (r *userRepository) SaveLockState(ctx context.Context, id uuid.UUID, attempts int, lockedUntil *time.Time) error {
	query := `
		UPDATE users
		SET failed_login_attempts = $1,
		    locked_until = $2,
		    last_failed_login = CASE WHEN $1 > 0 THEN CURRENT_TIMESTAMP ELSE NULL END
		WHERE id = $3`

	result, err := r.DB().ExecContext(ctx, query, attempts, lockedUntil, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) IncrementLockState(ctx context.Context, id uuid.UUID, maxAttempts int, lockedUntil time.Time) error {
	// Single-statement increment so concurrent failures never undercount.
	query := `
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1,
		    last_failed_login = CURRENT_TIMESTAMP,
		    locked_until = CASE WHEN failed_login_attempts + 1 >= $2 THEN $3 ELSE NULL END
		WHERE id = $1`

	result, err := r.DB().ExecContext(ctx, query, id, maxAttempts, lockedUntil)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}
