package postgres_test

import (
	"context"
	"errors"
	"testing"

	"hrhub/internal/models"
	"hrhub/internal/repository"
	"hrhub/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_MapsUniqueViolationsByConstraint(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{
			name:    "Duplicate Username",
			dbErr:   errors.New(`pq: duplicate key value violates unique constraint "users_username_key"`),
			wantErr: repository.ErrUsernameExists,
		},
		{
			name:    "Duplicate Email",
			dbErr:   errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`),
			wantErr: repository.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO users").WillReturnError(tt.dbErr)

			repo := postgres.NewUserRepository(db)
			email := "jdoe@example.com"
			err = repo.Create(context.Background(), &models.User{
				Username: "jdoe",
				Password: "hashed",
				Email:    &email,
				Role:     models.RoleUser,
				Status:   models.UserStatusActive,
			})
			require.ErrorIs(t, err, tt.wantErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateUser_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

	repo := postgres.NewUserRepository(db)
	email := "taken@example.com"
	user := &models.User{Username: "jdoe", Email: &email}
	err = repo.Update(context.Background(), user)
	require.ErrorIs(t, err, repository.ErrEmailExists)
	require.NoError(t, mock.ExpectationsWereMet())
}
