package auth_test

import (
	"testing"

	"hrhub/internal/auth"
	"hrhub/internal/models"

	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	admin := &models.User{Username: "root", Role: models.RoleAdmin, Status: models.UserStatusActive}
	manager := &models.User{Username: "lead", Role: models.RoleManager, Status: models.UserStatusActive}
	regular := &models.User{Username: "staff", Role: models.RoleUser, Status: models.UserStatusActive}

	tests := []struct {
		name        string
		user        *models.User
		roles       []string
		wantAllowed bool
		wantReason  auth.DenyReason
	}{
		{
			name:       "No Session Denied",
			user:       nil,
			roles:      []string{models.RoleAdmin},
			wantReason: auth.DenyUnauthenticated,
		},
		{
			name:       "Empty Role Set Denies Admin",
			user:       admin,
			roles:      nil,
			wantReason: auth.DenyRoleForbidden,
		},
		{
			name:       "Empty Role Set Denies Regular User",
			user:       regular,
			roles:      []string{},
			wantReason: auth.DenyRoleForbidden,
		},
		{
			name:        "Manager Allowed When Listed",
			user:        manager,
			roles:       []string{models.RoleAdmin, models.RoleManager},
			wantAllowed: true,
		},
		{
			name:       "Manager Denied For Admin Only",
			user:       manager,
			roles:      []string{models.RoleAdmin},
			wantReason: auth.DenyRoleForbidden,
		},
		{
			name:        "Exact Single Role Match",
			user:        regular,
			roles:       []string{models.RoleUser},
			wantAllowed: true,
		},
		{
			name:       "Role Names Are Case Sensitive",
			user:       regular,
			roles:      []string{"User"},
			wantReason: auth.DenyRoleForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := auth.Authorize(tt.user, tt.roles)
			require.Equal(t, tt.wantAllowed, decision.Allowed)
			if !tt.wantAllowed {
				require.Equal(t, tt.wantReason, decision.Reason)
			}
		})
	}
}
