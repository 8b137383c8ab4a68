package auth

import "hrhub/internal/models"

// Authorize decides whether an authenticated user may reach a route
// restricted to the given roles. Matching is exact and case-sensitive.
// An empty allowed set denies every user; routes configured with no
// roles stay closed rather than falling open.
func Authorize(user *models.User, allowedRoles []string) Decision {
	if user == nil {
		return Deny(DenyUnauthenticated)
	}
	for _, role := range allowedRoles {
		if user.HasRole(role) {
			return Allow()
		}
	}
	return Deny(DenyRoleForbidden)
}
