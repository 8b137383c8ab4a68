package auth

// DenyReason identifies why an authentication or authorization decision
// was denied.
type DenyReason int

const (
	DenyNone DenyReason = iota
	// DenyAccountDisabled means the account status is not active.
	DenyAccountDisabled
	// DenyAccountLocked means the lockout window is still open.
	DenyAccountLocked
	// DenyUnauthenticated means no authenticated user is present.
	DenyUnauthenticated
	// DenyRoleForbidden means the user's role is not in the allowed set.
	DenyRoleForbidden
)

// Decision is the outcome of a guard or gate check. These are expected
// control-flow results, not errors: callers branch on them and render
// the matching response.
type Decision struct {
	Allowed bool
	Reason  DenyReason
	// RetryAfterMinutes carries the remaining lockout time, rounded up
	// to whole minutes. Only set for DenyAccountLocked.
	RetryAfterMinutes int
}

// Allow returns a permitting decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given reason
func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}
