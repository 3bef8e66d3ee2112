package domain

// AuthOutcome tags the variant of an AuthResult.
type AuthOutcome string

const (
	// AuthOutcomeSuccess means authentication or role switching succeeded
	// and the result carries the now-authenticated user.
	AuthOutcomeSuccess AuthOutcome = "success"
	// AuthOutcomeInvalidPIN means the supplied PIN matched no user.
	AuthOutcomeInvalidPIN AuthOutcome = "invalid_pin"
	// AuthOutcomeUserNotFound means a required user could not be resolved.
	// Unauthorized role switches deliberately surface as this same variant
	// so callers cannot probe which users exist.
	AuthOutcomeUserNotFound AuthOutcome = "user_not_found"
)

// AuthResult is the closed set of outcomes for every authentication and
// role-switch operation. Expected failures are values of this type, never
// errors; errors are reserved for collaborator faults (storage unreachable,
// corrupt record).
type AuthResult struct {
	Outcome AuthOutcome
	// User is the authenticated user; set only when Outcome is success.
	User *User
}

// AuthSuccess builds the success variant carrying the authenticated user.
func AuthSuccess(u *User) AuthResult {
	return AuthResult{Outcome: AuthOutcomeSuccess, User: u}
}

// AuthInvalidPIN builds the wrong-PIN variant.
func AuthInvalidPIN() AuthResult {
	return AuthResult{Outcome: AuthOutcomeInvalidPIN}
}

// AuthUserNotFound builds the missing-user variant.
func AuthUserNotFound() AuthResult {
	return AuthResult{Outcome: AuthOutcomeUserNotFound}
}

// Authenticated reports whether the result is the success variant.
func (r AuthResult) Authenticated() bool {
	return r.Outcome == AuthOutcomeSuccess
}
