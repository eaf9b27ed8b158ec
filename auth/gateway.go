package auth

import "context"

// Identity is the authenticated principal a gateway hands back. Tokens are
// only set on the sign-up/sign-in result; profile lookups leave them empty.
type Identity struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Gateway establishes identity. Both variants walk the same state machine:
// anonymous, then authenticated on a successful sign-up or sign-in, then
// anonymous again on sign-out. A failed sign-up or sign-in changes nothing.
type Gateway interface {
	SignUp(ctx context.Context, username, password string) (*Identity, error)
	SignIn(ctx context.Context, username, password string) (*Identity, error)
	SignOut(ctx context.Context, identity *Identity) error
	// Profile re-reads the account behind a user id, refreshing the cached
	// display name when a session is rebuilt from a bare token.
	Profile(ctx context.Context, userID string) (*Identity, error)
}
