package storage

import (
	"context"

	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
)

// MenuStore persists one menu per user with upsert semantics. Every save
// writes the full item list; there are no partial updates.
type MenuStore interface {
	// LoadMenu returns the user's stored menu, or apperr.ErrNotFound when
	// the user has never saved (a normal first-run condition, not a fault).
	LoadMenu(ctx context.Context, userID string) (*models.StoredMenu, error)
	// SaveMenu creates the record if absent, else overwrites title and
	// wholesale-replaces the item list. Sets Updated_at.
	SaveMenu(ctx context.Context, menu *models.StoredMenu) error
}

// UserStore persists operator accounts.
type UserStore interface {
	// CreateUser inserts the account, failing with apperr.ErrDuplicate when
	// the username is taken. No partial record survives a failure.
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	// UpdateTokens replaces the stored session tokens for the user.
	UpdateTokens(ctx context.Context, userID, token, refreshToken string) error
}

// Store is a persistence backend serving both record kinds.
type Store interface {
	MenuStore
	UserStore
}
