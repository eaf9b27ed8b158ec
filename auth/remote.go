package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/PumbaSquek/chiedimi-tutto-subito/apperr"
	"github.com/PumbaSquek/chiedimi-tutto-subito/helper"
	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
	"github.com/PumbaSquek/chiedimi-tutto-subito/storage"
)

// syntheticEmailDomain bridges username-only accounts onto an email-based
// identity scheme: every account gets "<username>@menudesigner.local".
const syntheticEmailDomain = "menudesigner.local"

var validate = validator.New()

// remoteCredentials is what the hosted identity scheme validates: a
// well-formed (synthetic) email address and a password of provider-minimum
// length.
type remoteCredentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// RemoteGateway is the hosted-backend auth variant. Accounts live in the
// shared user store; sessions are JWTs persisted on the user record.
type RemoteGateway struct {
	users  storage.UserStore
	tokens *helper.TokenManager
}

func NewRemoteGateway(users storage.UserStore, tokens *helper.TokenManager) *RemoteGateway {
	return &RemoteGateway{users: users, tokens: tokens}
}

func (g *RemoteGateway) SignUp(ctx context.Context, username, password string) (*Identity, error) {
	creds := remoteCredentials{
		Email:    username + "@" + syntheticEmailDomain,
		Password: password,
	}
	if err := validate.Struct(creds); err != nil {
		return nil, apperr.Validation("invalid username or password")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:         primitive.NewObjectID(),
		Username:   username,
		Password:   hashed,
		Created_at: now,
		Updated_at: now,
	}
	user.User_id = user.ID.Hex()

	token, refreshToken, err := g.tokens.GenerateAllTokens(user.Username, user.User_id)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	user.Token = token
	user.Refresh_Token = refreshToken

	if err := g.users.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	return &Identity{
		UserID:       user.User_id,
		Username:     user.Username,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (g *RemoteGateway) SignIn(ctx context.Context, username, password string) (*Identity, error) {
	user, err := g.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Auth("incorrect username or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperr.Auth("incorrect username or password")
	}

	token, refreshToken, err := g.tokens.GenerateAllTokens(user.Username, user.User_id)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	if err := g.users.UpdateTokens(ctx, user.User_id, token, refreshToken); err != nil {
		return nil, err
	}

	return &Identity{
		UserID:       user.User_id,
		Username:     user.Username,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (g *RemoteGateway) SignOut(ctx context.Context, identity *Identity) error {
	if identity == nil {
		return nil
	}
	if err := g.users.UpdateTokens(ctx, identity.UserID, "", ""); err != nil {
		// Clearing stored tokens is best-effort; the session itself is gone.
		log.Printf("sign out: %v", err)
	}
	return nil
}

func (g *RemoteGateway) Profile(ctx context.Context, userID string) (*Identity, error) {
	user, err := g.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Auth("unknown user")
		}
		return nil, err
	}
	return &Identity{UserID: user.User_id, Username: user.Username}, nil
}

// HashPassword hashes with the same cost in both auth variants.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}
