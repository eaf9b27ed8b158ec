package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/PumbaSquek/chiedimi-tutto-subito/apperr"
	"github.com/PumbaSquek/chiedimi-tutto-subito/helper"
	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
	"github.com/PumbaSquek/chiedimi-tutto-subito/storage"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// LocalGateway keeps its own username/password table in the local store.
// Unlike the store it replaces, passwords are bcrypt-hashed, never kept or
// compared in plaintext.
type LocalGateway struct {
	users  storage.UserStore
	tokens *helper.TokenManager
}

func NewLocalGateway(users storage.UserStore, tokens *helper.TokenManager) *LocalGateway {
	return &LocalGateway{users: users, tokens: tokens}
}

func (g *LocalGateway) SignUp(ctx context.Context, username, password string) (*Identity, error) {
	if len(username) < minUsernameLen {
		return nil, apperr.Validation("username must be at least 3 characters")
	}
	if len(password) < minPasswordLen {
		return nil, apperr.Validation("password must be at least 6 characters")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		User_id:    "user_" + strconv.FormatInt(now.UnixNano(), 10),
		Username:   username,
		Password:   hashed,
		Created_at: now,
		Updated_at: now,
	}

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

func (g *LocalGateway) SignIn(ctx context.Context, username, password string) (*Identity, error) {
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

func (g *LocalGateway) SignOut(ctx context.Context, identity *Identity) error {
	if identity == nil {
		return nil
	}
	return g.users.UpdateTokens(ctx, identity.UserID, "", "")
}

func (g *LocalGateway) Profile(ctx context.Context, userID string) (*Identity, error) {
	user, err := g.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Auth("unknown user")
		}
		return nil, err
	}
	return &Identity{UserID: user.User_id, Username: user.Username}, nil
}
