package storage

import (
	"context"
	"sync"
	"time"

	"github.com/PumbaSquek/chiedimi-tutto-subito/apperr"
	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
)

// MemoryStore keeps everything in process memory. Used for tests and for
// ephemeral dev runs; nothing survives a restart.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]models.User       // keyed by user id
	menus map[string]models.StoredMenu // keyed by owner user id
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]models.User),
		menus: make(map[string]models.StoredMenu),
	}
}

func (s *MemoryStore) LoadMenu(_ context.Context, userID string) (*models.StoredMenu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	menu, ok := s.menus[userID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	items := make([]models.MenuItem, len(menu.Items))
	copy(items, menu.Items)
	menu.Items = items
	return &menu, nil
}

func (s *MemoryStore) SaveMenu(_ context.Context, menu *models.StoredMenu) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	menu.Updated_at = time.Now()
	stored := *menu
	stored.Items = make([]models.MenuItem, len(menu.Items))
	copy(stored.Items, menu.Items)
	s.menus[menu.Owner_user_id] = stored
	return nil
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return apperr.Duplicate("username already taken")
		}
	}
	s.users[user.User_id] = *user
	return nil
}

func (s *MemoryStore) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *MemoryStore) FindUserByID(_ context.Context, userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) UpdateTokens(_ context.Context, userID, token, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return apperr.ErrNotFound
	}
	user.Token = token
	user.Refresh_Token = refreshToken
	user.Updated_at = time.Now()
	s.users[userID] = user
	return nil
}
