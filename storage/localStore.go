package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/PumbaSquek/chiedimi-tutto-subito/apperr"
	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
)

// menuRow is the local table shape: the item list is kept as one JSON
// column and overwritten wholesale on every save, matching the single
// record-per-user layout of the store this variant replaces.
type menuRow struct {
	OwnerUserID string    `gorm:"column:owner_user_id;primaryKey"`
	Title       string    `gorm:"column:title"`
	ItemsJSON   string    `gorm:"column:items_json"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (menuRow) TableName() string { return "menus" }

// LocalStore is the local variant of the persistence gateway, backed by a
// SQLite file next to the process.
type LocalStore struct {
	db *gorm.DB
}

// NewLocalStore opens (or creates) the SQLite database and runs migrations.
func NewLocalStore(dsn string) (*LocalStore, error) {
	if dsn == "" {
		dsn = "menudesigner.db"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &menuRow{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return &LocalStore{db: db}, nil
}

func (s *LocalStore) LoadMenu(ctx context.Context, userID string) (*models.StoredMenu, error) {
	var row menuRow
	err := s.db.WithContext(ctx).Where("owner_user_id = ?", userID).First(&row).Error
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.ErrNotFound
	default:
		return nil, apperr.Persistence("load menu", err)
	}

	items := []models.MenuItem{}
	if row.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(row.ItemsJSON), &items); err != nil {
			return nil, apperr.Persistence("decode menu items", err)
		}
	}

	return &models.StoredMenu{
		Owner_user_id: row.OwnerUserID,
		Title:         row.Title,
		Items:         items,
		Updated_at:    row.UpdatedAt,
	}, nil
}

func (s *LocalStore) SaveMenu(ctx context.Context, menu *models.StoredMenu) error {
	items := menu.Items
	if items == nil {
		items = []models.MenuItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return apperr.Persistence("encode menu items", err)
	}

	menu.Updated_at = time.Now()
	row := menuRow{
		OwnerUserID: menu.Owner_user_id,
		Title:       menu.Title,
		ItemsJSON:   string(raw),
		UpdatedAt:   menu.Updated_at,
	}

	// Delete-then-insert inside one transaction: the whole record is
	// replaced on every save, never patched.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_user_id = ?", row.OwnerUserID).Delete(&menuRow{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return apperr.Persistence("save menu", err)
	}
	return nil
}

func (s *LocalStore) CreateUser(ctx context.Context, user *models.User) error {
	db := s.db.WithContext(ctx)

	var existing models.User
	err := db.Where("username = ?", user.Username).First(&existing).Error
	switch {
	case err == nil:
		return apperr.Duplicate("username already taken")
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return apperr.Persistence("check username", err)
	}

	if err := db.Create(user).Error; err != nil {
		return apperr.Persistence("create user", err)
	}
	return nil
}

func (s *LocalStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.ErrNotFound
	default:
		return nil, apperr.Persistence("find user", err)
	}
}

func (s *LocalStore) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.ErrNotFound
	default:
		return nil, apperr.Persistence("find user", err)
	}
}

func (s *LocalStore) UpdateTokens(ctx context.Context, userID, token, refreshToken string) error {
	updates := map[string]interface{}{
		"token":         token,
		"refresh_token": refreshToken,
		"updated_at":    time.Now(),
	}
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", userID).Updates(updates).Error
	if err != nil {
		return apperr.Persistence("update tokens", err)
	}
	return nil
}
