package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/PumbaSquek/chiedimi-tutto-subito/apperr"
	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
)

func TestMemoryStoreMenuRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.LoadMenu(ctx, "user_1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("first-time load = %v, want ErrNotFound", err)
	}

	menu := &models.StoredMenu{
		Owner_user_id: "user_1",
		Title:         "Il Nostro Menu",
		Items: []models.MenuItem{
			{ID: "bruschetta", Name: "Bruschetta Classica", Price: "8.00", Category_id: "antipasti"},
		},
	}
	if err := s.SaveMenu(ctx, menu); err != nil {
		t.Fatalf("SaveMenu: %v", err)
	}
	if menu.Updated_at.IsZero() {
		t.Error("SaveMenu did not set Updated_at")
	}

	loaded, err := s.LoadMenu(ctx, "user_1")
	if err != nil {
		t.Fatalf("LoadMenu: %v", err)
	}
	if loaded.Title != menu.Title || len(loaded.Items) != 1 || loaded.Items[0].Price != "8.00" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func TestMemoryStoreSaveOverwritesWholesale(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := &models.StoredMenu{
		Owner_user_id: "user_1",
		Title:         "Prima Versione",
		Items: []models.MenuItem{
			{ID: "bruschetta", Name: "Bruschetta", Price: "8.00", Category_id: "antipasti"},
			{ID: "carbonara", Name: "Carbonara", Price: "12.00", Category_id: "primi"},
		},
	}
	if err := s.SaveMenu(ctx, first); err != nil {
		t.Fatal(err)
	}

	second := &models.StoredMenu{
		Owner_user_id: "user_1",
		Title:         "Seconda Versione",
		Items: []models.MenuItem{
			{ID: "tiramisu", Name: "Tiramisù", Price: "6.00", Category_id: "dolci"},
		},
	}
	if err := s.SaveMenu(ctx, second); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadMenu(ctx, "user_1")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Title != "Seconda Versione" {
		t.Errorf("title = %q", loaded.Title)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].ID != "tiramisu" {
		t.Errorf("items were merged instead of replaced: %v", loaded.Items)
	}
}

func TestMemoryStoreDuplicateUsername(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.CreateUser(ctx, &models.User{User_id: "u1", Username: "chef1", Password: "hash"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	err := s.CreateUser(ctx, &models.User{User_id: "u2", Username: "chef1", Password: "hash"})
	if !errors.Is(err, apperr.ErrDuplicate) {
		t.Fatalf("duplicate CreateUser = %v, want ErrDuplicate", err)
	}

	// The existing account is untouched.
	user, err := s.FindUserByUsername(ctx, "chef1")
	if err != nil {
		t.Fatal(err)
	}
	if user.User_id != "u1" {
		t.Errorf("existing account replaced, user id = %q", user.User_id)
	}
}

func TestMemoryStoreUpdateTokens(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.UpdateTokens(ctx, "missing", "t", "r"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("UpdateTokens for unknown user = %v, want ErrNotFound", err)
	}

	s.CreateUser(ctx, &models.User{User_id: "u1", Username: "chef1"})
	if err := s.UpdateTokens(ctx, "u1", "tok", "ref"); err != nil {
		t.Fatal(err)
	}
	user, _ := s.FindUserByID(ctx, "u1")
	if user.Token != "tok" || user.Refresh_Token != "ref" {
		t.Errorf("tokens not stored: %q %q", user.Token, user.Refresh_Token)
	}
}
