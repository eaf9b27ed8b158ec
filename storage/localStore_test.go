package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/PumbaSquek/chiedimi-tutto-subito/apperr"
	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
)

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	return s
}

func TestLocalStoreMenuRoundTrip(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	if _, err := s.LoadMenu(ctx, "user_1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("first-time load = %v, want ErrNotFound", err)
	}

	menu := &models.StoredMenu{
		Owner_user_id: "user_1",
		Title:         "Menu della Casa",
		Items: []models.MenuItem{
			{ID: "bruschetta", Name: "Bruschetta Classica", Description: "Pane tostato", Price: "9.00", Category_id: "antipasti"},
			{ID: "caffe", Name: "Caffè Espresso", Price: "1.50", Category_id: "bevande"},
		},
	}
	if err := s.SaveMenu(ctx, menu); err != nil {
		t.Fatalf("SaveMenu: %v", err)
	}

	loaded, err := s.LoadMenu(ctx, "user_1")
	if err != nil {
		t.Fatalf("LoadMenu: %v", err)
	}
	if loaded.Title != "Menu della Casa" || len(loaded.Items) != 2 {
		t.Fatalf("round trip lost data: %+v", loaded)
	}
	if loaded.Items[0].Price != "9.00" || loaded.Items[0].Description != "Pane tostato" {
		t.Errorf("item fields lost: %+v", loaded.Items[0])
	}
	if loaded.Items[1].Description != "" {
		t.Errorf("empty description became %q", loaded.Items[1].Description)
	}
}

func TestLocalStoreSaveReplacesItemList(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	if err := s.SaveMenu(ctx, &models.StoredMenu{
		Owner_user_id: "user_1",
		Title:         "Prima",
		Items: []models.MenuItem{
			{ID: "bruschetta", Name: "Bruschetta", Price: "8.00", Category_id: "antipasti"},
			{ID: "carbonara", Name: "Carbonara", Price: "12.00", Category_id: "primi"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	if err := s.SaveMenu(ctx, &models.StoredMenu{
		Owner_user_id: "user_1",
		Title:         "Seconda",
		Items:         []models.MenuItem{{ID: "tiramisu", Name: "Tiramisù", Price: "6.00", Category_id: "dolci"}},
	}); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadMenu(ctx, "user_1")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Title != "Seconda" || len(loaded.Items) != 1 || loaded.Items[0].ID != "tiramisu" {
		t.Errorf("save did not replace the record wholesale: %+v", loaded)
	}
}

func TestLocalStoreSaveEmptyItemList(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	if err := s.SaveMenu(ctx, &models.StoredMenu{Owner_user_id: "user_1", Title: "Vuoto"}); err != nil {
		t.Fatal(err)
	}
	loaded, err := s.LoadMenu(ctx, "user_1")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Items == nil || len(loaded.Items) != 0 {
		t.Errorf("empty item list round-tripped as %v", loaded.Items)
	}
}

func TestLocalStoreMenusAreKeyedPerUser(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	s.SaveMenu(ctx, &models.StoredMenu{Owner_user_id: "user_1", Title: "Menu Uno"})
	s.SaveMenu(ctx, &models.StoredMenu{Owner_user_id: "user_2", Title: "Menu Due"})

	one, err := s.LoadMenu(ctx, "user_1")
	if err != nil {
		t.Fatal(err)
	}
	two, err := s.LoadMenu(ctx, "user_2")
	if err != nil {
		t.Fatal(err)
	}
	if one.Title != "Menu Uno" || two.Title != "Menu Due" {
		t.Errorf("cross-user mixup: %q / %q", one.Title, two.Title)
	}
}

func TestLocalStoreUsers(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	if _, err := s.FindUserByUsername(ctx, "chef1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("lookup before create = %v, want ErrNotFound", err)
	}

	user := &models.User{User_id: "u1", Username: "chef1", Password: "hash"}
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := s.CreateUser(ctx, &models.User{User_id: "u2", Username: "chef1", Password: "other"}); !errors.Is(err, apperr.ErrDuplicate) {
		t.Fatalf("duplicate CreateUser = %v, want ErrDuplicate", err)
	}

	found, err := s.FindUserByID(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if found.Username != "chef1" || found.Password != "hash" {
		t.Errorf("stored user = %+v", found)
	}

	if err := s.UpdateTokens(ctx, "u1", "tok", "ref"); err != nil {
		t.Fatal(err)
	}
	found, _ = s.FindUserByID(ctx, "u1")
	if found.Token != "tok" || found.Refresh_Token != "ref" {
		t.Errorf("tokens not persisted: %q %q", found.Token, found.Refresh_Token)
	}
}
