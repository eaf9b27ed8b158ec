package models

import (
	"time"
)

// MenuItem is one dish as it appears both in the catalog and in a draft.
// Price stays a decimal-as-string so "8.00" survives round-trips untouched.
type MenuItem struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name" validate:"required"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Price       string `bson:"price" json:"price" validate:"required"`
	Category_id string `bson:"category_id" json:"category_id" validate:"required"`
}

// StoredMenu is the persisted projection of a user's draft. One per user,
// overwritten wholesale on every save.
type StoredMenu struct {
	Owner_user_id string     `bson:"owner_user_id" json:"owner_user_id"`
	Title         string     `bson:"title" json:"title"`
	Items         []MenuItem `bson:"items" json:"items"`
	Updated_at    time.Time  `bson:"updated_at" json:"updated_at"`
}
