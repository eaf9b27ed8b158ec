package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an operator account. Password always holds a bcrypt hash,
// never the plaintext credential.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-" gorm:"-"`
	User_id       string             `bson:"user_id" json:"user_id" gorm:"column:user_id;primaryKey"`
	Username      string             `bson:"username" json:"username" validate:"required,min=3" gorm:"column:username;uniqueIndex"`
	Password      string             `bson:"password" json:"-" validate:"required,min=6" gorm:"column:password"`
	Token         string             `bson:"token" json:"-" gorm:"column:token"`
	Refresh_Token string             `bson:"refresh_token" json:"-" gorm:"column:refresh_token"`
	Created_at    time.Time          `bson:"created_at" json:"created_at" gorm:"column:created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at" gorm:"column:updated_at"`
}
