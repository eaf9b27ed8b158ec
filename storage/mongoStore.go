package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PumbaSquek/chiedimi-tutto-subito/apperr"
	"github.com/PumbaSquek/chiedimi-tutto-subito/models"
)

// MongoStore is the hosted-backend variant of the persistence gateway.
// Users and menus live in their own collections; menus are keyed by the
// owning user id.
type MongoStore struct {
	users *mongo.Collection
	menus *mongo.Collection
}

// NewMongoStore wires the store to its collections.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users: db.Collection("users"),
		menus: db.Collection("menus"),
	}
}

func (s *MongoStore) LoadMenu(ctx context.Context, userID string) (*models.StoredMenu, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var menu models.StoredMenu
	err := s.menus.FindOne(ctx, bson.M{"owner_user_id": userID}).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("load menu", err)
	}
	return &menu, nil
}

func (s *MongoStore) SaveMenu(ctx context.Context, menu *models.StoredMenu) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	menu.Updated_at = time.Now()

	items := menu.Items
	if items == nil {
		items = []models.MenuItem{}
	}

	updateObj := bson.D{
		{Key: "owner_user_id", Value: menu.Owner_user_id},
		{Key: "title", Value: menu.Title},
		{Key: "items", Value: items},
		{Key: "updated_at", Value: menu.Updated_at},
	}

	upsert := true
	filter := bson.M{"owner_user_id": menu.Owner_user_id}
	opt := options.UpdateOptions{Upsert: &upsert}

	_, err := s.menus.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateObj}}, &opt)
	if err != nil {
		return apperr.Persistence("save menu", err)
	}
	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := s.users.CountDocuments(ctx, bson.M{"username": user.Username})
	if err != nil {
		return apperr.Persistence("check username", err)
	}
	if count > 0 {
		return apperr.Duplicate("username already taken")
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return apperr.Persistence("create user", err)
	}
	return nil
}

func (s *MongoStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("find user", err)
	}
	return &user, nil
}

func (s *MongoStore) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("find user", err)
	}
	return &user, nil
}

func (s *MongoStore) UpdateTokens(ctx context.Context, userID, token, refreshToken string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	updateObj := bson.D{
		{Key: "token", Value: token},
		{Key: "refresh_token", Value: refreshToken},
		{Key: "updated_at", Value: time.Now()},
	}

	_, err := s.users.UpdateOne(ctx, bson.M{"user_id": userID}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		return apperr.Persistence("update tokens", err)
	}
	return nil
}
