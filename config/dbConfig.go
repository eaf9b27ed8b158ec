package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Storage backend selectors.
const (
	BackendMongo  = "mongo"
	BackendLocal  = "local"
	BackendMemory = "memory"
)

// Config keeps runtime settings for the server.
type Config struct {
	Port           string
	StorageBackend string
	MongoURI       string
	MongoDatabase  string
	LocalDBPath    string
	SecretKey      string
}

// Load reads configuration from the environment, pulling in a .env file
// when one is present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Config{
		Port:           strings.TrimSpace(os.Getenv("PORT")),
		StorageBackend: strings.TrimSpace(os.Getenv("STORAGE_BACKEND")),
		MongoURI:       strings.TrimSpace(os.Getenv("DB")),
		MongoDatabase:  strings.TrimSpace(os.Getenv("DB_NAME")),
		LocalDBPath:    strings.TrimSpace(os.Getenv("LOCAL_DB_PATH")),
		SecretKey:      strings.TrimSpace(os.Getenv("SECRET_KEY")),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.StorageBackend == "" {
		cfg.StorageBackend = BackendLocal
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "menudesigner"
	}
	if cfg.LocalDBPath == "" {
		cfg.LocalDBPath = "menudesigner.db"
	}

	switch cfg.StorageBackend {
	case BackendMongo, BackendLocal, BackendMemory:
	default:
		return cfg, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	if cfg.StorageBackend == BackendMongo && cfg.MongoURI == "" {
		return cfg, fmt.Errorf("DB is required when STORAGE_BACKEND=mongo")
	}
	if cfg.SecretKey == "" {
		return cfg, fmt.Errorf("SECRET_KEY is required")
	}

	return cfg, nil
}

// ConnectMongo dials the hosted backend and verifies the connection.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB")
	return client, nil
}
