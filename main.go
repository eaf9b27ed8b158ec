package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PumbaSquek/chiedimi-tutto-subito/auth"
	"github.com/PumbaSquek/chiedimi-tutto-subito/config"
	controller "github.com/PumbaSquek/chiedimi-tutto-subito/controllers"
	"github.com/PumbaSquek/chiedimi-tutto-subito/helper"
	middleware "github.com/PumbaSquek/chiedimi-tutto-subito/middlewares"
	"github.com/PumbaSquek/chiedimi-tutto-subito/routes"
	"github.com/PumbaSquek/chiedimi-tutto-subito/session"
	"github.com/PumbaSquek/chiedimi-tutto-subito/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var store storage.Store
	switch cfg.StorageBackend {
	case config.BackendMongo:
		client, err := config.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.Fatal(err)
		}
		store = storage.NewMongoStore(client.Database(cfg.MongoDatabase))
	case config.BackendLocal:
		local, err := storage.NewLocalStore(cfg.LocalDBPath)
		if err != nil {
			log.Fatal(err)
		}
		store = local
	case config.BackendMemory:
		store = storage.NewMemoryStore()
	}

	tokens := helper.NewTokenManager(cfg.SecretKey)

	// The hosted backend bridges usernames onto an email-based identity
	// scheme; the local backends keep their own credential table.
	var gateway auth.Gateway
	if cfg.StorageBackend == config.BackendMongo {
		gateway = auth.NewRemoteGateway(store, tokens)
	} else {
		gateway = auth.NewLocalGateway(store, tokens)
	}

	sessions := session.NewManager()
	h := controller.NewHandler(gateway, store, sessions)

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.PublicRoutes(router, h)

	// Apply Authentication Middleware to Protected Routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication(tokens, h))
	routes.ProtectedRoutes(securedRoutes, h)
	routes.CatalogProtectedRoutes(securedRoutes, h)
	routes.MenuProtectedRoutes(securedRoutes, h)

	log.Printf("Server running on port %s (storage backend: %s)", cfg.Port, cfg.StorageBackend)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
