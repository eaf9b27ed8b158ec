package routes

import (
	controller "github.com/PumbaSquek/chiedimi-tutto-subito/controllers"

	"github.com/gorilla/mux"
)

func PublicRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/users/signup", h.SignUp).Methods("POST")
	router.HandleFunc("/users/login", h.Login).Methods("POST")
}

func ProtectedRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/users/logout", h.Logout).Methods("POST")
	router.HandleFunc("/users/me", h.Me).Methods("GET")
}
