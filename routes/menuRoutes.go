package routes

import (
	"net/http"

	controller "github.com/PumbaSquek/chiedimi-tutto-subito/controllers"

	"github.com/gorilla/mux"
)

func MenuProtectedRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/menu", h.GetMenu).Methods(http.MethodGet)
	router.HandleFunc("/menu/title", h.SetTitle).Methods(http.MethodPut)
	router.HandleFunc("/menu/items", h.AddItem).Methods(http.MethodPost)
	router.HandleFunc("/menu/items/{dish_id}", h.RemoveItem).Methods(http.MethodDelete)
	router.HandleFunc("/menu/save", h.SaveMenu).Methods(http.MethodPost)
	router.HandleFunc("/menu/load", h.LoadMenu).Methods(http.MethodPost)
}
