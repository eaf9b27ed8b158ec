package routes

import (
	"net/http"

	controller "github.com/PumbaSquek/chiedimi-tutto-subito/controllers"
	"github.com/gorilla/mux"
)

func CatalogProtectedRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/catalog", h.GetCatalog).Methods(http.MethodGet)
	router.HandleFunc("/catalog/{category_id}/dishes", h.CreateDish).Methods(http.MethodPost)
	router.HandleFunc("/catalog/dishes/{dish_id}", h.UpdateDish).Methods(http.MethodPatch)
	router.HandleFunc("/catalog/{category_id}/dishes/{dish_id}", h.DeleteDish).Methods(http.MethodDelete)
}
