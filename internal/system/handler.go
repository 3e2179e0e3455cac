// Package system serves the service's fixed, model-independent routes.
package system

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/codequiz-lambda/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Root godoc
// @Summary  Greeting
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Hello World",
	})
}

// ReadItem godoc
// @Summary  Echo an integer item id
// @Tags     system
// @Produce  json
// @Param    item_id  path      int  true  "Item ID"
// @Success  200      {object}  map[string]int
// @Failure  422      {object}  config.ErrorBody
// @Router   /items/{item_id} [get]
func (h *Handler) ReadItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "item_id"))
	if err != nil {
		config.Error(w, http.StatusUnprocessableEntity, "item_id must be an integer")
		return
	}

	config.JSON(w, http.StatusOK, map[string]int{
		"item_id": itemID,
	})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
