package production

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/httpx"
)

// Handler exposes production HTTP endpoints. Records are addressed by the
// title query parameter, taken verbatim.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/productions", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.listOrShow)
		r.Put("/", h.update)
		r.Delete("/", h.destroy)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.DecodePayload(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	id, err := h.service.Create(r.Context(), payload)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) listOrShow(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("title") {
		h.show(w, r)
		return
	}
	list, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}

// show answers a missing production with 200 and a message, unlike update
// and destroy which answer 404.
func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Show(r.Context(), r.URL.Query().Get("title"))
	if errors.Is(err, apperr.ErrNotFound) {
		httpx.JSON(w, http.StatusOK, map[string]string{"message": apperr.Message(err)})
		return
	}
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]*View{"production": view})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.DecodePayload(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	p, err := h.service.Update(r.Context(), r.URL.Query().Get("title"), payload)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *Handler) destroy(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Destroy(r.Context(), r.URL.Query().Get("title")); err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"success": "production deleted"})
}
