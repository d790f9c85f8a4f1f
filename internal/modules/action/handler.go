package action

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/productions-api/internal/httpx"
)

// Handler serves one action variant. Announcements take their key from the
// title query, articles from the path. name and plural label the JSON envelopes.
type Handler[T any] struct {
	resource Resource[T]
	byQuery  bool
	name     string
	plural   string
}

// NewAnnouncementHandler addresses announcements by ?title= on /actions.
func NewAnnouncementHandler(resource Resource[Announcement]) *Handler[Announcement] {
	return &Handler[Announcement]{resource: resource, byQuery: true, name: "action", plural: "actions"}
}

// NewArticleHandler addresses articles by id on /articles/{id}.
func NewArticleHandler(resource Resource[Article]) *Handler[Article] {
	return &Handler[Article]{resource: resource, name: "article", plural: "articles"}
}

func (h *Handler[T]) RegisterRoutes(r chi.Router) {
	r.Route("/"+h.plural, func(r chi.Router) {
		r.Post("/", h.create)
		if h.byQuery {
			r.Get("/", h.listOrGet)
			r.Put("/", h.update)
			r.Delete("/", h.delete)
			return
		}
		r.Get("/", h.list)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler[T]) key(r *http.Request) string {
	if h.byQuery {
		return r.URL.Query().Get("title")
	}
	return chi.URLParam(r, "id")
}

func (h *Handler[T]) create(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.DecodePayload(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	item, err := h.resource.Create(r.Context(), payload)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

// listOrGet lists without a title query and resolves one record with it, even
// when the title is empty.
func (h *Handler[T]) listOrGet(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("title") {
		h.get(w, r)
		return
	}
	h.list(w, r)
}

func (h *Handler[T]) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.resource.List(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{h.plural: items})
}

func (h *Handler[T]) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.resource.Get(r.Context(), h.key(r))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{h.name: item})
}

func (h *Handler[T]) update(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.DecodePayload(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	item, err := h.resource.Update(r.Context(), h.key(r), payload)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{h.name: item})
}

func (h *Handler[T]) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.resource.Delete(r.Context(), h.key(r)); err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"success": h.name + " deleted"})
}
