package httpapi

import (
	"errors"
	"net/http"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/httpx"

	"github.com/gorilla/mux"
)

const (
	maxImageUpload = 10 << 20
	// room for multipart boundaries and part headers
	multipartOverhead = 64 << 10
)

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.Categories.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	var c domain.Category
	if err := httpx.DecodeJSON(r, &c); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	if err := h.Categories.Create(r.Context(), &c); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	var c domain.Category
	if err := httpx.DecodeJSON(r, &c); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	c.ID = mux.Vars(r)["id"]
	if err := h.Categories.Update(r.Context(), &c); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	if err := h.Categories.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	filter := domain.MenuFilter{
		CategoryID: r.URL.Query().Get("categoryId"),
		Query:      r.URL.Query().Get("q"),
	}
	items, err := h.Menu.List(r.Context(), filter)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	var item domain.MenuItem
	if err := httpx.DecodeJSON(r, &item); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	if err := h.Menu.Create(r.Context(), &item); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	var item domain.MenuItem
	if err := httpx.DecodeJSON(r, &item); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	item.ID = mux.Vars(r)["id"]
	if err := h.Menu.Update(r.Context(), &item); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	if err := h.Menu.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setRemainQuantity(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	var body struct {
		RemainQuantity int `json:"remainQuantity"`
	}
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	id := mux.Vars(r)["id"]
	if err := h.Menu.SetRemainQuantity(r.Context(), id, body.RemainQuantity); err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"id": id, "remainQuantity": body.RemainQuantity})
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request, _ *domain.User) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageUpload+multipartOverhead)
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			httpx.WriteError(w, r, h.Log, apperr.InvalidErr("File too large", nil).With(err))
		case errors.Is(err, http.ErrNotMultipart):
			httpx.WriteError(w, r, h.Log, apperr.InvalidErr("Expected a multipart form with an image field", nil).With(err))
		default:
			httpx.WriteError(w, r, h.Log, apperr.InvalidErr("Invalid multipart form", nil).With(err))
		}
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.WriteError(w, r, h.Log, apperr.InvalidErr("Error retrieving the file", nil).With(err))
		return
	}
	defer file.Close()

	imageURL, err := h.Menu.UploadImage(r.Context(), mux.Vars(r)["id"], file, header.Filename)
	if err != nil {
		httpx.WriteError(w, r, h.Log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message":  "Image uploaded successfully",
		"imageUrl": imageURL,
	})
}
