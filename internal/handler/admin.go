package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/linoawt/Linostudiong/internal/auth"
	"github.com/linoawt/Linostudiong/internal/content"
	"github.com/linoawt/Linostudiong/internal/middleware"
	"github.com/linoawt/Linostudiong/internal/models"
	"github.com/linoawt/Linostudiong/internal/store"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	} else {
		_ = r.ParseForm()
		creds.Password = r.FormValue("password")
		creds.Email = r.FormValue("email")
	}

	var token string
	var err error
	if creds.Email != "" {
		token, err = h.gate.LoginWithEmail(r.Context(), creds.Email, creds.Password)
	} else {
		token, err = h.gate.LoginWithKey(r.Context(), creds.Password)
	}
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccessDenied):
			h.writeError(w, http.StatusUnauthorized, "Access denied")
		case errors.Is(err, auth.ErrServiceUnavailable):
			h.writeError(w, http.StatusServiceUnavailable, "Service unavailable")
		default:
			h.writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	h.setSessionCookie(w, r, token, 30*24*3600)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"csrfToken": h.csrfForToken(token),
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session"); err == nil {
		h.gate.Logout(r.Context(), cookie.Value)
	}
	h.setSessionCookie(w, r, "", -1)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

func (h *Handler) handleSaveConfig(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Fields map[string]string     `json:"fields"`
		Skills *[]models.Skill       `json:"skills"`
		FAQs   *[]models.FAQItem     `json:"faqs"`
		Plans  *[]models.PricingPlan `json:"plans"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	editor := content.NewEditor(h.gate, h.store, h.cache, h.manager)
	for path, value := range body.Fields {
		if err := editor.UpdateField(path, value); err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if body.Skills != nil {
		editor.SetSkills(*body.Skills)
	}
	if body.FAQs != nil {
		editor.SetFAQs(*body.FAQs)
	}
	if body.Plans != nil {
		editor.SetPlans(*body.Plans)
	}

	if err := editor.Save(r.Context()); err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			h.writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		h.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) handleListLeads(w http.ResponseWriter, r *http.Request) {
	list, err := h.pipeline.List(r.Context())
	if err != nil {
		h.writeError(w, http.StatusBadGateway, "Could not load leads")
		return
	}
	if list == nil {
		list = []models.Lead{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleAddProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.catalog.AddProject(r.Context(), p)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, created)
}

func (h *Handler) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeCatalogError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) handleAddService(w http.ResponseWriter, r *http.Request) {
	var s models.Service
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.catalog.AddService(r.Context(), s)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, created)
}

func (h *Handler) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteService(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeCatalogError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		h.writeError(w, http.StatusUnauthorized, "Authentication required")
	case store.IsUnavailable(err):
		h.writeError(w, http.StatusBadGateway, "Backend unavailable, nothing was changed")
	default:
		h.writeError(w, http.StatusBadRequest, err.Error())
	}
}

func (h *Handler) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	if middleware.IsAdmin(r.Context()) {
		list, err := h.pipeline.List(r.Context())
		if err == nil {
			data["Leads"] = list
		}
	}
	h.render(w, r, "admin.html", data)
}
