package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/linoawt/Linostudiong/internal/auth"
	"github.com/linoawt/Linostudiong/internal/cache"
	"github.com/linoawt/Linostudiong/internal/content"
	"github.com/linoawt/Linostudiong/internal/leads"
	"github.com/linoawt/Linostudiong/internal/middleware"
	"github.com/linoawt/Linostudiong/internal/store"
)

type Handler struct {
	manager  *content.Manager
	gate     *auth.Gate
	store    *store.Client
	cache    *cache.Cache
	pipeline *leads.Pipeline
	catalog  *content.Catalog

	tmplDir      string
	csrfSecret   string
	cookieDomain string
}

func New(m *content.Manager, g *auth.Gate, s *store.Client, c *cache.Cache,
	p *leads.Pipeline, tmplDir, csrfSecret, cookieDomain string) *Handler {
	return &Handler{
		manager:      m,
		gate:         g,
		store:        s,
		cache:        c,
		pipeline:     p,
		catalog:      content.NewCatalog(g, s, m),
		tmplDir:      tmplDir,
		csrfSecret:   csrfSecret,
		cookieDomain: cookieDomain,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.CleanPath)
	r.Use(middleware.Admin(h.gate))

	fs := http.StripPrefix("/static/", http.FileServer(http.Dir("static")))
	r.Handle("/static/*", fs)

	// Public site
	r.Get("/", h.handleIndex)
	r.Get("/og.png", h.handleOGImage)
	r.Get("/api/config", h.handleGetConfig)
	r.Post("/api/leads/submit", h.handleSubmitLead)

	// Admin surface
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", h.handleAdminPage)
		r.Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)

		r.Route("/api", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Use(h.csrfMiddleware)

			r.Post("/config", h.handleSaveConfig)
			r.Get("/leads", h.handleListLeads)
			r.Post("/projects", h.handleAddProject)
			r.Post("/projects/{id}/delete", h.handleDeleteProject)
			r.Post("/services", h.handleAddService)
			r.Post("/services/{id}/delete", h.handleDeleteService)
		})
	})

	return r
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !middleware.IsAdmin(r.Context()) {
			h.writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) csrfMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}
		if !h.validateCSRF(r) {
			h.writeError(w, http.StatusForbidden, "Invalid CSRF token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]any{"success": false, "message": message})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
		"truncate": func(s string, n int) string {
			runes := []rune(s)
			if len(runes) <= n {
				return s
			}
			return string(runes[:n]) + "..."
		},
		"join": strings.Join,
	}

	if data == nil {
		data = make(map[string]any)
	}
	data["Config"] = h.manager.Config()
	data["IsAdmin"] = middleware.IsAdmin(r.Context())
	if middleware.IsAdmin(r.Context()) {
		data["CSRFToken"] = h.generateCSRF(r)
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(
		filepath.Join(h.tmplDir, "base.html"),
		filepath.Join(h.tmplDir, page),
	)
	if err != nil {
		log.Printf("template parse error (%s): %v", page, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("template execute error (%s): %v", page, err)
	}
}

func (h *Handler) generateCSRF(r *http.Request) string {
	cookie, err := r.Cookie("session")
	if err != nil {
		return ""
	}
	return h.csrfForToken(cookie.Value)
}

func (h *Handler) csrfForToken(token string) string {
	mac := hmac.New(sha256.New, []byte(h.csrfSecret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))[:32]
}

func (h *Handler) validateCSRF(r *http.Request) bool {
	expected := h.generateCSRF(r)
	if expected == "" {
		return false
	}
	token := r.Header.Get("X-CSRF-Token")
	if token == "" {
		_ = r.ParseForm()
		token = r.FormValue("csrf_token")
	}
	return hmac.Equal([]byte(token), []byte(expected))
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, r *http.Request, token string, maxAge int) {
	secure := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
	cookie := &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cookieDomain != "" {
		cookie.Domain = h.cookieDomain
	}
	http.SetCookie(w, cookie)
}
