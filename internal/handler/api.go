package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/linoawt/Linostudiong/internal/leads"
	"github.com/linoawt/Linostudiong/internal/models"
)

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.manager.Config())
}

func (h *Handler) handleSubmitLead(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Budget  string `json:"budget"`
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Type == "" {
		body.Type = string(models.LeadContactForm)
	}

	cfg := h.manager.Config()
	sub := leads.Submission{
		Name:    strings.TrimSpace(body.Name),
		Email:   strings.TrimSpace(body.Email),
		Budget:  strings.TrimSpace(body.Budget),
		Message: strings.TrimSpace(body.Message),
		Type:    models.LeadType(body.Type),
	}

	code, err := h.pipeline.Submit(r.Context(), sub, cfg.CouponPrefix)
	if err != nil {
		switch {
		case errors.Is(err, leads.ErrBusy):
			h.writeError(w, http.StatusTooManyRequests, "A submission is already in progress")
		case errors.Is(err, leads.ErrInvalid):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.writeError(w, http.StatusBadGateway, "Could not save your submission, please try again")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"referenceCode": code,
		"followUpUrl":   followUpURL(cfg, sub, code),
	})
}

// followUpURL builds the pre-filled WhatsApp deep link shown after a
// successful submission, or "" when no usable phone number is configured.
func followUpURL(cfg *models.SiteConfig, sub leads.Submission, code string) string {
	var digits strings.Builder
	for _, r := range cfg.ContactPhone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() < 7 {
		return ""
	}

	msg := fmt.Sprintf("Hello %s! I am %s. My reference code is %s. Details: %s",
		cfg.SiteName, sub.Name, code, sub.Message)
	if sub.Budget != "" {
		msg = fmt.Sprintf("Hello %s! I am %s. I'm interested in a project with a budget of %s. My reference code is %s. Details: %s",
			cfg.SiteName, sub.Name, sub.Budget, code, sub.Message)
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(msg)
}
