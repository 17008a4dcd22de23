package handler

import "net/http"

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", nil)
}
