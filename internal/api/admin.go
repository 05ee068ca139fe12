package api

import "net/http"

func (h *Handler) adminSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.admin.Summarize(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) resetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.ResetAll(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type languagePayload struct {
	Language string `json:"language"`
}

func (h *Handler) getLanguage(w http.ResponseWriter, r *http.Request) {
	code, err := h.admin.Language(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, languagePayload{Language: code})
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req languagePayload
	if err := decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.admin.SetLanguage(r.Context(), req.Language); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}
