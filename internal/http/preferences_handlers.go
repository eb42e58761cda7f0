package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"smoketaper/internal/store"

	"go.uber.org/zap"
)

const prefsKey = "prefs:user"

// Preferences is the ambient, process-wide user preference state. Nothing
// in the scheduling core reads it; it only round-trips through the KV
// store for the client.
type Preferences struct {
	DarkMode       bool   `json:"darkMode"`
	Language       string `json:"language"`
	ApplyToAllDays bool   `json:"applyToAllDays"`
}

func defaultPreferences() Preferences {
	return Preferences{Language: "en"}
}

// PreferencesHandler serves /api/preferences backed by the KV store.
type PreferencesHandler struct {
	kv     store.KV
	logger *zap.Logger
}

func NewPreferencesHandler(kv store.KV, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{kv: kv, logger: logger}
}

// GET /api/preferences
// A missing key or an unreachable Redis degrades to defaults; preference
// reads never fail the client.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.load(r))
}

// PUT /api/preferences (partial merge over current values)
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch struct {
		DarkMode       *bool   `json:"darkMode"`
		Language       *string `json:"language"`
		ApplyToAllDays *bool   `json:"applyToAllDays"`
	}
	if err := readBodyJSON(r, maxBodyBytes, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	prefs := h.load(r)
	if patch.DarkMode != nil {
		prefs.DarkMode = *patch.DarkMode
	}
	if patch.Language != nil {
		prefs.Language = *patch.Language
	}
	if patch.ApplyToAllDays != nil {
		prefs.ApplyToAllDays = *patch.ApplyToAllDays
	}

	raw, _ := json.Marshal(prefs)
	if err := h.kv.Set(r.Context(), prefsKey, string(raw), 0); err != nil {
		h.logger.Error("failed to save preferences", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save preferences"})
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (h *PreferencesHandler) load(r *http.Request) Preferences {
	prefs := defaultPreferences()
	raw, err := h.kv.Get(r.Context(), prefsKey)
	if err != nil {
		if !errors.Is(err, store.ErrMiss) {
			h.logger.Warn("preferences read failed, using defaults", zap.Error(err))
		}
		return prefs
	}
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		h.logger.Warn("stored preferences malformed, using defaults", zap.Error(err))
		return defaultPreferences()
	}
	return prefs
}
