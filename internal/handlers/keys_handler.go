package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/marketpulse/internal/common"
	"github.com/ternarybob/marketpulse/internal/interfaces"
	"github.com/ternarybob/marketpulse/internal/models"
)

// KeysHandler stores per-session API key overrides. Keys live in memory only
// and never appear in responses or logs.
type KeysHandler struct {
	credentials interfaces.CredentialService
	logger      arbor.ILogger
}

func NewKeysHandler(creds interfaces.CredentialService, logger arbor.ILogger) *KeysHandler {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &KeysHandler{
		credentials: creds,
		logger:      logger,
	}
}

// UpdateKeysHandler handles POST /api/keys
func (h *KeysHandler) UpdateKeysHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req models.UpdateKeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	sessionID := EnsureSession(w, r)
	messages := h.credentials.SetSessionKeys(sessionID, &req)
	if len(messages) == 0 {
		messages = []string{"No keys were provided; session unchanged."}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"messages": messages,
	})
}
