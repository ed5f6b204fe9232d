package interfaces

import (
	"github.com/ternarybob/marketpulse/internal/models"
)

// CredentialService resolves API keys for one request: session-scoped
// overrides falling back to process-level config defaults.
type CredentialService interface {
	// Resolve returns the effective credentials for a session. Unknown or
	// empty session IDs resolve to the process defaults.
	Resolve(sessionID string) models.Credentials

	// SetSessionKeys stores per-session overrides; empty values leave the
	// corresponding key untouched. Returns the human-readable confirmation
	// messages for keys that were updated.
	SetSessionKeys(sessionID string, req *models.UpdateKeysRequest) []string
}
