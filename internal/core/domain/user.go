package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Identity is the authenticated principal extracted from a verified Telegram
// init-data payload. Built fresh per request, never persisted.
type Identity struct {
	UserID   string
	AuthDate time.Time
}

// ResolveRole maps an authenticated user id to its role. With no admin chat
// id configured nobody resolves to admin.
func ResolveRole(userID, adminChatID string) string {
	if adminChatID != "" && userID == adminChatID {
		return RoleAdmin
	}
	return RoleClient
}
