// File: casexpert/handlers/bundle.go
package handlers

import (
	"casexpert/middleware"
)

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Auth middleware.Authenticator
	// LegacyCases leaves case routes open except for the listing.
	LegacyCases bool
	// AssistantLimiter throttles the assistant per client IP.
	AssistantLimiter *middleware.RateLimiter
	// UploadDir is served under /uploads when attachments are stored locally.
	UploadDir string

	Users   *UserHandler
	Cases   *CaseHandler
	Lawyers *LawyerHandler
	Storage *StorageHandler
	AI      *AIHandler
	Legal   *LegalHandler
}
