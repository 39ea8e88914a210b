// File: utils/constants.go
package utils

// SessionCachePrefix is the prefix used for Redis session keys.
const SessionCachePrefix = "session:"

// LegalDisclaimer is appended by every fallback completion.
const LegalDisclaimer = "This is general legal information and not legal advice. Consult a licensed lawyer for specific guidance."
