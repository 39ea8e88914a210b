// Package session maps opaque bearer tokens to the identity captured at login.
package session

import (
	"context"

	"casexpert/models"
	"casexpert/utils"
)

// ErrUnauthorized is returned for unknown, revoked or expired tokens.
var ErrUnauthorized = utils.ErrUnauthorized

// Store issues and resolves session tokens. A user may hold any number of
// live tokens at once.
type Store interface {
	Create(ctx context.Context, email string, role models.Role) (string, error)
	Resolve(ctx context.Context, token string) (*models.Session, error)
	Revoke(ctx context.Context, token string) error
}
