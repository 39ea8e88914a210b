package models

// Role partitions callers for case visibility.
type Role string

const (
	RoleUser   Role = "user"
	RoleLawyer Role = "lawyer"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleLawyer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID       string `bson:"id" json:"id"`
	Email    string `bson:"email" json:"email"` // unique, login key
	Name     string `bson:"name" json:"name"`
	Role     Role   `bson:"role" json:"role"`
	LawyerID string `bson:"lawyerId,omitempty" json:"lawyerId,omitempty"` // set only for lawyer accounts
}

// UserPatch carries admin edits; nil fields are left untouched.
type UserPatch struct {
	Name     *string `json:"name"`
	Role     *Role   `json:"role"`
	LawyerID *string `json:"lawyerId"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
}

// LoginResponse pairs a fresh bearer token with the account it belongs to.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Caller is the authenticated identity of a request, resolved from the
// session token and the current user record.
type Caller struct {
	UserID   string
	Email    string
	Role     Role
	LawyerID string
}
