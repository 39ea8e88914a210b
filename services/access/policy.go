// Package access decides which cases a caller may see and change.
package access

import "casexpert/models"

// CanView reports whether caller's role partition includes c. Unknown roles
// see nothing.
func CanView(caller models.Caller, c models.Case) bool {
	switch caller.Role {
	case models.RoleAdmin:
		return true
	case models.RoleUser:
		return c.ClientEmail == caller.Email
	case models.RoleLawyer:
		// An unbound lawyer matches only unassigned cases.
		return c.LawyerID == caller.LawyerID
	default:
		return false
	}
}

// Visible filters cases down to the caller's partition, preserving order.
func Visible(caller models.Caller, cases []models.Case) []models.Case {
	out := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if CanView(caller, c) {
			out = append(out, c)
		}
	}
	return out
}

var mutableFields = map[models.Role]map[string]bool{
	models.RoleUser:   {models.FieldDescription: true},
	models.RoleLawyer: {models.FieldStatus: true},
}

// CanMutate reports whether caller may change the named fields of c. Admins
// may change anything; clients only the description of their own cases;
// lawyers only the status of cases assigned to them.
func CanMutate(caller models.Caller, c models.Case, fields []string) bool {
	if caller.Role == models.RoleAdmin {
		return true
	}
	if !CanView(caller, c) {
		return false
	}
	allowed, ok := mutableFields[caller.Role]
	if !ok {
		return false
	}
	for _, f := range fields {
		if !allowed[f] {
			return false
		}
	}
	return true
}

// CanCreate reports whether caller may open a case for clientEmail. Clients
// may only open cases for themselves; lawyers may not open cases.
func CanCreate(caller models.Caller, clientEmail string) bool {
	switch caller.Role {
	case models.RoleAdmin:
		return true
	case models.RoleUser:
		return clientEmail == "" || clientEmail == caller.Email
	default:
		return false
	}
}

// CanDelete reports whether caller may remove c.
func CanDelete(caller models.Caller, c models.Case) bool {
	switch caller.Role {
	case models.RoleAdmin:
		return true
	case models.RoleUser:
		return c.ClientEmail == caller.Email
	default:
		return false
	}
}
