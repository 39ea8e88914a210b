package access

import (
	"testing"

	"casexpert/models"
)

var fixture = []models.Case{
	{ID: "c1", ClientEmail: "client1@example.com", LawyerID: "l1"},
	{ID: "c2", ClientEmail: "client2@example.com", LawyerID: "l2"},
	{ID: "c3", ClientEmail: "client1@example.com", LawyerID: ""},
	{ID: "c4", ClientEmail: "client3@example.com", LawyerID: "l2"},
}

func ids(cases []models.Case) []string {
	out := make([]string, len(cases))
	for i, c := range cases {
		out[i] = c.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVisiblePartitions(t *testing.T) {
	tests := []struct {
		name   string
		caller models.Caller
		want   []string
	}{
		{"admin sees all", models.Caller{Role: models.RoleAdmin}, []string{"c1", "c2", "c3", "c4"}},
		{"user sees own", models.Caller{Role: models.RoleUser, Email: "client1@example.com"}, []string{"c1", "c3"}},
		{"user with no cases", models.Caller{Role: models.RoleUser, Email: "nobody@example.com"}, []string{}},
		{"lawyer sees assigned", models.Caller{Role: models.RoleLawyer, LawyerID: "l2"}, []string{"c2", "c4"}},
		{"unbound lawyer sees unassigned", models.Caller{Role: models.RoleLawyer}, []string{"c3"}},
		{"unknown role sees nothing", models.Caller{Role: "auditor", Email: "client1@example.com"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Visible(tt.caller, fixture))
			if !equal(got, tt.want) {
				t.Fatalf("Visible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibleIsSubsetInOrder(t *testing.T) {
	callers := []models.Caller{
		{Role: models.RoleAdmin},
		{Role: models.RoleUser, Email: "client1@example.com"},
		{Role: models.RoleLawyer, LawyerID: "l2"},
	}
	for _, caller := range callers {
		got := Visible(caller, fixture)
		j := 0
		for _, c := range got {
			for j < len(fixture) && fixture[j].ID != c.ID {
				j++
			}
			if j == len(fixture) {
				t.Fatalf("%s: %s out of order or not in input", caller.Role, c.ID)
			}
		}
	}
}

func TestCanMutate(t *testing.T) {
	client := models.Caller{Role: models.RoleUser, Email: "client1@example.com"}
	lawyer := models.Caller{Role: models.RoleLawyer, LawyerID: "l2"}
	admin := models.Caller{Role: models.RoleAdmin}

	tests := []struct {
		name   string
		caller models.Caller
		c      models.Case
		fields []string
		want   bool
	}{
		{"admin any field", admin, fixture[1], []string{models.FieldLawyerID, models.FieldTitle}, true},
		{"client edits own description", client, fixture[0], []string{models.FieldDescription}, true},
		{"client cannot reassign", client, fixture[0], []string{models.FieldLawyerID}, false},
		{"client cannot touch other case", client, fixture[1], []string{models.FieldDescription}, false},
		{"lawyer updates status", lawyer, fixture[1], []string{models.FieldStatus}, true},
		{"lawyer cannot edit description", lawyer, fixture[1], []string{models.FieldStatus, models.FieldDescription}, false},
		{"lawyer cannot touch unassigned", lawyer, fixture[0], []string{models.FieldStatus}, false},
		{"empty patch on visible case", client, fixture[0], nil, true},
		{"unknown role", models.Caller{Role: "guest"}, fixture[0], nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutate(tt.caller, tt.c, tt.fields); got != tt.want {
				t.Fatalf("CanMutate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanCreateAndDelete(t *testing.T) {
	client := models.Caller{Role: models.RoleUser, Email: "client1@example.com"}
	lawyer := models.Caller{Role: models.RoleLawyer, LawyerID: "l1"}

	if !CanCreate(client, "") || !CanCreate(client, "client1@example.com") {
		t.Error("client should open cases for themselves")
	}
	if CanCreate(client, "client2@example.com") {
		t.Error("client opened a case for someone else")
	}
	if CanCreate(lawyer, "client1@example.com") {
		t.Error("lawyer opened a case")
	}
	if !CanDelete(client, fixture[0]) || CanDelete(client, fixture[1]) {
		t.Error("client delete scope wrong")
	}
	if CanDelete(lawyer, fixture[0]) {
		t.Error("lawyer deleted a case")
	}
}
