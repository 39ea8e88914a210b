package cases

import (
	"context"
	"errors"
	"testing"
	"time"

	casesRepo "casexpert/database/repository/cases"
	recordsRepo "casexpert/database/repository/records"
	"casexpert/models"
	"casexpert/utils"

	"go.uber.org/zap"
)

var (
	admin   = &models.Caller{UserID: "u-admin", Email: "admin@casexpert.app", Role: models.RoleAdmin}
	client1 = &models.Caller{UserID: "u-user1", Email: "client1@example.com", Role: models.RoleUser}
	lawyer2 = &models.Caller{UserID: "u-lawyer1", Email: "rahul@lawfirm.com", Role: models.RoleLawyer, LawyerID: "l2"}
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func newService(t *testing.T, mode Mode) (*DefaultCaseService, *recordsRepo.Store) {
	t.Helper()
	ctx := context.Background()
	store, err := recordsRepo.NewStore(ctx, recordsRepo.NewMemorySnapshotBackend(nil), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if err := recordsRepo.Seed(ctx, store, fixedNow); err != nil {
		t.Fatal(err)
	}
	svc := NewCaseService(casesRepo.NewSnapshotCaseRepo(store), mode, zap.NewNop())
	svc.Now = func() time.Time { return fixedNow }
	return svc, store
}

func strPtr(s string) *string { return &s }

func TestCreateAppliesDefaults(t *testing.T) {
	svc, _ := newService(t, ModeStrict)
	ctx := context.Background()

	c, err := svc.Create(ctx, admin, models.CaseInput{})
	if err != nil {
		t.Fatal(err)
	}
	if c.ID == "" || c.Title != "Untitled Case" || c.Status != "open" {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if c.Description != "" || c.ClientEmail != "" || c.LawyerID != "" || c.Attachments == nil || len(c.Attachments) != 0 {
		t.Fatalf("empty defaults wrong: %+v", c)
	}
	if c.CreatedAt != fixedNow.UnixMilli() {
		t.Fatalf("createdAt = %d", c.CreatedAt)
	}

	got, err := svc.Get(ctx, admin, c.ID)
	if err != nil || got.ID != c.ID {
		t.Fatalf("created case not readable: %v %+v", err, got)
	}
}

func TestCreateUserForcedToOwnEmail(t *testing.T) {
	svc, _ := newService(t, ModeStrict)
	ctx := context.Background()

	c, err := svc.Create(ctx, client1, models.CaseInput{Title: strPtr("Tenancy notice")})
	if err != nil {
		t.Fatal(err)
	}
	if c.ClientEmail != client1.Email {
		t.Fatalf("clientEmail = %q", c.ClientEmail)
	}
	if _, err := svc.Create(ctx, client1, models.CaseInput{ClientEmail: strPtr("someone@else.com")}); utils.KindOf(err) != utils.KindForbidden {
		t.Fatalf("creating for another client: %v", err)
	}
	if _, err := svc.Create(ctx, lawyer2, models.CaseInput{}); utils.KindOf(err) != utils.KindForbidden {
		t.Fatalf("lawyer create: %v", err)
	}
	if _, err := svc.Create(ctx, nil, models.CaseInput{}); utils.KindOf(err) != utils.KindUnauthorized {
		t.Fatalf("anonymous create: %v", err)
	}
}

func TestListRoleFiltered(t *testing.T) {
	svc, _ := newService(t, ModeStrict)
	ctx := context.Background()

	tests := []struct {
		caller *models.Caller
		want   []string
	}{
		{admin, []string{"c1", "c2", "c3"}},
		{client1, []string{"c1"}},
		{lawyer2, []string{"c2"}},
	}
	for _, tt := range tests {
		got, err := svc.List(ctx, tt.caller)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %d cases, want %v", tt.caller.Role, len(got), tt.want)
		}
		for i := range got {
			if got[i].ID != tt.want[i] {
				t.Fatalf("%s: got %s at %d, want %s", tt.caller.Role, got[i].ID, i, tt.want[i])
			}
		}
	}
	if _, err := svc.List(ctx, nil); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("anonymous list: %v", err)
	}
}

func TestGetInvisibleIsNotFound(t *testing.T) {
	svc, _ := newService(t, ModeStrict)
	if _, err := svc.Get(context.Background(), client1, "c2"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
	if _, err := svc.Get(context.Background(), admin, "missing"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestPatchMergesAndProtects(t *testing.T) {
	svc, _ := newService(t, ModeStrict)
	ctx := context.Background()

	updated, err := svc.Patch(ctx, lawyer2, "c2", models.CasePatch{Status: strPtr("closed")})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != "closed" || updated.Title != "State vs. Ravi" || updated.ClientEmail != "client2@example.com" {
		t.Fatalf("merge wrong: %+v", updated)
	}
	if updated.CreatedAt != fixedNow.UnixMilli()-43200000 {
		t.Fatalf("createdAt changed: %d", updated.CreatedAt)
	}

	if _, err := svc.Patch(ctx, lawyer2, "c2", models.CasePatch{Description: strPtr("x")}); utils.KindOf(err) != utils.KindForbidden {
		t.Fatalf("lawyer description edit: %v", err)
	}
	if _, err := svc.Patch(ctx, client1, "c2", models.CasePatch{Description: strPtr("x")}); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("client edit of invisible case: %v", err)
	}
	if _, err := svc.Patch(ctx, admin, "nope", models.CasePatch{}); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("patch missing: %v", err)
	}

	got, _ := svc.Get(ctx, admin, "c2")
	if got.Description != "Criminal case with cyber evidence review." {
		t.Fatalf("rejected patch leaked: %+v", got)
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	svc, _ := newService(t, ModeStrict)
	ctx := context.Background()

	existed, err := svc.Delete(ctx, admin, "c3")
	if err != nil || !existed {
		t.Fatalf("delete c3: %v %v", existed, err)
	}
	existed, err = svc.Delete(ctx, admin, "c3")
	if err != nil || existed {
		t.Fatalf("second delete: %v %v", existed, err)
	}
	all, _ := svc.List(ctx, admin)
	if len(all) != 2 {
		t.Fatalf("store changed by missing delete: %d", len(all))
	}

	existed, err = svc.Delete(ctx, client1, "c2")
	if err != nil || existed {
		t.Fatalf("invisible delete should look missing: %v %v", existed, err)
	}
	if _, err := svc.Delete(ctx, lawyer2, "c2"); utils.KindOf(err) != utils.KindForbidden {
		t.Fatalf("lawyer delete: %v", err)
	}
}

func TestSearchStrictIsRoleFiltered(t *testing.T) {
	svc, _ := newService(t, ModeStrict)
	ctx := context.Background()

	got, err := svc.Search(ctx, client1, "case regarding")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("client search leaked: %+v", got)
	}

	got, _ = svc.Search(ctx, admin, "case regarding")
	if len(got) != 3 {
		t.Fatalf("admin search: %d hits", len(got))
	}
	got, _ = svc.Search(ctx, admin, "   ")
	if len(got) != 0 {
		t.Fatalf("blank search: %+v", got)
	}
}

func TestLegacyModeSkipsPolicy(t *testing.T) {
	svc, _ := newService(t, ModeLegacy)
	ctx := context.Background()

	if _, err := svc.Get(ctx, nil, "c2"); err != nil {
		t.Fatalf("legacy get: %v", err)
	}
	if _, err := svc.Patch(ctx, nil, "c2", models.CasePatch{LawyerID: strPtr("l1")}); err != nil {
		t.Fatalf("legacy patch: %v", err)
	}
	got, err := svc.Search(ctx, nil, "criminal")
	if err != nil || len(got) != 1 {
		t.Fatalf("legacy search: %v %+v", err, got)
	}
	if _, err := svc.List(ctx, nil); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("legacy list must still require a session: %v", err)
	}
	existed, err := svc.Delete(ctx, nil, "c1")
	if err != nil || !existed {
		t.Fatalf("legacy delete: %v %v", existed, err)
	}
}

type brokenBackend struct {
	*recordsRepo.MemorySnapshotBackend
}

func (brokenBackend) Save(context.Context, *models.Snapshot) error {
	return errors.New("read-only filesystem")
}

func TestPersistenceFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	store, err := recordsRepo.NewStore(ctx, brokenBackend{recordsRepo.NewMemorySnapshotBackend(&models.Snapshot{
		Cases: []models.Case{{ID: "c1", Title: "Acme vs. Doe", Status: "open"}},
	})}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	svc := NewCaseService(casesRepo.NewSnapshotCaseRepo(store), ModeStrict, zap.NewNop())

	if _, err := svc.Create(ctx, admin, models.CaseInput{}); utils.KindOf(err) != utils.KindInternal {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Patch(ctx, admin, "c1", models.CasePatch{Status: strPtr("closed")}); utils.KindOf(err) != utils.KindInternal {
		t.Fatalf("patch: %v", err)
	}
	all, _ := svc.List(ctx, admin)
	if len(all) != 1 || all[0].Status != "open" {
		t.Fatalf("state diverged from store: %+v", all)
	}
}
