package recordsRepo

import (
	"context"
	"time"

	"casexpert/models"
)

// Seed fills empty collections with the demo directory, cases and accounts.
// Collections that already hold records are left alone.
func Seed(ctx context.Context, store *Store, now time.Time) error {
	ms := now.UnixMilli()
	return store.Mutate(ctx, func(snap *models.Snapshot) error {
		if len(snap.Lawyers) == 0 {
			snap.Lawyers = []models.Lawyer{
				{ID: "l1", Name: "Ananya Sharma", Expertise: []string{"Civil", "Family"}, Rating: 4.7, City: "Pune"},
				{ID: "l2", Name: "Rahul Verma", Expertise: []string{"Criminal", "Cyber"}, Rating: 4.5, City: "Delhi"},
				{ID: "l3", Name: "Aisha Khan", Expertise: []string{"Corporate", "IP"}, Rating: 4.8, City: "Mumbai"},
			}
		}
		if len(snap.Cases) == 0 {
			snap.Cases = []models.Case{
				{ID: "c1", Title: "Acme vs. Doe", Status: "open", Description: "Contract dispute regarding delivery terms.", ClientEmail: "client1@example.com", LawyerID: "l1", Attachments: []string{}, CreatedAt: ms - 86400000},
				{ID: "c2", Title: "State vs. Ravi", Status: "hearing", Description: "Criminal case with cyber evidence review.", ClientEmail: "client2@example.com", LawyerID: "l2", Attachments: []string{}, CreatedAt: ms - 43200000},
				{ID: "c3", Title: "Aisha Divorce Petition", Status: "drafting", Description: "Family law case regarding mutual consent.", ClientEmail: "client3@example.com", LawyerID: "l3", Attachments: []string{}, CreatedAt: ms - 10000000},
			}
		}
		if len(snap.Users) == 0 {
			snap.Users = []models.User{
				{ID: "u-admin", Email: "admin@casexpert.app", Name: "Admin", Role: models.RoleAdmin},
				{ID: "u-lawyer1", Email: "rahul@lawfirm.com", Name: "Rahul Verma", Role: models.RoleLawyer, LawyerID: "l2"},
				{ID: "u-user1", Email: "client1@example.com", Name: "Client One", Role: models.RoleUser},
			}
		}
		return nil
	})
}
