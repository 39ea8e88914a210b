package models

type Lawyer struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Expertise []string `bson:"expertise" json:"expertise"`
	Rating    float64  `bson:"rating" json:"rating"`
	City      string   `bson:"city" json:"city"`
}

// LawyerInput is the create payload; absent fields take defaults.
type LawyerInput struct {
	Name      *string  `json:"name"`
	Expertise []string `json:"expertise"`
	Rating    *float64 `json:"rating"`
	City      *string  `json:"city"`
}

// LawyerPatch is a shallow merge; nil fields are left untouched.
type LawyerPatch struct {
	Name      *string   `json:"name"`
	Expertise *[]string `json:"expertise"`
	Rating    *float64  `json:"rating"`
	City      *string   `json:"city"`
}
