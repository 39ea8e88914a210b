package models

// Case field names as they appear on the wire. The access policy decides
// mutations per field.
const (
	FieldTitle       = "title"
	FieldStatus      = "status"
	FieldDescription = "description"
	FieldClientEmail = "clientEmail"
	FieldLawyerID    = "lawyerId"
	FieldAttachments = "attachments"
)

const (
	DefaultCaseTitle  = "Untitled Case"
	DefaultCaseStatus = "open"
)

type Case struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Status      string   `bson:"status" json:"status"` // open enum: open, hearing, drafting, ...
	Description string   `bson:"description" json:"description"`
	ClientEmail string   `bson:"clientEmail" json:"clientEmail"`
	LawyerID    string   `bson:"lawyerId" json:"lawyerId"` // "" when unassigned
	Attachments []string `bson:"attachments" json:"attachments"`
	CreatedAt   int64    `bson:"createdAt" json:"createdAt"` // unix millis
}

// Clone returns a copy that shares no slices with c.
func (c Case) Clone() Case {
	out := c
	out.Attachments = append([]string{}, c.Attachments...)
	return out
}

// CaseInput is the create payload; absent fields take defaults.
type CaseInput struct {
	Title       *string  `json:"title"`
	Status      *string  `json:"status"`
	Description *string  `json:"description"`
	ClientEmail *string  `json:"clientEmail"`
	LawyerID    *string  `json:"lawyerId"`
	Attachments []string `json:"attachments"`
}

// CasePatch is a shallow merge. id and createdAt are deliberately absent.
type CasePatch struct {
	Title       *string   `json:"title"`
	Status      *string   `json:"status"`
	Description *string   `json:"description"`
	ClientEmail *string   `json:"clientEmail"`
	LawyerID    *string   `json:"lawyerId"`
	Attachments *[]string `json:"attachments"`
}

// Fields lists the wire names of the supplied fields.
func (p CasePatch) Fields() []string {
	var fields []string
	if p.Title != nil {
		fields = append(fields, FieldTitle)
	}
	if p.Status != nil {
		fields = append(fields, FieldStatus)
	}
	if p.Description != nil {
		fields = append(fields, FieldDescription)
	}
	if p.ClientEmail != nil {
		fields = append(fields, FieldClientEmail)
	}
	if p.LawyerID != nil {
		fields = append(fields, FieldLawyerID)
	}
	if p.Attachments != nil {
		fields = append(fields, FieldAttachments)
	}
	return fields
}

// Apply merges the supplied fields into c.
func (p CasePatch) Apply(c *Case) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.ClientEmail != nil {
		c.ClientEmail = *p.ClientEmail
	}
	if p.LawyerID != nil {
		c.LawyerID = *p.LawyerID
	}
	if p.Attachments != nil {
		c.Attachments = append([]string{}, (*p.Attachments)...)
	}
}

// ScoredCase is a search hit.
type ScoredCase struct {
	Case  Case    `json:"case"`
	Score float64 `json:"score"`
}
