package models

// LegalTopic is a static explainer shown on the legal information page.
type LegalTopic struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Blurb           string          `json:"blurb"`
	SampleQuestions []string        `json:"sampleQuestions"`
	Resources       []LegalResource `json:"resources"`
}

type LegalResource struct {
	Name string `json:"name"`
	URL   string `json:"url"`
}

// LegalSearchItem is one result of the external legal search.
type LegalSearchItem struct {
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Court    string `json:"court"`
	Date     string `json:"date"`
	Citation string `json:"citation"`
}

// Attachment describes a stored upload.
type Attachment struct {
	Filename     string `json:"filename"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	OriginalName string `json:"originalName"`
}
