// File: models/records.go
package models

// LogEntry records one assistant or legal-search query.
type LogEntry struct {
	TS           int64  `bson:"ts" json:"ts"` // unix millis
	IP           string `bson:"ip" json:"ip"`
	Path         string `bson:"path" json:"path"`
	Query        string `bson:"q" json:"q"`
	Model        string `bson:"model,omitempty" json:"model,omitempty"`
	Jurisdiction string `bson:"jurisdiction,omitempty" json:"jurisdiction,omitempty"`
}

// Snapshot is the whole persisted state; it is loaded and saved as one unit.
type Snapshot struct {
	Cases   []Case     `bson:"cases" json:"cases"`
	Lawyers []Lawyer   `bson:"lawyers" json:"lawyers"`
	Users   []User     `bson:"users" json:"users"`
	Logs    []LogEntry `bson:"logs" json:"logs"`
}

// Clone deep-copies s so a mutation can be applied without touching the original.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Cases:   make([]Case, len(s.Cases)),
		Lawyers: make([]Lawyer, len(s.Lawyers)),
		Users:   append([]User{}, s.Users...),
		Logs:    append([]LogEntry{}, s.Logs...),
	}
	for i, c := range s.Cases {
		out.Cases[i] = c.Clone()
	}
	for i, l := range s.Lawyers {
		l.Expertise = append([]string{}, l.Expertise...)
		out.Lawyers[i] = l
	}
	return out
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (s *Snapshot) Normalize() {
	if s.Cases == nil {
		s.Cases = []Case{}
	}
	if s.Lawyers == nil {
		s.Lawyers = []Lawyer{}
	}
	if s.Users == nil {
		s.Users = []User{}
	}
	if s.Logs == nil {
		s.Logs = []LogEntry{}
	}
	for i := range s.Cases {
		if s.Cases[i].Attachments == nil {
			s.Cases[i].Attachments = []string{}
		}
	}
	for i := range s.Lawyers {
		if s.Lawyers[i].Expertise == nil {
			s.Lawyers[i].Expertise = []string{}
		}
	}
}
