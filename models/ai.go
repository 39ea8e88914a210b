package models

// Completion is the result of a text completion, tagged with the model that produced it.
type Completion struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// AssistantRequest is the payload of POST /api/assistant/query.
type AssistantRequest struct {
	Query string `json:"query"`
}

// AssistantResponse is what the assistant endpoint returns.
type AssistantResponse struct {
	Answer string `json:"answer"`
	Model  string `json:"model"`
}

type SummarizeRequest struct {
	Text string `json:"text"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
	Model   string `json:"model"`
}

type TranslateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

type TranslateResponse struct {
	Translated string `json:"translated"`
	Target     string `json:"target"`
	Model      string `json:"model"`
}

// Transcript is returned by both OCR and speech-to-text.
type Transcript struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

type HashRequest struct {
	Content   string `json:"content"`
	Algorithm string `json:"algorithm"`
}

type HashResponse struct {
	Algorithm string `json:"algorithm"`
	Hash      string `json:"hash"`
}
