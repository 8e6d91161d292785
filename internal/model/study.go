package model

// QuizQuestion is a single multiple-choice question generated from study notes.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// NotesRequest carries the study notes submitted for key-point extraction or
// quiz generation.
type NotesRequest struct {
	Notes string `json:"notes"`
}

// AnalyzeResponse is the success envelope for POST /api/analyze.
type AnalyzeResponse struct {
	Success bool     `json:"success"`
	Points  []string `json:"points"`
}

// QuizResponse is the success envelope for POST /api/generate-quiz.
type QuizResponse struct {
	Success   bool           `json:"success"`
	Questions []QuizQuestion `json:"questions"`
}

// CheckAuthResponse is returned by GET /api/auth/check. The endpoint never
// fails, so there is no success field.
type CheckAuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// MessageResponse is the uniform envelope for failures and for message-only
// successes such as logout.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
