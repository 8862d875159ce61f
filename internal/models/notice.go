package models

// Notice severities.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// Notice is a short-lived user-facing message raised by a mutating action.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}
