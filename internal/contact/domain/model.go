package domain

// Submission is a contact form payload. It is validated, relayed by mail,
// and discarded; nothing is stored.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
