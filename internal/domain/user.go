package domain

// User represents the authenticated account as returned by the backend.
// The backend is the system of record; this struct only lives inside the
// visitor's session for the duration of it.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	CPF   string `json:"cpf,omitempty"`
}

// RegisterInput carries the registration form data to the backend.
// CPF must already be digits-only.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	CPF      string
}
