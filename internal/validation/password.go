package validation

import "strings"

// Form field names of the change-password group on the settings page.
const (
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldConfirmPassword = "confirm_password"
)

// MinPasswordLength is the minimum length for a new password.
const MinPasswordLength = 6

// PasswordChange is the change-password group from the settings form.
type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

// Empty reports whether the whole group was left blank, which makes the
// group valid: changing the password is optional as a whole.
func (p PasswordChange) Empty() bool {
	return strings.TrimSpace(p.Current) == "" &&
		strings.TrimSpace(p.New) == "" &&
		strings.TrimSpace(p.Confirm) == ""
}

// CheckPasswordChange applies the composite rule: if every field is empty
// the group is valid; if any is filled, all three become required, the new
// password needs MinPasswordLength characters, and new/confirm must match.
func CheckPasswordChange(p PasswordChange) Violations {
	if p.Empty() {
		return nil
	}

	current := strings.TrimSpace(p.Current)
	newPw := strings.TrimSpace(p.New)
	confirm := strings.TrimSpace(p.Confirm)

	out := Violations{}
	if current == "" {
		out.Add(FieldCurrentPassword, CodeRequired)
	}
	if newPw == "" {
		out.Add(FieldNewPassword, CodeRequired)
	} else if len(newPw) < MinPasswordLength {
		out.Add(FieldNewPassword, CodeMinLength)
	}
	if confirm == "" {
		out.Add(FieldConfirmPassword, CodeRequired)
	} else if newPw != "" && newPw != confirm {
		out.Add(FieldConfirmPassword, CodeMismatch)
	}
	if !out.Any() {
		return nil
	}
	return out
}
