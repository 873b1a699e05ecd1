package handlers

// Request DTOs bound from the HTML forms. The `form` tag doubles as the
// field name reported in violations, so it must match the input names the
// pages render.

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is the account creation form. The CPF arrives masked and is
// stripped to digits before the backend call.
type RegisterForm struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	CPF             string `form:"cpf" validate:"required,cpf"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// DonationForm is the donation form. Masked fields arrive in display form
// and are unmasked by the handler after validation.
type DonationForm struct {
	Name         string `form:"name" validate:"required"`
	Email        string `form:"email" validate:"required,email"`
	CPF          string `form:"cpf" validate:"required,cpf"`
	Street       string `form:"street" validate:"required"`
	Number       string `form:"number" validate:"required"`
	Complement   string `form:"complement"`
	Neighborhood string `form:"neighborhood" validate:"required"`
	City         string `form:"city" validate:"required"`
	State        string `form:"state" validate:"required,len=2"`
	ZipCode      string `form:"zip_code" validate:"required,cep"`
	Amount       string `form:"amount" validate:"required,brl"`
}

// CampaignForm is the campaign creation form.
type CampaignForm struct {
	Name         string `form:"name" validate:"required"`
	Category     string `form:"category" validate:"required"`
	Description  string `form:"description" validate:"required"`
	Location     string `form:"location"`
	Phone        string `form:"phone"`
	TargetAmount string `form:"target_amount" validate:"required,brl"`
	EndDate      string `form:"end_date"`
}

// ProfileForm is the profile section of the settings page. The password
// group is validated separately because its rule is composite.
type ProfileForm struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	CurrentPassword string `form:"current_password"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}
