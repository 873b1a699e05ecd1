package api

import (
	"context"
	"net/http"

	"github.com/ScarMeireles/JuntosMais/internal/domain"
)

// authResponse accepts both login response shapes the backend variants
// produce: a nested {token, user:{...}} object or the flat
// {token, user_id, email, name} form.
type authResponse struct {
	Token string `json:"token"`
	User  *struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		CPF   string `json:"cpf"`
	} `json:"user"`
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func (r authResponse) user() domain.User {
	if r.User != nil {
		return domain.User{ID: r.User.ID, Email: r.User.Email, Name: r.User.Name, CPF: r.User.CPF}
	}
	return domain.User{ID: r.UserID, Email: r.Email, Name: r.Name}
}

// Login exchanges credentials for a session token and the user record.
func (c *Client) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &resp); err != nil {
		return "", domain.User{}, err
	}
	return resp.Token, resp.user(), nil
}

// Register creates an account and signs the new user in. The backend wants
// the display name under "username" and the CPF digits-only.
func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (string, domain.User, error) {
	body := map[string]string{
		"username": in.Name,
		"email":    in.Email,
		"password": in.Password,
		"cpf":      in.CPF,
	}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", body, &resp); err != nil {
		return "", domain.User{}, err
	}
	return resp.Token, resp.user(), nil
}
