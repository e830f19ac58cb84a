package api

import (
	"context"
	"net/url"
	"time"

	"github.com/NangRotha/Cloths-Frontend-User/internal/domain"
)

type loginResponse struct {
	AccessToken string     `json:"access_token"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	PhoneNumber string     `json:"phone_number"`
	CreatedAt   *time.Time `json:"created_at"`
}

// Login exchanges credentials for a bearer token. The endpoint is the one
// call that takes form-encoded input instead of JSON.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, domain.User, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	var resp loginResponse
	if err := c.postForm(ctx, "/api/auth/login", form.Encode(), &resp); err != nil {
		return "", domain.User{}, err
	}

	user := domain.User{
		Username:    resp.Username,
		Email:       resp.Email,
		FullName:    resp.FullName,
		PhoneNumber: resp.PhoneNumber,
		CreatedAt:   resp.CreatedAt,
	}
	return resp.AccessToken, user, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	return c.postJSON(ctx, "/api/auth/register", reg, nil)
}

// Profile fetches the user the current token belongs to.
func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, "/api/auth/me", &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GoogleAuthURL is where the browser is sent to start the redirect-based
// OAuth flow. The flow completes outside this codebase and comes back with
// a token on the callback.
func (c *Client) GoogleAuthURL() string {
	return c.baseURL + "/api/auth/google"
}
