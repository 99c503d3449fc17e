package backend

import (
	"context"
	"fmt"
	"net/http"

	errs "github.com/pallium-care/console/errors"
)

const (
	AdminLoginPath = "/api/admin-login"
	VcmLoginPath   = "/api/vcm-login"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, path string, credentials Credentials) (string, error) {
	res := loginResponse{}
	if err := c.DoJSON(ctx, http.MethodPost, path, credentials, &res); err != nil {
		return "", err
	}
	token := res.Token
	if token == "" {
		token = res.AccessToken
	}
	if token == "" {
		return "", fmt.Errorf("%w: login response did not contain a token", errs.BadGateway)
	}
	return token, nil
}

// GetJSON decodes the response of a GET request into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.DoJSON(ctx, http.MethodGet, path, nil, out)
}
