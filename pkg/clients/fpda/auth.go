package fpda

import (
	"context"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

// Register forwards a sign-up to the backend.
func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	return c.postForm(ctx, "user_registration", map[string]string{
		"user_name":      reg.UserName,
		"password":       reg.Password,
		"mobile":         reg.Mobile,
		"role_selection": reg.RoleSelection,
	}, nil)
}

// Login authenticates against the backend and returns the session identity
// from the response data.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.UserSession, error) {
	var session models.UserSession
	err := c.postForm(ctx, "user_login", map[string]string{
		"user_name": creds.UserName,
		"password":  creds.Password,
	}, &session)
	if err != nil {
		return nil, err
	}

	if session.UserName == "" {
		session.UserName = creds.UserName
	}

	return &session, nil
}
