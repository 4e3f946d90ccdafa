package repositories

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
)

// AuthRepository drives the auth endpoints of the reservation API.
type AuthRepository struct {
	Client *Client
}

// Login exchanges credentials for a bearer token. The backend answers 403
// for a wrong password, which maps to its own message so the caller can tell
// it apart from generic failures.
func (r AuthRepository) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := r.Client.Do(ctx, http.MethodPost, "/auth/login", nil, req, &resp)
	if err != nil {
		var unauthorized domain.UnauthorizedError
		if errors.As(err, &unauthorized) {
			return resp, domain.UnauthorizedError{Msg: "Mật khẩu sai", Err: err}
		}
		return resp, err
	}
	return resp, nil
}

func (r AuthRepository) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := r.Client.Do(ctx, http.MethodPost, "/auth/register", nil, req, &resp)
	return resp, err
}

func (r AuthRepository) Forgot(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return r.Client.Do(ctx, http.MethodPost, "/auth/forgot", nil, body, nil)
}

func (r AuthRepository) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return r.Client.Do(ctx, http.MethodPost, "/auth/change-password", nil, req, nil)
}

func (r AuthRepository) Logout(ctx context.Context) error {
	return r.Client.Do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// The checkExist endpoints answer true when the value is already taken.

func (r AuthRepository) CheckExistUsername(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := r.Client.Do(ctx, http.MethodGet, "/auth/checkExistUsername/"+url.PathEscape(username), nil, nil, &taken)
	return taken, err
}

func (r AuthRepository) CheckExistEmail(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := r.Client.Do(ctx, http.MethodGet, "/auth/checkExistEmail/"+url.PathEscape(email), nil, nil, &taken)
	return taken, err
}

func (r AuthRepository) CheckExistPhone(ctx context.Context, phone string) (bool, error) {
	var taken bool
	err := r.Client.Do(ctx, http.MethodGet, "/auth/checkExistPhone/"+url.PathEscape(phone), nil, nil, &taken)
	return taken, err
}

func (r AuthRepository) CheckActiveStatus(ctx context.Context, username string) (bool, error) {
	var active bool
	err := r.Client.Do(ctx, http.MethodGet, "/auth/checkActiveStatus/"+url.PathEscape(username), nil, nil, &active)
	return active, err
}
