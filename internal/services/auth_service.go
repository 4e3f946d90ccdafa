package services

import (
	"context"

	"coachbooking/internal/domain/models"
	"coachbooking/internal/session"

	"go.uber.org/zap"
)

// AuthAPI is the auth surface of the reservation API.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResponse, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
	Logout(ctx context.Context) error
}

// SessionStore is the persisted local session the auth flows maintain.
type SessionStore interface {
	Set(username, accessToken string) error
	Clear() error
	Current() session.Session
}

// AuthService ties the auth endpoints to the local session lifecycle:
// login stores username and token, logout and password change clear them.
type AuthService struct {
	Auth    AuthAPI
	Session SessionStore
	Log     *zap.Logger
}

func (s AuthService) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := s.Auth.Login(ctx, req)
	if err != nil {
		return err
	}
	if err := s.Session.Set(req.Username, resp.Token); err != nil {
		return err
	}
	s.Log.Info("logged in", zap.String("username", req.Username))
	return nil
}

func (s AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	_, err := s.Auth.Register(ctx, req)
	return err
}

// Logout tells the backend best-effort and always clears the local session.
func (s AuthService) Logout(ctx context.Context) error {
	if err := s.Auth.Logout(ctx); err != nil {
		s.Log.Warn("logout request failed", zap.Error(err))
	}
	return s.Session.Clear()
}

// ChangePassword invalidates the session on success; the user logs in again
// with the new password.
func (s AuthService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if err := s.Auth.ChangePassword(ctx, req); err != nil {
		return err
	}
	return s.Session.Clear()
}
