package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
)

// UserRepository reads and manages user accounts on the reservation API.
type UserRepository struct {
	Client *Client
}

func (r UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.Client.Do(ctx, http.MethodGet, "/users/all", nil, nil, &users)
	return users, err
}

func (r UserRepository) GetPage(ctx context.Context, p domain.Pagination) ([]models.User, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	var users []models.User
	err := r.Client.Do(ctx, http.MethodGet, "/users/paging", q, nil, &users)
	return users, err
}

func (r UserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.Client.Do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil, nil, &user)
	return user, err
}

// CheckDuplicate asks whether a user field value is free to use. mode is
// "add" or "update"; field is one of username, email, phone. True means the
// value can be used.
func (r UserRepository) CheckDuplicate(ctx context.Context, mode string, userID int64, field, value string) (bool, error) {
	path := fmt.Sprintf("/users/checkDuplicate/%s/%d/%s/%s",
		url.PathEscape(mode), userID, url.PathEscape(field), url.PathEscape(value))
	var free bool
	err := r.Client.Do(ctx, http.MethodGet, path, nil, nil, &free)
	return free, err
}

func (r UserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	var out models.User
	err := r.Client.Do(ctx, http.MethodPost, "/users", nil, user, &out)
	return out, err
}

func (r UserRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	var out models.User
	err := r.Client.Do(ctx, http.MethodPut, "/users", nil, user, &out)
	return out, err
}

func (r UserRepository) Delete(ctx context.Context, username string) error {
	return r.Client.Do(ctx, http.MethodDelete, "/users/"+url.PathEscape(username), nil, nil, nil)
}
