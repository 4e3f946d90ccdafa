package repositories

import (
	"context"
	"net/http"

	"coachbooking/internal/domain/models"
)

// ProvinceRepository loads the provinces offered as trip endpoints.
type ProvinceRepository struct {
	Client *Client
}

func (r ProvinceRepository) GetAll(ctx context.Context) ([]models.Province, error) {
	var provinces []models.Province
	err := r.Client.Do(ctx, http.MethodGet, "/provinces/all", nil, nil, &provinces)
	return provinces, err
}
