package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

// CatalogGormRepository is the read side of the service catalog.
type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&svc).Error; err != nil {
		return nil, translate(err, "get service")
	}
	return &svc, nil
}

var _ domain.Catalog = (*CatalogGormRepository)(nil)
