package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *DirectoryGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, translate(err, "get barber")
	}
	return &b, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *DirectoryGormRepository) GetClient(
	ctx context.Context,
	id string,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error; err != nil {
		return nil, translate(err, "get client")
	}
	return &c, nil
}

func (r *DirectoryGormRepository) GetClientByUserID(
	ctx context.Context,
	userID string,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&c).Error; err != nil {
		return nil, translate(err, "get client by user")
	}
	return &c, nil
}

var _ domain.Directory = (*DirectoryGormRepository)(nil)
