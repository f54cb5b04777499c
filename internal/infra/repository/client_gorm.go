package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finrecords/financial-records-api/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) ListActive(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&clients).Error
	return clients, err
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND is_active = ?", id, true).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientGormRepository) GetByCode(ctx context.Context, code string) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).
		Where("client_code = ?", code).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientGormRepository) Update(ctx context.Context, id uint, c models.Client) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("client_id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"client_code": c.ClientCode,
			"first_name":  c.FirstName,
			"last_name":   c.LastName,
			"email":       c.Email,
			"phone":       c.Phone,
			"address":     c.Address,
			"city":        c.City,
			"department":  c.Department,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ClientGormRepository) SoftDelete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("client_id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
