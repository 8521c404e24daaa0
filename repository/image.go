package repository

import (
	"github.com/tnqbao/gau-gallery-service/entity"
	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(image *entity.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) FindByID(id uint) (*entity.Image, error) {
	var image entity.Image
	err := r.db.Where("id = ?", id).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) FindAll() ([]entity.Image, error) {
	var images []entity.Image
	err := r.db.Order("created_at DESC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// UpdateFields applies a partial patch; only the supplied columns change.
func (r *ImageRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&entity.Image{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ImageRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Image{}, "id = ?", id).Error
}
