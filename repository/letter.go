package repository

import (
	"github.com/tnqbao/gau-gallery-service/entity"
	"gorm.io/gorm"
)

type LetterRepository struct {
	db *gorm.DB
}

func NewLetterRepository(db *gorm.DB) *LetterRepository {
	return &LetterRepository{db: db}
}

func (r *LetterRepository) Create(letter *entity.Letter) error {
	return r.db.Create(letter).Error
}

func (r *LetterRepository) FindByID(id uint) (*entity.Letter, error) {
	var letter entity.Letter
	err := r.db.Where("id = ?", id).First(&letter).Error
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

func (r *LetterRepository) FindAll() ([]entity.Letter, error) {
	var letters []entity.Letter
	err := r.db.Order("created_at DESC").Find(&letters).Error
	if err != nil {
		return nil, err
	}
	return letters, nil
}

// UpdateFields applies a partial patch; only the supplied columns change.
func (r *LetterRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&entity.Letter{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LetterRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Letter{}, "id = ?", id).Error
}
