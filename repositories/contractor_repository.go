package repositories

import (
	"warehouse-console/models"

	"gorm.io/gorm"
)

type ContractorRepository struct {
	DB *gorm.DB
}

func NewContractorRepository(DB *gorm.DB) *ContractorRepository {
	return &ContractorRepository{DB: DB}
}

func (r *ContractorRepository) GetAll() ([]models.Contractor, error) {
	var contractors []models.Contractor
	err := r.DB.Order("id").Find(&contractors).Error
	return contractors, err
}

func (r *ContractorRepository) GetByID(id uint) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.DB.First(&contractor, id).Error
	return &contractor, err
}

func (r *ContractorRepository) Create(contractor *models.Contractor) error {
	return r.DB.Create(contractor).Error
}

func (r *ContractorRepository) Update(contractor *models.Contractor) error {
	return r.DB.Save(contractor).Error
}

func (r *ContractorRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Contractor{}, id).Error
}
