package repositories

import (
	"warehouse-console/models"

	"gorm.io/gorm"
)

type WarehouseRepository struct {
	DB *gorm.DB
}

func NewWarehouseRepository(DB *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{DB: DB}
}

const locationSelect = `spots.id AS id,
	spots.uuid AS spot_uuid,
	spots.name AS spot_name,
	spots.free AS free,
	shelves.id AS shelf_id,
	shelves.uuid AS shelf_uuid,
	shelves.name AS shelf_name,
	halls.id AS hall_id,
	halls.uuid AS hall_uuid,
	halls.name AS hall_name,
	warehouses.uuid AS warehouse_uuid`

// GetLocations returns the flat slot rows of one warehouse, ordered the way
// the topology was created so the tree builder sees a stable first-seen
// order.
func (r *WarehouseRepository) GetLocations(warehouseUUID string) ([]models.LocationRecord, error) {
	var records []models.LocationRecord
	err := r.DB.Table("spots").
		Select(locationSelect).
		Joins("JOIN shelves ON shelves.id = spots.shelf_id").
		Joins("JOIN halls ON halls.id = shelves.hall_id").
		Joins("JOIN warehouses ON warehouses.id = halls.warehouse_id").
		Where("warehouses.uuid = ?", warehouseUUID).
		Where("spots.deleted_at IS NULL AND shelves.deleted_at IS NULL AND halls.deleted_at IS NULL").
		Order("halls.id, shelves.id, spots.id").
		Scan(&records).Error
	return records, err
}

// GetAllLocations returns slot rows across every warehouse, for /halls.
func (r *WarehouseRepository) GetAllLocations() ([]models.LocationRecord, error) {
	var records []models.LocationRecord
	err := r.DB.Table("spots").
		Select(locationSelect).
		Joins("JOIN shelves ON shelves.id = spots.shelf_id").
		Joins("JOIN halls ON halls.id = shelves.hall_id").
		Joins("JOIN warehouses ON warehouses.id = halls.warehouse_id").
		Where("spots.deleted_at IS NULL AND shelves.deleted_at IS NULL AND halls.deleted_at IS NULL").
		Order("halls.id, shelves.id, spots.id").
		Scan(&records).Error
	return records, err
}

func (r *WarehouseRepository) GetHallByUUID(uuid string) (*models.Hall, error) {
	var hall models.Hall
	err := r.DB.Where("uuid = ?", uuid).First(&hall).Error
	return &hall, err
}

func (r *WarehouseRepository) GetShelfByUUID(uuid string) (*models.Shelf, error) {
	var shelf models.Shelf
	err := r.DB.Where("uuid = ?", uuid).First(&shelf).Error
	return &shelf, err
}

func (r *WarehouseRepository) GetSpotByUUID(uuid string) (*models.Spot, error) {
	var spot models.Spot
	err := r.DB.Where("uuid = ?", uuid).First(&spot).Error
	return &spot, err
}
