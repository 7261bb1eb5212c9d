package repositories

import (
	"warehouse-console/models"
	"warehouse-console/services"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(DB *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: DB}
}

// ProductFilter carries the list screen filters. Empty values are left out
// of the query.
type ProductFilter struct {
	UUID       string
	RFID       string
	Name       string
	Category   string
	Spot       string
	Contractor string
	UpdatedAt  string
	IsActive   *bool
	Issued     *bool
}

func (r *ProductRepository) filtered(filter ProductFilter) *gorm.DB {
	query := r.DB.Model(&models.Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN spots ON spots.id = products.spot_id").
		Joins("LEFT JOIN contractors ON contractors.id = products.contractor_id")

	if filter.UUID != "" {
		query = query.Where("products.uuid = ?", filter.UUID)
	}
	if filter.RFID != "" {
		query = query.Where("products.rfid LIKE ?", "%"+filter.RFID+"%")
	}
	if filter.Name != "" {
		query = query.Where("products.name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		query = query.Where("categories.name LIKE ?", "%"+filter.Category+"%")
	}
	if filter.Spot != "" {
		query = query.Where("spots.name LIKE ?", "%"+filter.Spot+"%")
	}
	if filter.Contractor != "" {
		query = query.Where("contractors.name LIKE ?", "%"+filter.Contractor+"%")
	}
	if filter.UpdatedAt != "" {
		query = query.Where("CAST(products.updated_at AS DATE) = ?", filter.UpdatedAt)
	}
	if filter.IsActive != nil {
		query = query.Where("products.is_active = ?", *filter.IsActive)
	}
	if filter.Issued != nil {
		query = query.Where("products.issued = ?", *filter.Issued)
	}

	return query
}

func (r *ProductRepository) Count(filter ProductFilter) (int64, error) {
	var total int64
	err := r.filtered(filter).Count(&total).Error
	return total, err
}

// GetPage fetches one page of summary rows. Count must have been checked
// first so an out-of-range page never reaches this query.
func (r *ProductRepository) GetPage(filter ProductFilter, page, size int) ([]models.Product, error) {
	var products []models.Product
	err := r.filtered(filter).
		Preload("Category").
		Preload("Spot").
		Preload("Contractor").
		Order("products.id").
		Offset(page * size).
		Limit(size).
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) GetByUUID(uuid string) (*models.Product, error) {
	var product models.Product
	err := r.DB.Preload("Category").Preload("Spot").Preload("Contractor").
		Where("uuid = ?", uuid).First(&product).Error
	return &product, err
}

// GetDetails is the per-row fetcher behind the list enrichment fan-out.
func (r *ProductRepository) GetDetails(uuid string) (services.ProductDetails, error) {
	var product models.Product
	err := r.DB.Select("description", "weight", "height", "width").
		Where("uuid = ?", uuid).First(&product).Error
	if err != nil {
		return services.ProductDetails{}, err
	}
	return services.ProductDetails{
		Description: product.Description,
		Weight:      product.Weight,
		Height:      product.Height,
		Width:       product.Width,
	}, nil
}

// GetByHall returns the active products of one hall grouped by shelf name,
// the shape the inventory screen reconciles against.
func (r *ProductRepository) GetByHall(hallUUID string) (map[string][]models.Product, error) {
	var products []models.Product
	err := r.DB.Model(&models.Product{}).
		Joins("JOIN spots ON spots.id = products.spot_id").
		Joins("JOIN shelves ON shelves.id = spots.shelf_id").
		Joins("JOIN halls ON halls.id = shelves.hall_id").
		Where("halls.uuid = ? AND products.is_active = ?", hallUUID, true).
		Preload("Category").
		Preload("Spot").
		Preload("Contractor").
		Order("shelves.id, spots.id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	byShelf := map[string][]models.Product{}
	for _, product := range products {
		if product.Spot == nil {
			continue
		}
		var shelf models.Shelf
		if err := r.DB.First(&shelf, product.Spot.ShelfID).Error; err != nil {
			continue
		}
		byShelf[shelf.Name] = append(byShelf[shelf.Name], product)
	}
	return byShelf, nil
}

func (r *ProductRepository) GetHistory(uuid string) ([]models.ProductHistory, error) {
	var history []models.ProductHistory
	err := r.DB.Where("product_uuid = ?", uuid).
		Order("created_at DESC").
		Find(&history).Error
	return history, err
}

func (r *ProductRepository) AddHistory(entry models.ProductHistory) {
	r.DB.Create(&entry)
}
