package models

// LocationRecord is the flat row shape for one storage slot, carrying its
// owning shelf/hall/warehouse redundantly by id, uuid and display name. It is
// what /warehouseManagement/warehouses/:uuid returns and what the hall tree
// is grouped from.
type LocationRecord struct {
	ID            uint   `json:"id"`
	SpotUUID      string `json:"spot_uuid"`
	SpotName      string `json:"spot_name"`
	ShelfID       uint   `json:"shelf_id"`
	ShelfUUID     string `json:"shelf_uuid"`
	ShelfName     string `json:"shelf_name"`
	HallID        uint   `json:"hall_id"`
	HallUUID      string `json:"hall_uuid"`
	HallName      string `json:"hall_name"`
	WarehouseUUID string `json:"warehouse_uuid"`
	Free          *bool  `json:"_free"`
}
