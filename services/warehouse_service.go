package services

import (
	"warehouse-console/models"
)

type SpotView struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Free bool   `json:"_free"`
}

type ShelfView struct {
	UUID     string     `json:"uuid"`
	Name     string     `json:"name"`
	Occupied int        `json:"occupied"`
	Total    int        `json:"total"`
	Spots    []SpotView `json:"spots"`
}

type HallView struct {
	UUID    string       `json:"uuid"`
	Name    string       `json:"name"`
	Shelves []*ShelfView `json:"shelves"`
}

// BuildHalls groups flat location rows into the hall -> shelf -> spot tree
// the console renders. Halls keep the order of their first occurrence in the
// input, shelves likewise within their hall. A row without a free flag counts
// as occupied so a lossy upstream row can never understate occupancy.
func BuildHalls(records []models.LocationRecord) []*HallView {
	halls := []*HallView{}
	hallIndex := map[string]*HallView{}
	shelfIndex := map[string]*ShelfView{}

	for _, rec := range records {
		hall, ok := hallIndex[rec.HallUUID]
		if !ok {
			hall = &HallView{UUID: rec.HallUUID, Name: rec.HallName}
			hallIndex[rec.HallUUID] = hall
			halls = append(halls, hall)
		}

		shelfKey := rec.HallUUID + "/" + rec.ShelfUUID
		shelf, ok := shelfIndex[shelfKey]
		if !ok {
			shelf = &ShelfView{UUID: rec.ShelfUUID, Name: rec.ShelfName}
			shelfIndex[shelfKey] = shelf
			hall.Shelves = append(hall.Shelves, shelf)
		}

		free := rec.Free != nil && *rec.Free
		shelf.Total++
		if !free {
			shelf.Occupied++
		}
		shelf.Spots = append(shelf.Spots, SpotView{
			UUID: rec.SpotUUID,
			Name: rec.SpotName,
			Free: free,
		})
	}

	return halls
}
