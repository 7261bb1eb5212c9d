package services

import (
	"testing"

	"warehouse-console/models"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func locRow(hallUUID, hallName, shelfUUID, shelfName, spotUUID, spotName string, free *bool) models.LocationRecord {
	return models.LocationRecord{
		HallUUID:  hallUUID,
		HallName:  hallName,
		ShelfUUID: shelfUUID,
		ShelfName: shelfName,
		SpotUUID:  spotUUID,
		SpotName:  spotName,
		Free:      free,
	}
}

func TestBuildHalls_GroupsAndCounts(t *testing.T) {
	records := []models.LocationRecord{
		locRow("h1", "Hala A", "s1", "Regal 1", "p1", "A-1-1", boolPtr(true)),
		locRow("h1", "Hala A", "s1", "Regal 1", "p2", "A-1-2", boolPtr(false)),
		locRow("h1", "Hala A", "s2", "Regal 2", "p3", "A-2-1", boolPtr(true)),
		locRow("h2", "Hala B", "s3", "Regal 1", "p4", "B-1-1", boolPtr(false)),
	}

	halls := BuildHalls(records)
	require.Len(t, halls, 2)

	require.Equal(t, "h1", halls[0].UUID)
	require.Equal(t, "Hala A", halls[0].Name)
	require.Len(t, halls[0].Shelves, 2)

	s1 := halls[0].Shelves[0]
	require.Equal(t, "Regal 1", s1.Name)
	require.Equal(t, 2, s1.Total)
	require.Equal(t, 1, s1.Occupied)
	require.Len(t, s1.Spots, 2)
	require.True(t, s1.Spots[0].Free)
	require.False(t, s1.Spots[1].Free)

	s2 := halls[0].Shelves[1]
	require.Equal(t, 1, s2.Total)
	require.Equal(t, 0, s2.Occupied)

	require.Equal(t, "h2", halls[1].UUID)
	require.Len(t, halls[1].Shelves, 1)
	require.Equal(t, 1, halls[1].Shelves[0].Occupied)
}

func TestBuildHalls_FirstSeenOrderWithInterleavedRows(t *testing.T) {
	records := []models.LocationRecord{
		locRow("h2", "Hala B", "s3", "Regal 1", "p1", "B-1-1", boolPtr(true)),
		locRow("h1", "Hala A", "s1", "Regal 1", "p2", "A-1-1", boolPtr(true)),
		locRow("h2", "Hala B", "s3", "Regal 1", "p3", "B-1-2", boolPtr(true)),
		locRow("h1", "Hala A", "s1", "Regal 1", "p4", "A-1-2", boolPtr(true)),
	}

	halls := BuildHalls(records)
	require.Len(t, halls, 2)
	require.Equal(t, "h2", halls[0].UUID)
	require.Equal(t, "h1", halls[1].UUID)
	require.Len(t, halls[0].Shelves[0].Spots, 2)
	require.Len(t, halls[1].Shelves[0].Spots, 2)
}

func TestBuildHalls_SameShelfUUIDInDifferentHalls(t *testing.T) {
	// Shelf identity is scoped to its hall, a uuid collision across halls
	// must not merge the two shelves.
	records := []models.LocationRecord{
		locRow("h1", "Hala A", "s1", "Regal 1", "p1", "A-1-1", boolPtr(true)),
		locRow("h2", "Hala B", "s1", "Regal 1", "p2", "B-1-1", boolPtr(true)),
	}

	halls := BuildHalls(records)
	require.Len(t, halls, 2)
	require.Len(t, halls[0].Shelves, 1)
	require.Len(t, halls[1].Shelves, 1)
	require.Len(t, halls[0].Shelves[0].Spots, 1)
	require.Len(t, halls[1].Shelves[0].Spots, 1)
}

func TestBuildHalls_NilFreeCountsAsOccupied(t *testing.T) {
	records := []models.LocationRecord{
		locRow("h1", "Hala A", "s1", "Regal 1", "p1", "A-1-1", nil),
	}

	halls := BuildHalls(records)
	require.Equal(t, 1, halls[0].Shelves[0].Occupied)
	require.False(t, halls[0].Shelves[0].Spots[0].Free)
}

func TestBuildHalls_Empty(t *testing.T) {
	halls := BuildHalls(nil)
	require.NotNil(t, halls)
	require.Empty(t, halls)
}
