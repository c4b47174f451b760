package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"moodtrip/internal/models/response_models"
)

func place(id, name string, lat, lon float64) response_models.Place {
	return response_models.Place{ID: id, Name: name, Latitude: lat, Longitude: lon}
}

func TestDedupePlacesByID(t *testing.T) {
	first := place("fsq-1", "Cafe Uno", 10.96, -74.79)
	second := place("fsq-1", "Cafe Uno Renamed", 11.00, -74.00)

	result := DedupePlaces([]response_models.Place{first, second})

	assert.Len(t, result, 1)
	assert.Equal(t, "Cafe Uno", result[0].Name, "first encountered record wins")
}

func TestDedupePlacesByNameAndProximity(t *testing.T) {
	first := place("", "El Pibe", 10.96110, -74.79120)
	second := place("", "  el pibe ", 10.96112, -74.79118) // same after 4-decimal rounding

	result := DedupePlaces([]response_models.Place{first, second})

	assert.Len(t, result, 1)
	assert.Equal(t, "El Pibe", result[0].Name)
}

func TestDedupePlacesKeepsDistinct(t *testing.T) {
	first := place("a", "Museo del Caribe", 10.9600, -74.7900)
	// Different name and ~20m away.
	second := place("b", "Parque Cultural", 10.9602, -74.7902)

	result := DedupePlaces([]response_models.Place{first, second})

	assert.Len(t, result, 2)
}

func TestDedupePlacesSameNameBeyondTolerance(t *testing.T) {
	// Identical names but coordinates differing at the 4th decimal stay
	// separate, the documented residual-duplicate case.
	first := place("", "La Plaza", 10.9601, -74.7901)
	second := place("", "La Plaza", 10.9603, -74.7901)

	result := DedupePlaces([]response_models.Place{first, second})

	assert.Len(t, result, 2)
}

func TestDedupePlacesDropsUnidentifiable(t *testing.T) {
	unnamed := place("", "", 10.96, -74.79)
	named := place("", "Sin ID", 10.96, -74.79)

	result := DedupePlaces([]response_models.Place{unnamed, named})

	assert.Len(t, result, 1)
	assert.Equal(t, "Sin ID", result[0].Name)
}

func TestDedupePlacesIdempotent(t *testing.T) {
	input := []response_models.Place{
		place("a", "Uno", 1.00001, 2.00001),
		place("a", "Uno Bis", 1.5, 2.5),
		place("", "Dos", 3.00001, 4.00001),
		place("", "dos", 3.00002, 4.00002),
		place("b", "Tres", 5, 6),
	}

	once := DedupePlaces(input)
	twice := DedupePlaces(once)

	assert.Equal(t, once, twice)
}

func TestDedupePlacesPreservesOrder(t *testing.T) {
	input := []response_models.Place{
		place("c", "Charlie", 1, 1),
		place("a", "Alpha", 2, 2),
		place("b", "Bravo", 3, 3),
	}

	result := DedupePlaces(input)

	assert.Equal(t, []string{"Charlie", "Alpha", "Bravo"}, []string{result[0].Name, result[1].Name, result[2].Name})
}
