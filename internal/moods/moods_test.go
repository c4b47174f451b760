package moods

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryForProviderKnownMood(t *testing.T) {
	fsq := QueryForProvider(ProviderFoursquare, "hungry")
	assert.NotEmpty(t, fsq.Categories)
	assert.Empty(t, fsq.Text)

	geo := QueryForProvider(ProviderGeoapify, "Hungry") // case-insensitive
	assert.Contains(t, geo.Categories, "catering.restaurant")

	oc := QueryForProvider(ProviderOpenCage, "hungry")
	assert.Equal(t, "restaurants or food", oc.Text)
}

func TestQueryForProviderUnknownMood(t *testing.T) {
	fsq := QueryForProvider(ProviderFoursquare, "melancholic")
	assert.Empty(t, fsq.Categories, "Foursquare gets nothing for an unknown mood")

	geo := QueryForProvider(ProviderGeoapify, "melancholic")
	assert.Equal(t, GeoapifyDefaultCategories, geo.Categories)

	oc := QueryForProvider(ProviderOpenCage, "melancholic")
	assert.Equal(t, "places melancholic", oc.Text)
}

// Every category mapped to a mood must map back to that mood through the
// inverse direction.
func TestCategoriesToMoodsRoundTrip(t *testing.T) {
	for mood, ids := range foursquareCategories {
		for _, id := range ids {
			assert.Contains(t, CategoriesToMoods([]string{id}), mood,
				"foursquare category %s should map back to %s", id, mood)
		}
	}

	for mood, slugs := range geoapifyCategories {
		for _, slug := range slugs {
			assert.Contains(t, CategoriesToMoods([]string{slug}), mood,
				"geoapify category %s should map back to %s", slug, mood)
		}
	}
}

func TestCategoriesToMoodsSlugPrefix(t *testing.T) {
	moods := CategoriesToMoods([]string{"catering.restaurant.pizza"})
	assert.Contains(t, moods, "hungry")
}

func TestCategoriesToMoodsHeuristics(t *testing.T) {
	assert.Contains(t, CategoriesToMoods([]string{"Fancy Restaurant"}), "hungry")
	assert.Contains(t, CategoriesToMoods([]string{"city park"}), "relaxed")
	assert.Contains(t, CategoriesToMoods([]string{"irish pub"}), "social")
}

func TestCategoriesToMoodsDefault(t *testing.T) {
	assert.Equal(t, []string{DefaultMood}, CategoriesToMoods([]string{"launchpad"}))
	assert.Equal(t, []string{DefaultMood}, CategoriesToMoods(nil))
}

func TestCategoriesToMoodsDeterministicOrder(t *testing.T) {
	first := CategoriesToMoods([]string{"leisure.park", "catering.restaurant"})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CategoriesToMoods([]string{"leisure.park", "catering.restaurant"}))
	}
}

func TestFriendlyCategory(t *testing.T) {
	assert.Equal(t, "Restaurant", FriendlyCategory("catering.restaurant"))
	assert.Equal(t, "Cafe", FriendlyCategory("Coffee Shop"))
	assert.Equal(t, "Museum", FriendlyCategory("museum"))
	assert.Equal(t, "Place", FriendlyCategory(""))
	// Unmatched slugs fall back to their most specific segment.
	assert.Equal(t, "Bicycle rental", FriendlyCategory("service.vehicle.bicycle_rental"))
}
