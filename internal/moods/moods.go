package moods

import "strings"

// Provider names used to pick the right mapping table. Category vocabularies
// are not interchangeable: Foursquare uses numeric IDs, Geoapify hierarchical
// slugs, OpenCage only understands free text.
const (
	ProviderFoursquare = "foursquare"
	ProviderGeoapify   = "geoapify"
	ProviderOpenCage   = "opencage"
)

const DefaultMood = "social"

// All is the closed mood vocabulary, in a fixed order so derived mood lists
// come out deterministic.
var All = []string{
	"relaxed",
	"creative",
	"social",
	"adventurous",
	"happy",
	"hungry",
	"romantic",
	"stressed",
}

var foursquareCategories = map[string][]string{
	"relaxed":     {"16032", "16019", "13035"}, // park, garden, coffee shop
	"creative":    {"10027", "10004", "10002"}, // museum, art gallery, arts
	"social":      {"13003", "13065", "10032"}, // bar, restaurant, nightclub
	"adventurous": {"18000", "16000", "10056"}, // sports, outdoors, amusement park
	"happy":       {"10056", "13065", "10000"}, // amusement park, restaurant, entertainment
	"hungry":      {"13065", "13145", "13035"}, // restaurant, fast food, coffee shop
	"romantic":    {"13079", "16019", "16032"}, // fine dining, garden, park
	"stressed":    {"16032", "16019", "11091"}, // park, garden, spa
}

var geoapifyCategories = map[string][]string{
	"relaxed":     {"leisure.park", "natural", "catering.cafe"},
	"creative":    {"entertainment.museum", "entertainment.culture", "tourism.sights"},
	"social":      {"catering.bar", "catering.pub", "catering.restaurant"},
	"adventurous": {"sport", "natural", "entertainment.theme_park"},
	"happy":       {"entertainment", "leisure.park", "catering.restaurant"},
	"hungry":      {"catering.restaurant", "catering.fast_food", "catering.cafe"},
	"romantic":    {"catering.restaurant", "leisure.park", "tourism.sights"},
	"stressed":    {"leisure.spa", "leisure.park", "natural"},
}

// Broad fallback used by the Geoapify adapter for free-text searches and
// unknown moods.
var GeoapifyDefaultCategories = []string{"tourism", "entertainment", "catering"}

// OpenCage has no category vocabulary at all, so moods become free-text
// queries against the geocoder.
var opencageQueries = map[string]string{
	"relaxed":     "quiet parks or cafes",
	"creative":    "museums or art galleries",
	"social":      "bars or popular meeting spots",
	"adventurous": "outdoor adventure activities",
	"happy":       "fun places or entertainment",
	"hungry":      "restaurants or food",
	"romantic":    "romantic restaurants or scenic views",
	"stressed":    "spas or relaxing places",
}

// ProviderQuery carries either a category list or a free-text query,
// whichever the provider understands.
type ProviderQuery struct {
	Categories []string
	Text       string
}

// QueryForProvider resolves a mood into the search parameters for one
// provider. Unknown moods degrade per provider: Foursquare gets nothing (and
// will return no results), Geoapify falls back to its broad default
// categories, OpenCage falls back to a generic query built from the mood
// itself.
func QueryForProvider(provider, mood string) ProviderQuery {
	mood = strings.ToLower(strings.TrimSpace(mood))

	switch provider {
	case ProviderFoursquare:
		return ProviderQuery{Categories: foursquareCategories[mood]}
	case ProviderGeoapify:
		if cats, ok := geoapifyCategories[mood]; ok {
			return ProviderQuery{Categories: cats}
		}
		return ProviderQuery{Categories: GeoapifyDefaultCategories}
	case ProviderOpenCage:
		if q, ok := opencageQueries[mood]; ok {
			return ProviderQuery{Text: q}
		}
		return ProviderQuery{Text: "places " + mood}
	}

	return ProviderQuery{}
}

// CategoriesToMoods inverts the mapping tables: given the raw category data a
// provider reported for a place (numeric IDs, slugs or plain names, all mixed
// together), it returns every mood whose table contains one of them. When no
// table matches it falls back to substring heuristics on the category text,
// and as a last resort to the default mood, so the result is never empty.
func CategoriesToMoods(categories []string) []string {
	matched := make(map[string]bool)

	for _, raw := range categories {
		c := strings.ToLower(strings.TrimSpace(raw))
		if c == "" {
			continue
		}

		for _, mood := range All {
			for _, id := range foursquareCategories[mood] {
				if c == id {
					matched[mood] = true
				}
			}
			for _, slug := range geoapifyCategories[mood] {
				if c == slug || strings.HasPrefix(c, slug+".") {
					matched[mood] = true
				}
			}
		}
	}

	if len(matched) == 0 {
		for _, raw := range categories {
			for mood := range heuristicMoods(strings.ToLower(raw)) {
				matched[mood] = true
			}
		}
	}

	if len(matched) == 0 {
		return []string{DefaultMood}
	}

	result := make([]string, 0, len(matched))
	for _, mood := range All {
		if matched[mood] {
			result = append(result, mood)
		}
	}
	return result
}

func heuristicMoods(category string) map[string]bool {
	moods := make(map[string]bool)

	switch {
	case strings.Contains(category, "restaurant"), strings.Contains(category, "food"):
		moods["hungry"] = true
		moods["social"] = true
	case strings.Contains(category, "cafe"), strings.Contains(category, "coffee"):
		moods["relaxed"] = true
		moods["creative"] = true
	case strings.Contains(category, "park"), strings.Contains(category, "garden"), strings.Contains(category, "natural"):
		moods["relaxed"] = true
		moods["happy"] = true
	case strings.Contains(category, "bar"), strings.Contains(category, "pub"):
		moods["social"] = true
	case strings.Contains(category, "museum"), strings.Contains(category, "gallery"), strings.Contains(category, "art"):
		moods["creative"] = true
	case strings.Contains(category, "beach"):
		moods["relaxed"] = true
	case strings.Contains(category, "sport"):
		moods["adventurous"] = true
	case strings.Contains(category, "amusement"), strings.Contains(category, "entertainment"):
		moods["happy"] = true
		moods["social"] = true
	}

	return moods
}

var friendlyLabels = []struct {
	keyword string
	label   string
}{
	{"restaurant", "Restaurant"},
	{"fast_food", "Restaurant"},
	{"cafe", "Cafe"},
	{"coffee", "Cafe"},
	{"bar", "Bar"},
	{"pub", "Bar"},
	{"museum", "Museum"},
	{"gallery", "Art Gallery"},
	{"historic", "Historic Site"},
	{"park", "Park"},
	{"garden", "Park"},
	{"natural", "Nature"},
	{"beach", "Beach"},
	{"culture", "Culture"},
	{"architecture", "Architecture"},
	{"amusement", "Entertainment"},
	{"entertainment", "Entertainment"},
	{"theme_park", "Entertainment"},
	{"sport", "Sport"},
	{"spa", "Spa"},
	{"tourism", "Point of Interest"},
	{"attraction", "Point of Interest"},
}

// FriendlyCategory turns provider-specific category text (a Geoapify slug, a
// Foursquare category name, an OpenCage _type) into a best-guess display
// label. Unmatched input is title-cased from its most specific segment.
func FriendlyCategory(raw string) string {
	c := strings.ToLower(strings.TrimSpace(raw))
	if c == "" {
		return "Place"
	}

	for _, fl := range friendlyLabels {
		if strings.Contains(c, fl.keyword) {
			return fl.label
		}
	}

	// Geoapify slugs are dot-separated, most specific last.
	if i := strings.LastIndex(c, "."); i >= 0 && i < len(c)-1 {
		c = c[i+1:]
	}
	c = strings.ReplaceAll(c, "_", " ")
	return strings.ToUpper(c[:1]) + c[1:]
}
