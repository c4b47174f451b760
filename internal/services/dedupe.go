package services

import (
	"fmt"
	"strings"

	"moodtrip/internal/models/response_models"
)

// DedupePlaces collapses records believed to reference the same real-world
// venue. Two records are the same place when they share a provider-native ID,
// or when their lowercase-trimmed name and coordinates rounded to 4 decimal
// places (~11m) are equal. The first occurrence wins whole-record; later
// duplicates are dropped, not merged. Records with neither an ID nor a name
// are discarded. Input order is preserved, and the function is idempotent.
func DedupePlaces(places []response_models.Place) []response_models.Place {
	seenIDs := make(map[string]struct{}, len(places))
	seenKeys := make(map[string]struct{}, len(places))

	result := make([]response_models.Place, 0, len(places))
	for _, p := range places {
		id := strings.TrimSpace(p.ID)
		key := proximityKey(p)

		if id != "" {
			if _, dup := seenIDs[id]; dup {
				continue
			}
		}
		if key != "" {
			if _, dup := seenKeys[key]; dup {
				continue
			}
		}
		if id == "" && key == "" {
			// Nothing identifies this record at all.
			continue
		}

		if id != "" {
			seenIDs[id] = struct{}{}
		}
		if key != "" {
			seenKeys[key] = struct{}{}
		}
		result = append(result, p)
	}
	return result
}

func proximityKey(p response_models.Place) string {
	name := strings.ToLower(strings.TrimSpace(p.Name))
	if name == "" {
		return ""
	}
	return fmt.Sprintf("%s|%.4f|%.4f", name, p.Latitude, p.Longitude)
}
