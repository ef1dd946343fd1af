// Package match filters and ranks catalog entries against user preferences,
// one matcher per resource category. An empty result slice means "no match";
// matchers never turn that into an error.
package match

import (
	"context"
	"sort"
	"strings"

	catalogx "github.com/emiliomantilla/AIgent007/agent/catalog"
)

type ShelterPreferences struct {
	Location    string
	PetFriendly bool
	BedsNeeded  int
}

// Shelter returns shelters with an exact pet_friendly match, optional
// case-insensitive location equality (location "any" or empty means no
// constraint), and at least the requested number of beds (default 1),
// sorted by descending beds available.
func Shelter(ctx context.Context, src catalogx.Source, prefs ShelterPreferences) ([]catalogx.Property, error) {
	candidates, err := src.Properties(ctx, catalogx.Filter{
		"type":         string(catalogx.PropertyShelter),
		"pet_friendly": prefs.PetFriendly,
	})
	if err != nil {
		return nil, err
	}

	bedsNeeded := prefs.BedsNeeded
	if bedsNeeded <= 0 {
		bedsNeeded = 1
	}
	location := strings.TrimSpace(prefs.Location)
	anyLocation := location == "" || strings.EqualFold(location, "any")

	var matched []catalogx.Property
	for _, p := range candidates {
		if !anyLocation && !strings.EqualFold(p.Location, location) {
			continue
		}
		if p.BedsAvailable < bedsNeeded {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].BedsAvailable > matched[j].BedsAvailable
	})
	return matched, nil
}
