package match

import (
	"context"
	"sort"
	"strings"

	catalogx "github.com/emiliomantilla/AIgent007/agent/catalog"
)

type JobPreferences struct {
	JobType string
	Skills  []string
}

// Jobs returns openings whose full required-skill set the user covers,
// optionally restricted to an exact job type ("any" or empty means no
// constraint), sorted by descending skill overlap. The sort is stable so
// equal-overlap jobs keep catalog order.
func Jobs(ctx context.Context, src catalogx.Source, prefs JobPreferences) ([]catalogx.Job, error) {
	filter := catalogx.Filter{}
	jobType := strings.TrimSpace(prefs.JobType)
	if jobType != "" && !strings.EqualFold(jobType, "any") {
		filter["type"] = jobType
	}

	candidates, err := src.Jobs(ctx, filter)
	if err != nil {
		return nil, err
	}

	userSkills := make(map[string]struct{}, len(prefs.Skills))
	for _, s := range prefs.Skills {
		userSkills[strings.ToLower(s)] = struct{}{}
	}

	var matched []catalogx.Job
	overlap := make(map[string]int, len(candidates))
	for _, j := range candidates {
		covered := 0
		qualified := true
		for _, required := range j.SkillsRequired {
			if _, ok := userSkills[strings.ToLower(required)]; !ok {
				qualified = false
				break
			}
			covered++
		}
		if !qualified {
			continue
		}
		matched = append(matched, j)
		overlap[j.ID] = covered
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return overlap[matched[i].ID] > overlap[matched[j].ID]
	})
	return matched, nil
}
