package match

import (
	"context"
	"strings"

	catalogx "github.com/emiliomantilla/AIgent007/agent/catalog"
)

type UpskillPreferences struct {
	Interest       string
	TimeCommitment string
}

// Upskilling returns available courses whose name or gained skills contain
// the interest as a case-insensitive substring. An empty interest keeps every
// available course. A "flexible" time commitment is accepted but adds no
// constraint today.
func Upskilling(ctx context.Context, src catalogx.Source, prefs UpskillPreferences) ([]catalogx.MicroCourse, error) {
	candidates, err := src.Courses(ctx, nil)
	if err != nil {
		return nil, err
	}

	interest := strings.ToLower(strings.TrimSpace(prefs.Interest))
	if interest == "" {
		return candidates, nil
	}

	var matched []catalogx.MicroCourse
	for _, c := range candidates {
		if courseMentions(c, interest) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func courseMentions(c catalogx.MicroCourse, interest string) bool {
	if strings.Contains(strings.ToLower(c.Name), interest) {
		return true
	}
	for _, skill := range c.SkillsGained {
		if strings.Contains(strings.ToLower(skill), interest) {
			return true
		}
	}
	return false
}
