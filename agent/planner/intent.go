package planner

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Intent is the planner-side classification of a user query. It is a separate
// taxonomy from contract.RequestKind on purpose; see agent/contract.
type Intent string

const (
	IntentHousing Intent = "housing"
	IntentFood    Intent = "food"
	IntentMedical Intent = "medical"
	IntentUpskill Intent = "upskill"
	IntentWork    Intent = "work"
	IntentUnknown Intent = "unknown"
)

// Keyword lists are tested in priority order. The housing list knowingly
// contains every food and medical keyword, so any query carrying one of those
// classifies as housing before the later lists are reached. Downstream
// consumers rely on that ordering; change it only together with them.
var (
	housingKeywords = []string{
		"shelter", "bed", "sleep", "food", "eat", "meal", "hungry",
		"doctor", "medical", "clinic", "emergency", "safe place", "tonight",
	}
	foodKeywords    = []string{"food", "eat", "meal", "hungry"}
	medicalKeywords = []string{"doctor", "medical", "clinic", "emergency"}
	upskillKeywords = []string{"learn", "course", "skill", "career", "training", "upskill"}
	workKeywords    = []string{"job", "work", "employment", "find a job", "get a job"}
)

// DiscernIntent maps a raw query to an Intent by substring search over the
// keyword lists, first hit wins.
func DiscernIntent(query string) Intent {
	lower := strings.ToLower(query)

	intent := IntentUnknown
	switch {
	case containsAny(lower, housingKeywords):
		intent = IntentHousing
	case containsAny(lower, foodKeywords):
		intent = IntentFood
	case containsAny(lower, medicalKeywords):
		intent = IntentMedical
	case containsAny(lower, upskillKeywords):
		intent = IntentUpskill
	case containsAny(lower, workKeywords):
		intent = IntentWork
	}

	log.Debug().Str("intent", string(intent)).Msg("discerned query intent")
	return intent
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
