package planner

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// TaskType is the vocabulary of abstract sub-tasks the planner emits. The
// planner only produces these descriptors; executing them is a downstream
// concern.
type TaskType string

const (
	TaskFetchHousing            TaskType = "fetch_housing"
	TaskFetchFoodServices       TaskType = "fetch_food_services"
	TaskFetchMedicalAid         TaskType = "fetch_medical_aid"
	TaskFetchUpskillingCourses  TaskType = "fetch_upskilling_courses"
	TaskFetchEmploymentListings TaskType = "fetch_employment_opportunities"
	TaskIntegratePreferences    TaskType = "integrate_preferences"
	TaskCheckAvailability       TaskType = "check_availability"
	TaskSortByProximity         TaskType = "sort_by_proximity"
	TaskFormatOutput            TaskType = "format_output"
	TaskEscalateToHuman         TaskType = "escalate_to_human"
)

// SubTask is one abstract unit of downstream work. Identity is positional:
// a fresh ordered slice is produced per planning call.
type SubTask struct {
	Type       TaskType       `json:"task_type"`
	Parameters map[string]any `json:"parameters"`
}

// Preferences is a free-form user-preference mapping, e.g.
// {"aid_needs": ["shelter"], "pets": true} or
// {"growth_needs": ["upskilling"], "skills_interest": "IT"}.
type Preferences map[string]any

// GeoPoint is an optional user location used only to decide whether a
// proximity sort belongs in the plan.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlanSubtasks expands an intent plus user preferences into an ordered list
// of sub-task descriptors. The query is carried along so an unknown intent
// can escalate with the original wording.
func PlanSubtasks(intent Intent, query string, prefs Preferences, loc *GeoPoint) []SubTask {
	var tasks []SubTask

	if len(prefs) > 0 {
		tasks = append(tasks, SubTask{
			Type:       TaskIntegratePreferences,
			Parameters: copyPrefs(prefs),
		})
	}

	switch intent {
	case IntentHousing, IntentFood, IntentMedical:
		log.Debug().Interface("preferences", prefs).Msg("planning immediate-aid sub-tasks")
		aidNeeds := stringList(prefs["aid_needs"])

		if anyTagContains(aidNeeds, "shelter", "housing", "bed") {
			tasks = append(tasks, SubTask{
				Type:       TaskFetchHousing,
				Parameters: withPrefs(prefs, map[string]any{"type": "emergency"}),
			})
		}
		if anyTagContains(aidNeeds, "food", "meal", "hungry") {
			tasks = append(tasks, SubTask{
				Type:       TaskFetchFoodServices,
				Parameters: copyPrefs(prefs),
			})
		}
		if anyTagContains(aidNeeds, "medical", "doctor") {
			tasks = append(tasks, SubTask{
				Type:       TaskFetchMedicalAid,
				Parameters: copyPrefs(prefs),
			})
		}

		tasks = append(tasks, availabilityAndFormatTail(
			"immediate_aid", loc, "concise_list_with_contacts")...)

	case IntentUpskill, IntentWork:
		log.Debug().Interface("preferences", prefs).Msg("planning long-term-growth sub-tasks")
		growthNeeds := stringList(prefs["growth_needs"])

		if anyTagContains(growthNeeds, "upskilling", "learn", "course") {
			tasks = append(tasks, SubTask{
				Type:       TaskFetchUpskillingCourses,
				Parameters: withPrefs(prefs, map[string]any{"skill_interest": prefs["skills_interest"]}),
			})
		}
		if anyTagContains(growthNeeds, "employment", "job", "work") {
			tasks = append(tasks, SubTask{
				Type:       TaskFetchEmploymentListings,
				Parameters: withPrefs(prefs, map[string]any{"job_type": prefs["job_type"]}),
			})
		}

		tasks = append(tasks, availabilityAndFormatTail(
			"long_term_growth", loc, "detailed_list_with_links")...)

	default:
		log.Debug().Str("query", query).Msg("unknown intent, escalating for clarification")
		tasks = append(tasks,
			SubTask{
				Type: TaskEscalateToHuman,
				Parameters: map[string]any{
					"reason":     "intent_unclear",
					"user_query": query,
				},
			},
			SubTask{
				Type:       TaskFormatOutput,
				Parameters: map[string]any{"format": "clarification_prompt"},
			},
		)
	}

	return tasks
}

func availabilityAndFormatTail(serviceType string, loc *GeoPoint, format string) []SubTask {
	tail := []SubTask{{
		Type:       TaskCheckAvailability,
		Parameters: map[string]any{"service_type": serviceType},
	}}
	if loc != nil {
		tail = append(tail, SubTask{
			Type:       TaskSortByProximity,
			Parameters: map[string]any{"location": *loc},
		})
	}
	tail = append(tail, SubTask{
		Type:       TaskFormatOutput,
		Parameters: map[string]any{"format": format},
	})
	return tail
}

// anyTagContains reports whether any preference tag contains one of the
// keywords as a substring, case-insensitively.
func anyTagContains(tags []string, keywords ...string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

func stringList(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func copyPrefs(prefs Preferences) map[string]any {
	out := make(map[string]any, len(prefs))
	for k, v := range prefs {
		out[k] = v
	}
	return out
}

// withPrefs merges extra keys under the preference mapping; preference values
// win on conflicts.
func withPrefs(prefs Preferences, extra map[string]any) map[string]any {
	out := make(map[string]any, len(prefs)+len(extra))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range prefs {
		out[k] = v
	}
	return out
}
