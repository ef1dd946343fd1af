package planner

import (
	"testing"
)

func TestDiscernIntent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		query string
		want  Intent
	}{
		{"shelter query", "I need a shelter for tonight", IntentHousing},
		{"safe place phrase", "is there a safe place nearby", IntentHousing},
		{"upskill query", "I want to learn a new skill", IntentUpskill},
		{"training query", "any training programs available", IntentUpskill},
		{"work query", "help me find a job", IntentWork},
		{"employment query", "looking for employment", IntentWork},
		{"unknown query", "what's the weather like", IntentUnknown},
		{"empty query", "", IntentUnknown},
		{"case insensitive", "I NEED A SHELTER", IntentHousing},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DiscernIntent(tc.query); got != tc.want {
				t.Fatalf("DiscernIntent(%q) = %s, want %s", tc.query, got, tc.want)
			}
		})
	}
}

// Food and medical keywords are shadowed by the housing list, so those queries
// classify as housing. Downstream plans depend on this ordering.
func TestDiscernIntentHousingShadowsFoodAndMedical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		query string
	}{
		{"hungry", "I am hungry and need a meal"},
		{"food", "where can I get food"},
		{"doctor", "I need to see a doctor"},
		{"clinic", "is there a clinic open"},
		{"emergency", "this is an emergency"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DiscernIntent(tc.query); got != IntentHousing {
				t.Fatalf("DiscernIntent(%q) = %s, want %s", tc.query, got, IntentHousing)
			}
		})
	}
}

func TestPlanSubtasksImmediateAid(t *testing.T) {
	t.Parallel()

	prefs := Preferences{"aid_needs": []string{"shelter", "food"}}
	tasks := PlanSubtasks(IntentHousing, "I need a shelter and a meal", prefs, nil)

	wantTypes := []TaskType{
		TaskIntegratePreferences,
		TaskFetchHousing,
		TaskFetchFoodServices,
		TaskCheckAvailability,
		TaskFormatOutput,
	}
	assertTaskTypes(t, tasks, wantTypes)

	housing := tasks[1]
	if housing.Parameters["type"] != "emergency" {
		t.Fatalf("fetch_housing type = %v, want emergency", housing.Parameters["type"])
	}

	avail := tasks[3]
	if avail.Parameters["service_type"] != "immediate_aid" {
		t.Fatalf("check_availability service_type = %v", avail.Parameters["service_type"])
	}
	format := tasks[4]
	if format.Parameters["format"] != "concise_list_with_contacts" {
		t.Fatalf("format_output format = %v", format.Parameters["format"])
	}
}

func TestPlanSubtasksMedicalNeed(t *testing.T) {
	t.Parallel()

	prefs := Preferences{"aid_needs": []string{"medical"}}
	tasks := PlanSubtasks(IntentMedical, "I need a doctor", prefs, nil)

	assertTaskTypes(t, tasks, []TaskType{
		TaskIntegratePreferences,
		TaskFetchMedicalAid,
		TaskCheckAvailability,
		TaskFormatOutput,
	})
}

func TestPlanSubtasksLongTermGrowth(t *testing.T) {
	t.Parallel()

	prefs := Preferences{
		"growth_needs":    []string{"upskilling", "employment"},
		"skills_interest": "IT",
		"job_type":        "part-time",
	}
	tasks := PlanSubtasks(IntentWork, "I want a job and to learn", prefs, nil)

	assertTaskTypes(t, tasks, []TaskType{
		TaskIntegratePreferences,
		TaskFetchUpskillingCourses,
		TaskFetchEmploymentListings,
		TaskCheckAvailability,
		TaskFormatOutput,
	})

	courses := tasks[1]
	if courses.Parameters["skill_interest"] != "IT" {
		t.Fatalf("skill_interest = %v, want IT", courses.Parameters["skill_interest"])
	}
	jobs := tasks[2]
	if jobs.Parameters["job_type"] != "part-time" {
		t.Fatalf("job_type = %v, want part-time", jobs.Parameters["job_type"])
	}

	avail := tasks[3]
	if avail.Parameters["service_type"] != "long_term_growth" {
		t.Fatalf("check_availability service_type = %v", avail.Parameters["service_type"])
	}
	format := tasks[4]
	if format.Parameters["format"] != "detailed_list_with_links" {
		t.Fatalf("format_output format = %v", format.Parameters["format"])
	}
}

func TestPlanSubtasksUnknownIntentEscalates(t *testing.T) {
	t.Parallel()

	tasks := PlanSubtasks(IntentUnknown, "what's the weather like", nil, nil)

	assertTaskTypes(t, tasks, []TaskType{TaskEscalateToHuman, TaskFormatOutput})

	escalate := tasks[0]
	if escalate.Parameters["reason"] != "intent_unclear" {
		t.Fatalf("reason = %v", escalate.Parameters["reason"])
	}
	if escalate.Parameters["user_query"] != "what's the weather like" {
		t.Fatalf("user_query = %v", escalate.Parameters["user_query"])
	}
	if tasks[1].Parameters["format"] != "clarification_prompt" {
		t.Fatalf("format = %v", tasks[1].Parameters["format"])
	}
}

func TestPlanSubtasksLocationAddsProximitySort(t *testing.T) {
	t.Parallel()

	prefs := Preferences{"aid_needs": []string{"shelter"}}
	loc := &GeoPoint{Latitude: 40.7, Longitude: -74.0}
	tasks := PlanSubtasks(IntentHousing, "shelter near me", prefs, loc)

	assertTaskTypes(t, tasks, []TaskType{
		TaskIntegratePreferences,
		TaskFetchHousing,
		TaskCheckAvailability,
		TaskSortByProximity,
		TaskFormatOutput,
	})

	sortTask := tasks[3]
	got, ok := sortTask.Parameters["location"].(GeoPoint)
	if !ok {
		t.Fatalf("location parameter type = %T", sortTask.Parameters["location"])
	}
	if got != *loc {
		t.Fatalf("location = %+v, want %+v", got, *loc)
	}
}

func TestPlanSubtasksEmptyPreferencesSkipsIntegration(t *testing.T) {
	t.Parallel()

	tasks := PlanSubtasks(IntentHousing, "I need a bed", Preferences{}, nil)
	for _, task := range tasks {
		if task.Type == TaskIntegratePreferences {
			t.Fatal("integrate_preferences must not appear without preferences")
		}
	}

	// No aid_needs tags means no fetch task either, just the shared tail.
	assertTaskTypes(t, tasks, []TaskType{TaskCheckAvailability, TaskFormatOutput})
}

func TestPlanSubtasksPreferenceValuesWinOverDefaults(t *testing.T) {
	t.Parallel()

	prefs := Preferences{
		"aid_needs": []string{"housing"},
		"type":      "transitional",
	}
	tasks := PlanSubtasks(IntentHousing, "longer term housing", prefs, nil)

	housing := tasks[1]
	if housing.Type != TaskFetchHousing {
		t.Fatalf("expected fetch_housing second, got %s", housing.Type)
	}
	if housing.Parameters["type"] != "transitional" {
		t.Fatalf("type = %v, want transitional", housing.Parameters["type"])
	}
}

func assertTaskTypes(t *testing.T, tasks []SubTask, want []TaskType) {
	t.Helper()
	if len(tasks) != len(want) {
		t.Fatalf("got %d tasks %v, want %d", len(tasks), taskTypes(tasks), len(want))
	}
	for i, task := range tasks {
		if task.Type != want[i] {
			t.Fatalf("task[%d] = %s, want %s (all: %v)", i, task.Type, want[i], taskTypes(tasks))
		}
	}
}

func taskTypes(tasks []SubTask) []TaskType {
	out := make([]TaskType, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Type)
	}
	return out
}
