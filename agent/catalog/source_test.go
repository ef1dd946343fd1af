package catalog

import (
	"context"
	"testing"
)

func TestPropertiesFilterEquality(t *testing.T) {
	t.Parallel()

	src := NewMemorySource()
	props, err := src.Properties(context.Background(), Filter{"type": "shelter"})
	if err != nil {
		t.Fatalf("Properties() error = %v", err)
	}

	// prop-4 is a shelter but has zero beds, so availability excludes it.
	wantIDs := []string{"prop-1", "prop-2"}
	if len(props) != len(wantIDs) {
		t.Fatalf("got %d properties, want %d", len(props), len(wantIDs))
	}
	for i, p := range props {
		if p.ID != wantIDs[i] {
			t.Fatalf("props[%d].ID = %s, want %s", i, p.ID, wantIDs[i])
		}
	}
}

func TestPropertiesAvailabilityCountsUnits(t *testing.T) {
	t.Parallel()

	src := NewMemorySource()
	props, err := src.Properties(context.Background(), Filter{"type": "housing"})
	if err != nil {
		t.Fatalf("Properties() error = %v", err)
	}
	if len(props) != 1 || props[0].ID != "prop-3" {
		t.Fatalf("unexpected housing results: %+v", props)
	}
}

func TestPropertiesUnknownFieldMatchesNothing(t *testing.T) {
	t.Parallel()

	src := NewMemorySource()
	props, err := src.Properties(context.Background(), Filter{"no_such_field": "x"})
	if err != nil {
		t.Fatalf("Properties() error = %v", err)
	}
	if len(props) != 0 {
		t.Fatalf("expected no results for unknown field, got %d", len(props))
	}
}

func TestCoursesAvailabilityPredicate(t *testing.T) {
	t.Parallel()

	src := NewMemorySource()
	courses, err := src.Courses(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("Courses() error = %v", err)
	}
	for _, c := range courses {
		if !c.Availability {
			t.Fatalf("unavailable course leaked through: %s", c.ID)
		}
		if c.ID == "course-3" {
			t.Fatal("course-3 is unavailable and must be excluded")
		}
	}
	if len(courses) != 3 {
		t.Fatalf("got %d courses, want 3", len(courses))
	}
}

func TestCoursesListFieldContainment(t *testing.T) {
	t.Parallel()

	src := NewMemorySource()
	courses, err := src.Courses(context.Background(), Filter{"skills_gained": "IT"})
	if err != nil {
		t.Fatalf("Courses() error = %v", err)
	}
	// course-3 also teaches IT but is unavailable.
	if len(courses) != 1 || courses[0].ID != "course-1" {
		t.Fatalf("unexpected IT courses: %+v", courses)
	}
}

func TestJobsFilterValueList(t *testing.T) {
	t.Parallel()

	src := NewMemorySource()
	jobs, err := src.Jobs(context.Background(), Filter{"location": []string{"north", "east"}})
	if err != nil {
		t.Fatalf("Jobs() error = %v", err)
	}
	wantIDs := []string{"job-1", "job-3", "job-4"}
	if len(jobs) != len(wantIDs) {
		t.Fatalf("got %d jobs, want %d", len(jobs), len(wantIDs))
	}
	for i, j := range jobs {
		if j.ID != wantIDs[i] {
			t.Fatalf("jobs[%d].ID = %s, want %s", i, j.ID, wantIDs[i])
		}
	}
}

func TestJobsUnavailableExcluded(t *testing.T) {
	t.Parallel()

	src := NewFixtureSource(nil, nil, nil, []Job{
		{ID: "j1", Title: "Open Role", Availability: true},
		{ID: "j2", Title: "Closed Role", Availability: false},
	})
	jobs, err := src.Jobs(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("Jobs() error = %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "j1" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
}

func TestIndividualsListContainment(t *testing.T) {
	t.Parallel()

	src := NewMemorySource()
	inds, err := src.Individuals(context.Background(), Filter{"needs": "medical"})
	if err != nil {
		t.Fatalf("Individuals() error = %v", err)
	}
	if len(inds) != 1 || inds[0].ID != "ind-2" {
		t.Fatalf("unexpected individuals: %+v", inds)
	}
}

func TestValueMatchesNumericCoercion(t *testing.T) {
	t.Parallel()

	// JSON round trips turn ints into float64; both sides must still compare.
	if !valueMatches(5, float64(5)) {
		t.Fatal("int field must match float64 filter")
	}
	if !valueMatches(float64(3), 3) {
		t.Fatal("float64 field must match int filter")
	}
	if valueMatches(5, float64(6)) {
		t.Fatal("distinct numbers must not match")
	}
}

func TestSkillsReturnsSeedRows(t *testing.T) {
	t.Parallel()

	src := NewMemorySource()
	skills, err := src.Skills(context.Background())
	if err != nil {
		t.Fatalf("Skills() error = %v", err)
	}
	if len(skills) != 4 {
		t.Fatalf("got %d skills, want 4", len(skills))
	}
	if skills[0].Name != "IT" || skills[0].Demand != DemandHigh {
		t.Fatalf("unexpected first skill: %+v", skills[0])
	}
}
