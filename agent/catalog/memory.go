package catalog

import "context"

// MemorySource serves the fixed seed catalog. It is the default source for
// the demo entrypoint and for tests that do not bring their own fixtures.
type MemorySource struct {
	individuals []Individual
	courses     []MicroCourse
	properties  []Property
	jobs        []Job
	skills      []Skill
}

// NewMemorySource returns a source over the built-in seed rows.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		individuals: seedIndividuals(),
		courses:     seedCourses(),
		properties:  seedProperties(),
		jobs:        seedJobs(),
		skills:      seedSkills(),
	}
}

// NewFixtureSource returns a source over caller-provided rows, for tests.
func NewFixtureSource(
	individuals []Individual,
	courses []MicroCourse,
	properties []Property,
	jobs []Job,
) *MemorySource {
	return &MemorySource{
		individuals: individuals,
		courses:     courses,
		properties:  properties,
		jobs:        jobs,
	}
}

func (m *MemorySource) Individuals(_ context.Context, f Filter) ([]Individual, error) {
	var out []Individual
	for _, ind := range m.individuals {
		if matchesFilter(ind.fields(), f) {
			out = append(out, ind)
		}
	}
	return out, nil
}

func (m *MemorySource) Courses(_ context.Context, f Filter) ([]MicroCourse, error) {
	var out []MicroCourse
	for _, c := range m.courses {
		if matchesFilter(c.fields(), f) && courseAvailable(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemorySource) Properties(_ context.Context, f Filter) ([]Property, error) {
	var out []Property
	for _, p := range m.properties {
		if matchesFilter(p.fields(), f) && propertyAvailable(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemorySource) Jobs(_ context.Context, f Filter) ([]Job, error) {
	var out []Job
	for _, j := range m.jobs {
		if matchesFilter(j.fields(), f) && jobAvailable(j) {
			out = append(out, j)
		}
	}
	return out, nil
}

// Skills returns the informational skill rows. No matcher consumes these.
func (m *MemorySource) Skills(_ context.Context) ([]Skill, error) {
	return append([]Skill(nil), m.skills...), nil
}

func seedIndividuals() []Individual {
	return []Individual{
		{ID: "ind-1", Name: "Alex", Needs: []string{"shelter"}, Skills: []string{"lifting"}, Location: "north"},
		{ID: "ind-2", Name: "Sam", Needs: []string{"food", "medical"}, Skills: []string{"communication"}, Location: "downtown"},
		{ID: "ind-3", Name: "Jordan", Needs: []string{"job"}, Skills: []string{"IT", "communication"}, Location: "east"},
	}
}

func seedCourses() []MicroCourse {
	return []MicroCourse{
		{ID: "course-1", Name: "Intro to IT Support", Duration: "6 weeks", Cost: 0, Availability: true, SkillsGained: []string{"IT", "troubleshooting"}},
		{ID: "course-2", Name: "Food Safety Certification", Duration: "2 weeks", Cost: 25, Availability: true, SkillsGained: []string{"food handling"}},
		{ID: "course-3", Name: "IT Security Basics", Duration: "8 weeks", Cost: 0, Availability: false, SkillsGained: []string{"IT", "security"}},
		{ID: "course-4", Name: "Customer Service Essentials", Duration: "3 weeks", Cost: 0, Availability: true, SkillsGained: []string{"communication", "retail"}},
	}
}

func seedProperties() []Property {
	return []Property{
		{ID: "prop-1", Name: "Community Shelter A", Type: PropertyShelter, Location: "north", BedsAvailable: 5, PetFriendly: false, Contact: "555-0101"},
		{ID: "prop-2", Name: "Northside Hostel", Type: PropertyShelter, Location: "north", BedsAvailable: 3, PetFriendly: true, Contact: "555-0102"},
		{ID: "prop-3", Name: "Harborview Transitional Housing", Type: PropertyHousing, Location: "east", UnitsAvailable: 2, PetFriendly: false, Contact: "555-0103"},
		{ID: "prop-4", Name: "Downtown Emergency Shelter", Type: PropertyShelter, Location: "downtown", BedsAvailable: 0, PetFriendly: false, Contact: "555-0104"},
	}
}

func seedJobs() []Job {
	return []Job{
		{ID: "job-1", Title: "Warehouse Assistant", Location: "north", Type: JobFullTime, SkillsRequired: []string{"lifting"}, Availability: true, Contact: "555-0201"},
		{ID: "job-2", Title: "Retail Associate", Location: "downtown", Type: JobPartTime, SkillsRequired: []string{"communication", "retail"}, Availability: true, Contact: "555-0202"},
		{ID: "job-3", Title: "IT Help Desk Trainee", Location: "east", Type: JobFullTime, SkillsRequired: []string{"IT"}, Availability: true, Contact: "555-0203"},
		{ID: "job-4", Title: "Kitchen Porter", Location: "north", Type: JobPartTime, SkillsRequired: nil, Availability: true, Contact: "555-0204"},
	}
}

func seedSkills() []Skill {
	return []Skill{
		{ID: "skill-1", Name: "IT", Demand: DemandHigh},
		{ID: "skill-2", Name: "communication", Demand: DemandMedium},
		{ID: "skill-3", Name: "food handling", Demand: DemandLow},
		{ID: "skill-4", Name: "lifting", Demand: DemandMedium},
	}
}
