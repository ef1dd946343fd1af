package catalog

import "github.com/uptrace/bun"

// Catalog entities are read-only records. The in-memory source holds them as
// fixed seed data for the process lifetime; the Postgres source loads the
// same shapes from managed tables. Nothing in the repository mutates them.

type PropertyType string

const (
	PropertyShelter PropertyType = "shelter"
	PropertyHousing PropertyType = "housing"
)

type JobType string

const (
	JobFullTime JobType = "full-time"
	JobPartTime JobType = "part-time"
)

type SkillDemand string

const (
	DemandLow    SkillDemand = "low"
	DemandMedium SkillDemand = "medium"
	DemandHigh   SkillDemand = "high"
)

type Individual struct {
	bun.BaseModel `bun:"table:individuals"`

	ID       string   `bun:"id,pk" json:"id"`
	Name     string   `bun:"name" json:"name"`
	Needs    []string `bun:"needs,array" json:"needs"`
	Skills   []string `bun:"skills,array" json:"skills"`
	Location string   `bun:"location" json:"location"`
}

type MicroCourse struct {
	bun.BaseModel `bun:"table:micro_courses"`

	ID           string   `bun:"id,pk" json:"id"`
	Name         string   `bun:"name" json:"name"`
	Duration     string   `bun:"duration" json:"duration"`
	Cost         float64  `bun:"cost" json:"cost"`
	Availability bool     `bun:"availability" json:"availability"`
	SkillsGained []string `bun:"skills_gained,array" json:"skills_gained"`
}

type Property struct {
	bun.BaseModel `bun:"table:properties"`

	ID             string       `bun:"id,pk" json:"id"`
	Name           string       `bun:"name" json:"name"`
	Type           PropertyType `bun:"type" json:"type"`
	Location       string       `bun:"location" json:"location"`
	BedsAvailable  int          `bun:"beds_available" json:"beds_available"`
	UnitsAvailable int          `bun:"units_available" json:"units_available"`
	PetFriendly    bool         `bun:"pet_friendly" json:"pet_friendly"`
	Contact        string       `bun:"contact" json:"contact"`
}

type Job struct {
	bun.BaseModel `bun:"table:jobs"`

	ID             string   `bun:"id,pk" json:"id"`
	Title          string   `bun:"title" json:"title"`
	Location       string   `bun:"location" json:"location"`
	Type           JobType  `bun:"type" json:"type"`
	SkillsRequired []string `bun:"skills_required,array" json:"skills_required"`
	Availability   bool     `bun:"availability" json:"availability"`
	Contact        string   `bun:"contact" json:"contact"`
}

// Skill is informational only; no matcher consumes demand today.
type Skill struct {
	bun.BaseModel `bun:"table:skills"`

	ID     string      `bun:"id,pk" json:"id"`
	Name   string      `bun:"name" json:"name"`
	Demand SkillDemand `bun:"demand" json:"demand"`
}

// fields exposes the filterable view of each entity, keyed by the snake_case
// names callers use in a Filter.

func (i Individual) fields() map[string]any {
	return map[string]any{
		"id":       i.ID,
		"name":     i.Name,
		"needs":    i.Needs,
		"skills":   i.Skills,
		"location": i.Location,
	}
}

func (c MicroCourse) fields() map[string]any {
	return map[string]any{
		"id":            c.ID,
		"name":          c.Name,
		"duration":      c.Duration,
		"cost":          c.Cost,
		"availability":  c.Availability,
		"skills_gained": c.SkillsGained,
	}
}

func (p Property) fields() map[string]any {
	return map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"type":            string(p.Type),
		"location":        p.Location,
		"beds_available":  p.BedsAvailable,
		"units_available": p.UnitsAvailable,
		"pet_friendly":    p.PetFriendly,
		"contact":         p.Contact,
	}
}

func (j Job) fields() map[string]any {
	return map[string]any{
		"id":              j.ID,
		"title":           j.Title,
		"location":        j.Location,
		"type":            string(j.Type),
		"skills_required": j.SkillsRequired,
		"availability":    j.Availability,
		"contact":         j.Contact,
	}
}
