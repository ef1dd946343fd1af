package contract

import "encoding/json"

// RequestKind is the executor-side classification of a user request.
//
// It is deliberately a different taxonomy from planner.Intent: the planner and
// the executor grew up as independent modules and are kept that way. Do not
// map one onto the other.
type RequestKind string

const (
	KindShelterRequest RequestKind = "shelter_request"
	KindJobRequest     RequestKind = "job_request"
	KindUpskillRequest RequestKind = "upskill_request"
	KindGeneralQuery   RequestKind = "general_query"
)

// IntentEnvelope is the structured object the executor expects back from the
// text-generation collaborator: a request kind plus kind-specific details.
type IntentEnvelope struct {
	Intent  RequestKind     `json:"intent"`
	Details json.RawMessage `json:"details,omitempty"`
}

type ShelterDetails struct {
	Location    string `json:"location,omitempty"`
	PetFriendly bool   `json:"pet_friendly"`
	BedsNeeded  int    `json:"beds_needed,omitempty"`
}

type JobDetails struct {
	JobType string   `json:"job_type,omitempty"`
	Skills  []string `json:"skills,omitempty"`
}

type UpskillDetails struct {
	Interest       string `json:"interest,omitempty"`
	TimeCommitment string `json:"time_commitment,omitempty"`
}

type GeneralDetails struct {
	Reply string `json:"reply,omitempty"`
}

// OutputShape describes the structure the caller would like the generator to
// produce. Collaborators may use it to steer the model; they are not required
// to enforce it.
type OutputShape struct {
	Name   string            `json:"name,omitempty"`
	Fields map[string]string `json:"fields,omitempty"` // field -> semantic type
}

// CallOutcome is the result of one availability-confirmation call.
type CallOutcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ExecutionResult is the terminal output of one executor request.
type ExecutionResult struct {
	Status               string   `json:"status"`
	Message              string   `json:"message"`
	RecommendedResources []string `json:"recommended_resources,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)
