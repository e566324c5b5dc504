package dto

// PlanTask is the task snapshot embedded into a plan request. Unknown fields
// in the incoming JSON are ignored; status rides along even though it is not
// always relevant to scheduling.
type PlanTask struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Deadline    string  `json:"deadline,omitempty"`
	EffortHours float64 `json:"effort_hours,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// PlanRequest is the body of POST /api/ai-plan
type PlanRequest struct {
	Tasks []PlanTask `json:"tasks"`
}

// PlanResponse carries either the generated plan or a human-readable error
// message, always under the same key
type PlanResponse struct {
	Plan string `json:"plan"`
}
