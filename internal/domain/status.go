package domain

type JobStatus string

const (
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusCancelling JobStatus = "CANCELLING"
	JobStatusCancelled  JobStatus = "CANCELLED"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
)

var jobTransitions = map[JobStatus]map[JobStatus]struct{}{
	JobStatusProcessing: {
		JobStatusCompleted:  {},
		JobStatusFailed:     {},
		JobStatusCancelling: {},
	},
	JobStatusCancelling: {
		JobStatusCancelled: {},
	},
	JobStatusCancelled: {},
	JobStatusCompleted: {},
	JobStatusFailed:    {},
}

func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}

func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	_, ok := jobTransitions[s][next]
	return ok
}

// RowStatus is the per-row lifecycle code persisted by the status sink.
type RowStatus string

const (
	RowStatusPending   RowStatus = "pending"
	RowStatusGenerated RowStatus = "generated"
	RowStatusFailed    RowStatus = "failed"
	RowStatusCancelled RowStatus = "cancelled"
)

func (s RowStatus) Code() int {
	switch s {
	case RowStatusPending:
		return 1
	case RowStatusGenerated:
		return 2
	case RowStatusFailed:
		return 3
	case RowStatusCancelled:
		return 4
	default:
		return 0
	}
}

func RowStatusFromCode(code int) RowStatus {
	switch code {
	case 1:
		return RowStatusPending
	case 2:
		return RowStatusGenerated
	case 3:
		return RowStatusFailed
	case 4:
		return RowStatusCancelled
	default:
		return ""
	}
}

// RowStatusUpdate is one sink record. Records are identified by the job and
// the source row position; RowKey is informational and may repeat.
type RowStatusUpdate struct {
	JobID      string    `json:"processingId"`
	Row        int       `json:"row"`
	RowKey     string    `json:"employeeNumber"`
	TemplateID string    `json:"templateId,omitempty"`
	Status     RowStatus `json:"status"`
	Message    string    `json:"message,omitempty"`
}
