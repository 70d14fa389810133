package domain

type EventType string

const (
	EventProgress     EventType = "progress"
	EventRowSucceeded EventType = "rowSucceeded"
	EventRowFailed    EventType = "rowFailed"
	EventCompleted    EventType = "completed"
	EventError        EventType = "error"
)

type Event struct {
	Type        EventType    `json:"type"`
	Stage       string       `json:"stage,omitempty"`
	Counters    *Counters    `json:"summary,omitempty"`
	Row         *RowEvent    `json:"row,omitempty"`
	Status      JobStatus    `json:"status,omitempty"`
	Message     string       `json:"message,omitempty"`
	ErrorReport *ErrorReport `json:"errorReport,omitempty"`
}

type RowEvent struct {
	Key      string `json:"employeeNumber"`
	Name     string `json:"employee"`
	Document string `json:"name,omitempty"`
	Message  string `json:"message,omitempty"`
}
