// Package activity records enrichment attempts and other operator-visible
// events in SQLite.
package activity

import "time"

// Actor identifies which front end triggered an action.
type Actor string

const (
	ActorUser   Actor = "user"
	ActorMCP    Actor = "mcp"
	ActorCLI    Actor = "cli"
	ActorSystem Actor = "system"
)

// Action describes what was done.
type Action string

const (
	ActionEnrichment Action = "enrichment"
	ActionExport     Action = "export"
	ActionContact    Action = "contact"
)

// Entry is a single activity record.
type Entry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Actor      Actor     `json:"actor"`
	Action     Action    `json:"action"`
	OpKey      string    `json:"op_key,omitempty"`
	ProjectID  string    `json:"project_id,omitempty"`
	Outcome    string    `json:"outcome,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	Detail     string    `json:"detail,omitempty"`
}
