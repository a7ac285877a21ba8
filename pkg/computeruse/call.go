// Package computeruse implements the browser-automation tool family: a tagged
// action protocol, a policy layer that gates every action, a chromedp-backed
// executor, and a trace recorder for replayable runs.
package computeruse

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Action types of the ComputerCall protocol.
const (
	ActionClick       = "click"
	ActionDoubleClick = "double_click"
	ActionType        = "type"
	ActionScroll      = "scroll"
	ActionKeypress    = "keypress"
	ActionVisitURL    = "visit_url"
	ActionWebSearch   = "web_search"
	ActionBack        = "back"
	ActionWait        = "wait"
	ActionTerminate   = "terminate"
)

// Safety check severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// SafetyCheck is a model-attached warning about an action.
type SafetyCheck struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// severityRank orders severities; unknown values rank lowest.
func severityRank(severity string) int {
	switch severity {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Meta carries the model's self-assessment of an action.
type Meta struct {
	Done             bool   `json:"done,omitempty"`
	CriticalPoint    bool   `json:"critical_point,omitempty"`
	ReasoningSummary string `json:"reasoning_summary,omitempty"`
}

// ComputerCall is one browser action. Type selects which of the
// action-specific fields are meaningful.
type ComputerCall struct {
	CallID string `json:"call_id,omitempty"`
	Type   string `json:"type"`

	// click / double_click / scroll anchor
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`

	// type
	Text string `json:"text,omitempty"`

	// scroll
	DeltaX int `json:"delta_x,omitempty"`
	DeltaY int `json:"delta_y,omitempty"`

	// keypress
	Keys []string `json:"keys,omitempty"`

	// visit_url
	URL string `json:"url,omitempty"`

	// web_search
	Query string `json:"query,omitempty"`

	// wait
	DurationMs int `json:"duration_ms,omitempty"`

	PendingSafetyChecks []SafetyCheck `json:"pending_safety_checks,omitempty"`
	Meta                Meta          `json:"meta,omitempty"`
}

// EnsureCallID fills CallID when the caller did not supply one.
func (c *ComputerCall) EnsureCallID() {
	if c.CallID == "" {
		c.CallID = uuid.New().String()
	}
}

// Validate checks that the action type is known and its required fields are
// present.
func (c *ComputerCall) Validate() error {
	switch c.Type {
	case ActionClick, ActionDoubleClick, ActionScroll, ActionKeypress,
		ActionBack, ActionWait, ActionTerminate:
		return nil
	case ActionType:
		if c.Text == "" {
			return fmt.Errorf("type action requires text")
		}
		return nil
	case ActionVisitURL:
		if c.URL == "" {
			return fmt.Errorf("visit_url action requires url")
		}
		return nil
	case ActionWebSearch:
		if c.Query == "" {
			return fmt.Errorf("web_search action requires query")
		}
		return nil
	default:
		return fmt.Errorf("unknown action type %q", c.Type)
	}
}

// Execution statuses of an observation.
const (
	ExecutionSuccess = "success"
	ExecutionError   = "error"
)

// Execution reports how an action went.
type Execution struct {
	Status       string `json:"status"`
	ErrorType    string `json:"error_type,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Viewport is the browser window size in CSS pixels.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Observation is the outcome of one executed ComputerCall.
type Observation struct {
	CallID        string    `json:"call_id"`
	URL           string    `json:"url,omitempty"`
	Title         string    `json:"title,omitempty"`
	Viewport      Viewport  `json:"viewport"`
	ScreenshotB64 string    `json:"screenshot_b64,omitempty"`
	Execution     Execution `json:"execution"`
	Timestamp     time.Time `json:"ts"`
}
