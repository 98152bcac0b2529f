package types

import (
	"encoding/json"
	"fmt"
)

// CheckStatus classifies the outcome of a single check.
// The values are a classification, not a ranking.
type CheckStatus int

const (
	// StatusOptimal means the observed setting matches the recommended value.
	StatusOptimal CheckStatus = iota
	// StatusWarning means the setting is acceptable but not recommended.
	StatusWarning
	// StatusIssue means the setting is known to hurt the machine.
	StatusIssue
	// StatusInfo means the check only reports an observation.
	StatusInfo
)

var statusNames = [...]string{"Optimal", "Warning", "Issue", "Info"}

// AllStatuses returns every status in display order.
func AllStatuses() []CheckStatus {
	return []CheckStatus{StatusOptimal, StatusWarning, StatusIssue, StatusInfo}
}

// String returns the status name used in every report format.
func (s CheckStatus) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("CheckStatus(%d)", int(s))
	}
	return statusNames[s]
}

// ParseStatus converts a status name back into a CheckStatus.
func ParseStatus(name string) (CheckStatus, error) {
	for i, n := range statusNames {
		if n == name {
			return CheckStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown check status %q", name)
}

// MarshalJSON encodes the status as its name.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("cannot marshal invalid check status %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status name.
func (s *CheckStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Check is one named observation of system configuration.
type Check struct {
	// Name is the human-readable label, stable across runs.
	Name string `json:"name"`

	// Value is the free-text observation, e.g. "20%" or "Enabled".
	Value string `json:"value"`

	// Status is the classification of Value.
	Status CheckStatus `json:"status"`

	// Description explains what the check looks at. May be empty.
	Description string `json:"description"`
}

// CategoryResults holds the checks produced by one category evaluator,
// in the evaluator's declaration order.
type CategoryResults struct {
	Name   string  `json:"name"`
	Checks []Check `json:"checks"`
}
