package analyzer

import (
	"encoding/json"
	"fmt"
)

// ProjectType is the closed set of project categories the analyzer can
// assign. Exactly one value is produced per analysis.
type ProjectType int

const (
	Unknown ProjectType = iota
	WebFullstack
	BackendApi
	Frontend
	Mobile
	Desktop
	Library
)

var projectTypeLabels = map[ProjectType]string{
	Unknown:      "Unknown",
	WebFullstack: "WebFullstack",
	BackendApi:   "BackendApi",
	Frontend:     "Frontend",
	Mobile:       "Mobile",
	Desktop:      "Desktop",
	Library:      "Library",
}

func (t ProjectType) String() string {
	if label, ok := projectTypeLabels[t]; ok {
		return label
	}
	return "Unknown"
}

// ParseProjectType converts a classification label back into a ProjectType.
func ParseProjectType(label string) (ProjectType, error) {
	for t, l := range projectTypeLabels {
		if l == label {
			return t, nil
		}
	}
	return Unknown, fmt.Errorf("unknown project type: %q", label)
}

// MarshalJSON serializes the classification as its label string.
func (t ProjectType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses a classification label string.
func (t *ProjectType) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	parsed, err := ParseProjectType(label)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Analysis is the immutable result of analyzing one project directory.
// The caller owns the result; the analyzer keeps no state between calls.
type Analysis struct {
	ProjectType          ProjectType    `json:"project_type"`
	DetectedTechnologies []string       `json:"detected_technologies"`
	FileCounts           map[string]int `json:"file_counts"`
	TotalFiles           int            `json:"total_files"`
	SuggestedAgents      []string       `json:"suggested_agents"`
}
