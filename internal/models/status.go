package models

import "fmt"

// Status represents the lifecycle status of a project
type Status string

const (
	StatusInitiated  Status = "initiated"   // Project created, waiting for analysis
	StatusAnalyzing  Status = "analyzing"   // Requirements being analyzed
	StatusPlanning   Status = "planning"    // Project plan being drafted
	StatusGenerating Status = "generating"  // Code/artifacts being generated
	StatusInProgress Status = "in_progress" // Under active development
	StatusReview     Status = "review"      // In review/validation
	StatusCompleted  Status = "completed"   // Work finished
	StatusDelivered  Status = "delivered"   // Handed over to the client
	StatusCancelled  Status = "cancelled"   // Cancelled
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []Status{
	StatusInitiated,
	StatusAnalyzing,
	StatusPlanning,
	StatusGenerating,
	StatusInProgress,
	StatusReview,
	StatusCompleted,
	StatusDelivered,
	StatusCancelled,
}

// ParseStatus converts a string tag into a Status
func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status: %q", s)
}

// Valid reports whether the status is one of the known tags
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Terminal reports whether the status marks the end of a project's lifecycle
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
