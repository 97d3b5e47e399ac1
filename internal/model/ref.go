// Package model defines the canonical in-memory artifact shapes consumed by
// every analyzer: business requirements, actors, use cases, screens, screen
// flows, and validation rules.
package model

// Ref is a lightweight typed reference. Only ID is semantically meaningful;
// DisplayName is advisory and never consulted for equality or resolution.
// The type parameter is a compile-time tag, not a stored pointer — resolution
// always goes through a Collection lookup by ID.
type Ref[T any] struct {
	ID          string
	DisplayName string
}

// NewRef builds a Ref with no display name.
func NewRef[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}

// Priority is ordered critical > high > medium > low.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityCritical: 3,
	PriorityHigh:     2,
	PriorityMedium:   1,
	PriorityLow:      0,
}

// Rank returns an integer ordering; higher is more urgent. Unknown values
// rank below PriorityLow so malformed input never outranks a real priority.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether p is at least as urgent as other.
func (p Priority) AtLeast(other Priority) bool {
	return p.Rank() >= other.Rank()
}

// Severity classifies the impact of an issue found by an analyzer.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

var severityRank = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
	SeverityInfo:     0,
}

// Rank returns an integer ordering; higher is more severe.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}
