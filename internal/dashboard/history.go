package dashboard

import (
	"fmt"
	"time"
)

const defaultMaxSnapshots = 100

// MilestoneKind classifies what triggered a milestone.
type MilestoneKind string

const (
	MilestoneMaturityLevel MilestoneKind = "maturity-level"
	MilestoneCompletion    MilestoneKind = "completion-rate"
	MilestoneCustom        MilestoneKind = "custom"
)

// Milestone is a one-time achievement recorded the first time a snapshot
// crosses a threshold.
type Milestone struct {
	Kind        MilestoneKind
	Description string
	SnapshotID  string
	AchievedAt  time.Time
}

// Dashboard owns the append-only snapshot history and the milestones
// derived from it. Concurrent snapshot creation is unsupported — per §5,
// this is the one piece of state every other component is stateless
// relative to.
type Dashboard struct {
	maxSnapshots int
	snapshots    []Snapshot
	milestones   []Milestone

	seenMaturityLevels  map[int]bool
	completionMilestone bool
}

// NewDashboard builds a Dashboard retaining at most maxSnapshots (falling
// back to the default of 100 if maxSnapshots <= 0).
func NewDashboard(maxSnapshots int) *Dashboard {
	if maxSnapshots <= 0 {
		maxSnapshots = defaultMaxSnapshots
	}
	return &Dashboard{
		maxSnapshots:       maxSnapshots,
		seenMaturityLevels: make(map[int]bool),
	}
}

// AddSnapshot appends a snapshot, evicting the oldest (FIFO) once the
// retention limit is exceeded, and returns any milestones newly achieved by
// this snapshot.
func (d *Dashboard) AddSnapshot(s Snapshot) []Milestone {
	d.snapshots = append(d.snapshots, s)
	if len(d.snapshots) > d.maxSnapshots {
		d.snapshots = d.snapshots[len(d.snapshots)-d.maxSnapshots:]
	}

	var newly []Milestone
	if !d.seenMaturityLevels[s.MaturityLevel] {
		d.seenMaturityLevels[s.MaturityLevel] = true
		newly = append(newly, d.record(MilestoneMaturityLevel, milestoneLevelDescription(s.MaturityLevel), s))
	}
	if !d.completionMilestone && s.OverallCompletionRate >= 0.8 {
		d.completionMilestone = true
		newly = append(newly, d.record(MilestoneCompletion, "overall completion rate reached 80%", s))
	}
	return newly
}

// RecordCustomMilestone records a caller-supplied milestone against the
// given snapshot unconditionally (callers are responsible for not repeating
// one already recorded).
func (d *Dashboard) RecordCustomMilestone(description string, s Snapshot) Milestone {
	return d.record(MilestoneCustom, description, s)
}

func (d *Dashboard) record(kind MilestoneKind, description string, s Snapshot) Milestone {
	m := Milestone{Kind: kind, Description: description, SnapshotID: s.ID, AchievedAt: s.Timestamp}
	d.milestones = append(d.milestones, m)
	return m
}

// Snapshots returns the retained history, oldest first.
func (d *Dashboard) Snapshots() []Snapshot {
	return d.snapshots
}

// Milestones returns every milestone recorded so far, in achievement order.
func (d *Dashboard) Milestones() []Milestone {
	return d.milestones
}

func milestoneLevelDescription(level int) string {
	return fmt.Sprintf("reached maturity level %d", level)
}
