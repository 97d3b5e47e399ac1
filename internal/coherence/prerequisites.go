package coherence

import (
	"fmt"

	"github.com/artifactqa/quality-assessment/internal/model"
)

// checkPrerequisites validates one use case's prerequisiteUseCases per
// §4.3.2: every referenced id must resolve, must be at least as high
// priority as the dependent use case, and must not close a cycle back to it.
func checkPrerequisites(c *model.Collection, uc *model.UseCase) []Issue {
	var issues []Issue

	for _, prereq := range uc.PrerequisiteUseCases {
		prereqUC, ok := c.UseCaseByID(prereq.ID)
		if !ok {
			issues = append(issues, Issue{
				Code:      CodePrerequisiteUseCaseMissing,
				Severity:  model.SeverityHigh,
				UseCaseID: uc.ID,
				Message:   fmt.Sprintf("use case %s references missing prerequisite %s", uc.ID, prereq.ID),
			})
			continue
		}

		if !prereqUC.Priority.AtLeast(uc.Priority) {
			issues = append(issues, Issue{
				Code:      CodePrerequisitePriorityMismatch,
				Severity:  model.SeverityMedium,
				UseCaseID: uc.ID,
				Message:   fmt.Sprintf("prerequisite %s (priority %s) is lower priority than dependent use case %s (priority %s)", prereqUC.ID, prereqUC.Priority, uc.ID, uc.Priority),
			})
		}

		if reachesPrerequisite(c, prereqUC.ID, uc.ID, make(map[string]bool)) {
			issues = append(issues, Issue{
				Code:      CodePrerequisiteCircularDependency,
				Severity:  model.SeverityHigh,
				UseCaseID: uc.ID,
				Message:   fmt.Sprintf("prerequisite chain from %s back to %s forms a cycle", prereqUC.ID, uc.ID),
			})
		}
	}

	return issues
}

// reachesPrerequisite is a DFS over PrerequisiteUseCases edges, independent
// of the dependency graph package: it answers "starting at fromID, can we
// reach targetID by following prerequisite links".
func reachesPrerequisite(c *model.Collection, fromID, targetID string, visited map[string]bool) bool {
	if fromID == targetID {
		return true
	}
	if visited[fromID] {
		return false
	}
	visited[fromID] = true

	uc, ok := c.UseCaseByID(fromID)
	if !ok {
		return false
	}
	for _, prereq := range uc.PrerequisiteUseCases {
		if reachesPrerequisite(c, prereq.ID, targetID, visited) {
			return true
		}
	}
	return false
}

// checkAllPrerequisites runs checkPrerequisites over every use case in the
// collection.
func checkAllPrerequisites(c *model.Collection) []Issue {
	var issues []Issue
	for i := range c.UseCases {
		if len(c.UseCases[i].PrerequisiteUseCases) == 0 {
			continue
		}
		issues = append(issues, checkPrerequisites(c, &c.UseCases[i])...)
	}
	return issues
}
