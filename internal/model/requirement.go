package model

// BusinessRule is a named, referenceable rule owned by a BusinessRequirement.
// UseCase.BusinessRules references these by ID.
type BusinessRule struct {
	ID          string
	Description string
}

// SecurityPolicy is a named, referenceable policy owned by a
// BusinessRequirement. UseCase.SecurityPolicies references these by ID.
type SecurityPolicy struct {
	ID          string
	Description string
}

// BusinessGoal is a named, referenceable goal owned by a
// BusinessRequirement. UseCase.BusinessRequirementCoverage may cite these.
type BusinessGoal struct {
	ID          string
	Description string
}

// Scope splits a requirement's boundary into in-scope and (optional)
// out-of-scope items.
type Scope struct {
	InScope    []Item
	OutOfScope []Item
}

// BusinessRequirement captures a business-level requirement: its goals,
// scope, stakeholders, and the rules/policies use cases depend on.
type BusinessRequirement struct {
	DocumentBase

	Title            string
	Summary          string
	BusinessGoals    []BusinessGoal
	Scope            Scope
	Stakeholders     []Item
	SuccessMetrics   []Item
	Assumptions      []Item
	Constraints      []Item
	BusinessRules    []BusinessRule
	SecurityPolicies []SecurityPolicy
}

// GoalByID returns the goal with the given id, or false if none matches.
func (b *BusinessRequirement) GoalByID(id string) (BusinessGoal, bool) {
	for _, g := range b.BusinessGoals {
		if g.ID == id {
			return g, true
		}
	}
	return BusinessGoal{}, false
}
