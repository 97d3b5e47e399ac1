package graph

import (
	"fmt"

	"github.com/artifactqa/quality-assessment/internal/model"
)

// BuildGraph constructs the dependency graph for a collection following the
// construction rules: every addressable artifact and every sub-item that
// can be individually referenced (goals, rules, policies) gets a node, and
// edges are added for every relationship the model expresses explicitly.
func BuildGraph(c *model.Collection) *Graph {
	g := NewGraph()

	for i := range c.BusinessRequirements {
		addBusinessRequirement(g, &c.BusinessRequirements[i])
	}
	for i := range c.Actors {
		g.AddNode(Node{ID: c.Actors[i].ID, Kind: NodeActor, Name: c.Actors[i].Name})
	}
	for i := range c.Screens {
		g.AddNode(Node{ID: c.Screens[i].ID, Kind: NodeScreen, Name: c.Screens[i].Name})
	}
	for i := range c.UseCases {
		g.AddNode(Node{ID: c.UseCases[i].ID, Kind: NodeUseCase, Name: c.UseCases[i].Name})
	}
	for i := range c.ScreenFlows {
		g.AddNode(Node{ID: c.ScreenFlows[i].ID, Kind: NodeScreenFlow, Name: c.ScreenFlows[i].Name})
	}

	for i := range c.UseCases {
		addUseCaseEdges(g, &c.UseCases[i])
	}
	for i := range c.ScreenFlows {
		addScreenFlowEdges(g, &c.ScreenFlows[i])
	}

	return g
}

// addBusinessRequirement adds the requirement node plus one sub-node per
// goal/rule/policy, joined to the parent by a CONTAINS edge. A sub-node takes
// the sub-item's own id, or "<parent-id>-<kind>-<index>" when it has none
// (see subItemID).
func addBusinessRequirement(g *Graph, req *model.BusinessRequirement) {
	g.AddNode(Node{ID: req.ID, Kind: NodeBusinessRequirement, Name: req.Name})

	for i, goal := range req.BusinessGoals {
		id := subItemID(req.ID, "goal", i, goal.ID)
		g.AddNode(Node{ID: id, Kind: NodeBusinessGoal, Name: goal.Description})
		g.AddEdge(Edge{From: req.ID, To: id, Kind: EdgeContains})
	}
	for i, rule := range req.BusinessRules {
		id := subItemID(req.ID, "rule", i, rule.ID)
		g.AddNode(Node{ID: id, Kind: NodeBusinessRule, Name: rule.Description})
		g.AddEdge(Edge{From: req.ID, To: id, Kind: EdgeContains})
	}
	for i, policy := range req.SecurityPolicies {
		id := subItemID(req.ID, "policy", i, policy.ID)
		g.AddNode(Node{ID: id, Kind: NodeSecurityPolicy, Name: policy.Description})
		g.AddEdge(Edge{From: req.ID, To: id, Kind: EdgeContains})
	}
}

// subItemID prefers the sub-item's own id when it has one (scenario
// fixtures commonly assign ids directly), falling back to the positional
// template so every sub-item is addressable even when unassigned.
func subItemID(parentID, kind string, index int, ownID string) string {
	if ownID != "" {
		return ownID
	}
	return fmt.Sprintf("%s-%s-%d", parentID, kind, index)
}

// addUseCaseEdges wires: actor->usecase USES (primary and secondary),
// usecase->requirement IMPLEMENTS (plus one IMPLEMENTS edge per covered
// goal), usecase->rule/policy DEPENDS_ON, and usecase-step->screen USES.
func addUseCaseEdges(g *Graph, uc *model.UseCase) {
	if uc.Actors.Primary.ID != "" {
		g.AddEdge(Edge{From: uc.Actors.Primary.ID, To: uc.ID, Kind: EdgeUses})
	}
	for _, secondary := range uc.Actors.Secondary {
		if secondary.ID != "" {
			g.AddEdge(Edge{From: secondary.ID, To: uc.ID, Kind: EdgeUses})
		}
	}

	if uc.BusinessRequirementCoverage != nil {
		if uc.BusinessRequirementCoverage.Requirement.ID != "" {
			g.AddEdge(Edge{From: uc.ID, To: uc.BusinessRequirementCoverage.Requirement.ID, Kind: EdgeImplements})
		}
		for _, goal := range uc.BusinessRequirementCoverage.Goals {
			if goal.ID != "" {
				g.AddEdge(Edge{From: uc.ID, To: goal.ID, Kind: EdgeImplements})
			}
		}
	}

	for _, rule := range uc.BusinessRules {
		if rule.ID != "" {
			g.AddEdge(Edge{From: uc.ID, To: rule.ID, Kind: EdgeDependsOn})
		}
	}
	for _, policy := range uc.SecurityPolicies {
		if policy.ID != "" {
			g.AddEdge(Edge{From: uc.ID, To: policy.ID, Kind: EdgeDependsOn})
		}
	}

	for _, step := range uc.MainFlow {
		if step.Screen != nil && step.Screen.ID != "" {
			g.AddEdge(Edge{From: uc.ID, To: step.Screen.ID, Kind: EdgeUses})
		}
	}
	for _, alt := range uc.AlternativeFlows {
		for _, step := range alt.Steps {
			if step.Screen != nil && step.Screen.ID != "" {
				g.AddEdge(Edge{From: uc.ID, To: step.Screen.ID, Kind: EdgeUses})
			}
		}
	}
}

// addScreenFlowEdges wires: flow->screen CONTAINS for every screen appearing
// in a transition, usecase->flow USES for the flow's related use case, and a
// TRIGGERS edge per transition between the screens it connects.
// BidirectionalAllowed is set on every TRIGGERS edge: a flow doubling back
// on itself (confirm -> edit -> confirm) is the expected shape of a UI, not
// a design flaw, so cycle detection must not penalize it on its own.
func addScreenFlowEdges(g *Graph, flow *model.ScreenFlow) {
	seen := make(map[string]bool)
	for _, t := range flow.Transitions {
		if t.From.ID != "" && !seen[t.From.ID] {
			seen[t.From.ID] = true
			g.AddEdge(Edge{From: flow.ID, To: t.From.ID, Kind: EdgeContains})
		}
		if t.To.ID != "" && !seen[t.To.ID] {
			seen[t.To.ID] = true
			g.AddEdge(Edge{From: flow.ID, To: t.To.ID, Kind: EdgeContains})
		}
		if t.From.ID != "" && t.To.ID != "" {
			g.AddEdge(Edge{From: t.From.ID, To: t.To.ID, Kind: EdgeTriggers, BidirectionalAllowed: true})
		}
	}

	if flow.RelatedUseCase.ID != "" {
		g.AddEdge(Edge{From: flow.RelatedUseCase.ID, To: flow.ID, Kind: EdgeUses})
	}
}
