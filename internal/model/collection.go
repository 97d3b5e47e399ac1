package model

import "fmt"

// DuplicateID records a second-or-later occurrence of an id already seen
// within the same kind. The first occurrence always wins and the duplicate is
// kept on Collection.DuplicateIDs rather than aborting the run; no analyzer
// in this module turns these records into issues or recommendations.
type DuplicateID struct {
	Kind Kind
	ID   string
}

// Collection is the immutable, in-memory artifact repository every analyzer
// reads from. It is built once via NewCollection and never mutated
// afterwards (invariant from spec §3.4).
type Collection struct {
	BusinessRequirements []BusinessRequirement
	Actors               []Actor
	UseCases             []UseCase
	Screens              []Screen
	ScreenFlows          []ScreenFlow
	ValidationRules      []ValidationRule

	DuplicateIDs []DuplicateID

	requirementByID map[string]*BusinessRequirement
	actorByID       map[string]*Actor
	useCaseByID     map[string]*UseCase
	screenByID      map[string]*Screen
	screenFlowByID  map[string]*ScreenFlow
	validationByID  map[string]*ValidationRule

	businessGoalByID   map[string]BusinessGoal
	businessRuleByID   map[string]BusinessRule
	securityPolicyByID map[string]SecurityPolicy
}

// NewCollection builds an immutable Collection from authored artifacts. It
// returns an error only for the one construction-fatal condition in the
// spec: a ScreenFlow with no RelatedUseCase (invariant 5). Everything else —
// duplicate ids (kept on DuplicateIDs), dangling Ref ids — is left in place,
// not rejected here.
func NewCollection(
	requirements []BusinessRequirement,
	actors []Actor,
	useCases []UseCase,
	screens []Screen,
	screenFlows []ScreenFlow,
	validationRules []ValidationRule,
) (*Collection, error) {
	for _, f := range screenFlows {
		if f.RelatedUseCase.ID == "" {
			return nil, fmt.Errorf("model: screen flow %q has no relatedUseCase", f.ID)
		}
	}

	c := &Collection{
		BusinessRequirements: requirements,
		Actors:               actors,
		UseCases:             useCases,
		Screens:              screens,
		ScreenFlows:          screenFlows,
		ValidationRules:      validationRules,

		requirementByID:    make(map[string]*BusinessRequirement),
		actorByID:          make(map[string]*Actor),
		useCaseByID:        make(map[string]*UseCase),
		screenByID:         make(map[string]*Screen),
		screenFlowByID:     make(map[string]*ScreenFlow),
		validationByID:     make(map[string]*ValidationRule),
		businessGoalByID:   make(map[string]BusinessGoal),
		businessRuleByID:   make(map[string]BusinessRule),
		securityPolicyByID: make(map[string]SecurityPolicy),
	}

	for i := range c.BusinessRequirements {
		r := &c.BusinessRequirements[i]
		if _, ok := c.requirementByID[r.ID]; ok {
			c.DuplicateIDs = append(c.DuplicateIDs, DuplicateID{Kind: KindBusinessRequirement, ID: r.ID})
		} else {
			c.requirementByID[r.ID] = r
		}
		for _, g := range r.BusinessGoals {
			if _, ok := c.businessGoalByID[g.ID]; !ok {
				c.businessGoalByID[g.ID] = g
			}
		}
		for _, br := range r.BusinessRules {
			if _, ok := c.businessRuleByID[br.ID]; !ok {
				c.businessRuleByID[br.ID] = br
			}
		}
		for _, sp := range r.SecurityPolicies {
			if _, ok := c.securityPolicyByID[sp.ID]; !ok {
				c.securityPolicyByID[sp.ID] = sp
			}
		}
	}

	for i := range c.Actors {
		a := &c.Actors[i]
		if _, ok := c.actorByID[a.ID]; ok {
			c.DuplicateIDs = append(c.DuplicateIDs, DuplicateID{Kind: KindActor, ID: a.ID})
		} else {
			c.actorByID[a.ID] = a
		}
	}

	for i := range c.UseCases {
		u := &c.UseCases[i]
		if _, ok := c.useCaseByID[u.ID]; ok {
			c.DuplicateIDs = append(c.DuplicateIDs, DuplicateID{Kind: KindUseCase, ID: u.ID})
		} else {
			c.useCaseByID[u.ID] = u
		}
	}

	for i := range c.Screens {
		s := &c.Screens[i]
		if _, ok := c.screenByID[s.ID]; ok {
			c.DuplicateIDs = append(c.DuplicateIDs, DuplicateID{Kind: KindScreen, ID: s.ID})
		} else {
			c.screenByID[s.ID] = s
		}
	}

	for i := range c.ScreenFlows {
		f := &c.ScreenFlows[i]
		if _, ok := c.screenFlowByID[f.ID]; ok {
			c.DuplicateIDs = append(c.DuplicateIDs, DuplicateID{Kind: KindScreenFlow, ID: f.ID})
		} else {
			c.screenFlowByID[f.ID] = f
		}
	}

	for i := range c.ValidationRules {
		v := &c.ValidationRules[i]
		if _, ok := c.validationByID[v.ID]; ok {
			c.DuplicateIDs = append(c.DuplicateIDs, DuplicateID{Kind: KindValidationRule, ID: v.ID})
		} else {
			c.validationByID[v.ID] = v
		}
	}

	return c, nil
}

func (c *Collection) BusinessRequirementByID(id string) (*BusinessRequirement, bool) {
	r, ok := c.requirementByID[id]
	return r, ok
}

func (c *Collection) ActorByID(id string) (*Actor, bool) {
	a, ok := c.actorByID[id]
	return a, ok
}

func (c *Collection) UseCaseByID(id string) (*UseCase, bool) {
	u, ok := c.useCaseByID[id]
	return u, ok
}

func (c *Collection) ScreenByID(id string) (*Screen, bool) {
	s, ok := c.screenByID[id]
	return s, ok
}

func (c *Collection) ScreenFlowByID(id string) (*ScreenFlow, bool) {
	f, ok := c.screenFlowByID[id]
	return f, ok
}

func (c *Collection) ValidationRuleByID(id string) (*ValidationRule, bool) {
	v, ok := c.validationByID[id]
	return v, ok
}

func (c *Collection) BusinessGoalByID(id string) (BusinessGoal, bool) {
	g, ok := c.businessGoalByID[id]
	return g, ok
}

func (c *Collection) BusinessRuleByID(id string) (BusinessRule, bool) {
	r, ok := c.businessRuleByID[id]
	return r, ok
}

func (c *Collection) SecurityPolicyByID(id string) (SecurityPolicy, bool) {
	p, ok := c.securityPolicyByID[id]
	return p, ok
}

// ScreenFlowForUseCase returns the screen flow whose RelatedUseCase.ID
// matches useCaseID, if any.
func (c *Collection) ScreenFlowForUseCase(useCaseID string) (*ScreenFlow, bool) {
	for i := range c.ScreenFlows {
		if c.ScreenFlows[i].RelatedUseCase.ID == useCaseID {
			return &c.ScreenFlows[i], true
		}
	}
	return nil, false
}
