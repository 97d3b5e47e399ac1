package model

import "time"

// Metadata is a free-form attribute bag plus the standard creation/update
// stamps every artifact may optionally carry.
type Metadata struct {
	Attributes map[string]string
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
}

// DocumentBase is the shape shared by every artifact kind: a kind-scoped
// unique ID, a display name, an optional description, optional metadata,
// and an optional discriminator. The discriminator is a string-constant
// convention rather than a Go type switch, since it is the natural key
// artifacts are authored and partitioned by (see Kind constants below).
type DocumentBase struct {
	ID          string
	Name        string
	Description string
	Metadata    *Metadata
	Kind        Kind
}

// Kind is the artifact discriminator, equivalent to the source's "type" tag.
type Kind string

const (
	KindBusinessRequirement Kind = "business-requirement"
	KindActor               Kind = "actor"
	KindUseCase             Kind = "usecase"
	KindScreen              Kind = "screen"
	KindScreenFlow          Kind = "screen-flow"
	KindValidationRule      Kind = "validation-rule"
)

// Item is a simple sub-item of a BusinessRequirement (a goal, an in/out of
// scope entry, a stakeholder, a success metric, an assumption, or a
// constraint): it carries its own id and description but never participates
// in cross-artifact Ref resolution the way BusinessRule/SecurityPolicy do.
type Item struct {
	ID          string
	Description string
}
