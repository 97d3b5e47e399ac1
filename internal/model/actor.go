package model

// ActorRole classifies an Actor's relationship to the system under
// specification.
type ActorRole string

const (
	ActorRolePrimary   ActorRole = "primary"
	ActorRoleSecondary ActorRole = "secondary"
	ActorRoleExternal  ActorRole = "external"
)

// Actor represents a human, system, or external party that interacts with
// use cases.
type Actor struct {
	DocumentBase

	Role             ActorRole
	Responsibilities []string
	Goals            []string
}
