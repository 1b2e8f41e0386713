package domain

// Operation is one of the five resource operations.
type Operation string

const (
	OpList     Operation = "list"
	OpRetrieve Operation = "retrieve"
	OpCreate   Operation = "create"
	OpUpdate   Operation = "update"
	OpDelete   Operation = "delete"
)

// Operations lists every resource operation in a stable order.
var Operations = []Operation{OpList, OpRetrieve, OpCreate, OpUpdate, OpDelete}

// Access is the requirement an operation places on the actor.
type Access int

const (
	// AccessAuthenticated is the zero value so an operation missing from a
	// policy table is never public by accident.
	AccessAuthenticated Access = iota
	AccessPublic
)

// ResourcePolicy maps each operation of a resource to its access requirement.
type ResourcePolicy map[Operation]Access

// Allows reports whether actor may perform op under this policy.
func (p ResourcePolicy) Allows(op Operation, actor Actor) bool {
	if p[op] == AccessPublic {
		return true
	}
	return actor.Authenticated()
}

// Authorize returns ErrUnauthenticated when actor may not perform op.
func (p ResourcePolicy) Authorize(op Operation, actor Actor) error {
	if !p.Allows(op, actor) {
		return ErrUnauthenticated
	}
	return nil
}

// SkillPolicy: anyone may read the catalog, only authenticated users write it.
var SkillPolicy = ResourcePolicy{
	OpList:     AccessPublic,
	OpRetrieve: AccessPublic,
	OpCreate:   AccessAuthenticated,
	OpUpdate:   AccessAuthenticated,
	OpDelete:   AccessAuthenticated,
}

// MessagePolicy: every operation requires an authenticated user.
var MessagePolicy = ResourcePolicy{
	OpList:     AccessAuthenticated,
	OpRetrieve: AccessAuthenticated,
	OpCreate:   AccessAuthenticated,
	OpUpdate:   AccessAuthenticated,
	OpDelete:   AccessAuthenticated,
}
