package domain

// RoleAssignment binds one role to the contract discovered for it.
type RoleAssignment struct {
	Role        string
	Address     string
	DefaultName string
	ABI         ABI
}

// Assignment maps roles to their discovered contracts. Roles that found no
// candidate are simply absent; partial discovery is a normal outcome.
type Assignment struct {
	order  []string
	byRole map[string]*RoleAssignment
}

// Get returns the assignment for a role, if any.
func (a *Assignment) Get(role string) (*RoleAssignment, bool) {
	ra, ok := a.byRole[role]
	return ra, ok
}

// Roles returns the assigned role names in assignment order.
func (a *Assignment) Roles() []string {
	return a.order
}

// Len returns the number of assigned roles.
func (a *Assignment) Len() int {
	return len(a.order)
}

// ResolveAssignment greedily assigns at most one pool entry per role.
//
// Roles are visited in declaration order, pool entries in insertion order.
// The first pool entry whose ABI satisfies the role claims it and is removed
// from further consideration: an address fills at most one role. There is no
// backtracking; once claimed, a choice is final even if a later role would
// have preferred that candidate. Downstream tooling depends on exactly this
// deterministic greedy behavior.
func ResolveAssignment(roles []RoleSpec, pool *Pool) *Assignment {
	assignment := &Assignment{byRole: make(map[string]*RoleAssignment)}
	consumed := make(map[string]bool)

	for _, role := range roles {
		for _, key := range pool.Keys() {
			if consumed[key] {
				continue
			}
			abi, _ := pool.Get(key)
			if !abi.SatisfiesRole(role) {
				continue
			}
			consumed[key] = true
			assignment.order = append(assignment.order, role.Name)
			assignment.byRole[role.Name] = &RoleAssignment{
				Role:        role.Name,
				Address:     key,
				DefaultName: role.DefaultName,
				ABI:         abi,
			}
			break
		}
	}

	return assignment
}
