package order

// transitionTables maps each role to the status moves it is allowed to
// request. Anything absent from a role's table, including same-state no-ops,
// state skips, and reversals, is illegal for that role.
//
//	restaurant owner: pending -> confirmed -> preparing -> ready
//	delivery driver:  ready -> picked_up -> delivered
//	customer:         pending/confirmed -> cancelled
//
// Admin deliberately holds no table.
func transitionTables() map[Role]map[Status][]Status {
	return map[Role]map[Status][]Status{
		RoleRestaurantOwner: {
			StatusPending:   {StatusConfirmed},
			StatusConfirmed: {StatusPreparing},
			StatusPreparing: {StatusReady},
		},
		RoleDeliveryDriver: {
			StatusReady:    {StatusPickedUp},
			StatusPickedUp: {StatusDelivered},
		},
		RoleCustomer: {
			StatusPending:   {StatusCancelled},
			StatusConfirmed: {StatusCancelled},
		},
	}
}

// CanTransition reports whether the given role may move an order from one
// status to another. It is a pure lookup over the static transition tables
// and carries no side effects; ownership checks (the owner must own the
// order's restaurant, the customer must own the order) are enforced by the
// callers that know the actors.
func CanTransition(role Role, from, to Status) bool {
	targets, ok := transitionTables()[role][from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}
