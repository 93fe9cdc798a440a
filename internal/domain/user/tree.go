package user

// GroupSubordinates indexes a flat user list by supervisor id in a single pass.
// Users without a supervisor are not indexed. Children keep input order.
func GroupSubordinates(users []User) map[int64][]User {
	children := make(map[int64][]User)
	for _, u := range users {
		if u.SupervisorID == nil {
			continue
		}
		children[*u.SupervisorID] = append(children[*u.SupervisorID], u)
	}
	return children
}

// AuthorizedReporters returns the users allowed to post reports, each carrying
// their direct subordinates. Only one level is attached.
func AuthorizedReporters(users []User) []User {
	children := GroupSubordinates(users)

	reporters := make([]User, 0)
	for _, u := range users {
		if !u.CanReport {
			continue
		}
		u.Subordinates = children[u.ID]
		reporters = append(reporters, u)
	}
	return reporters
}
