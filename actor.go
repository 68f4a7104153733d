package backoffice

// Actor identifies who is performing a mutation. It is a closed union:
// an admin user, a logged-in client, or nobody. Attribution for the
// trash view (deletedBy) is total over the union, there is no shape
// probing of the current user.
type Actor interface {
	// DisplayName is the name recorded as deletedBy on soft deletes.
	DisplayName() string
	isActor()
}

// Admin is a back-office user acting through the dashboard.
type Admin struct{ User User }

func (a Admin) DisplayName() string { return a.User.Username }
func (Admin) isActor()              {}

// ClientActor is a registered client acting through the client portal.
type ClientActor struct{ Client Client }

func (c ClientActor) DisplayName() string {
	if c.Client.ContactPerson != "" {
		return c.Client.ContactPerson
	}
	return c.Client.UserID
}
func (ClientActor) isActor() {}

// Anonymous is the absence of an identified actor.
type Anonymous struct{}

func (Anonymous) DisplayName() string { return "System" }
func (Anonymous) isActor()            {}
