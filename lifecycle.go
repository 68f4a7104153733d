package backoffice

import "fmt"

// Deletion is the soft-delete state embedded in every record kind.
// A record is Active (zero value), Trashed (IsDeleted with an actor
// name), or gone entirely once purged from its collection.
type Deletion struct {
	IsDeleted bool   `json:"isDeleted,omitempty"`
	DeletedBy string `json:"deletedBy,omitempty"`
}

// Trashed reports whether the record is in the trash.
func (d Deletion) Trashed() bool { return d.IsDeleted }

// markDeleted moves the record to the trash, attributed to by.
// Deleting an already trashed record just re-stamps the actor.
func (d *Deletion) markDeleted(by string) {
	d.IsDeleted = true
	d.DeletedBy = by
}

// clear returns the record to the active state. The attribution is
// removed entirely so a restored record carries no stale deletedBy.
func (d *Deletion) clear() {
	d.IsDeleted = false
	d.DeletedBy = ""
}

// Kind names a trashable record kind. It keys the lifecycle dispatch
// table so the trash operations stay uniform across collections.
type Kind string

const (
	KindClient      Kind = "client"
	KindUser        Kind = "user"
	KindStock       Kind = "stock"
	KindNews        Kind = "news"
	KindTransaction Kind = "transaction"
	KindFeature     Kind = "feature"
)

// Kinds lists every trashable kind in display order.
func Kinds() []Kind {
	return []Kind{KindClient, KindUser, KindStock, KindNews, KindTransaction, KindFeature}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindClient, KindUser, KindStock, KindNews, KindTransaction, KindFeature:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown record kind: %q", s)
	}
}

// Section returns the admin section that owns records of this kind,
// used to gate trash sub-sections with the same predicate as the
// navigation menu.
func (k Kind) Section() Section {
	switch k {
	case KindClient:
		return SectionClients
	case KindUser:
		return SectionUsers
	case KindStock, KindFeature:
		return SectionAppModify
	case KindNews:
		return SectionNews
	case KindTransaction:
		return SectionTransactions
	default:
		return SectionDashboard
	}
}

// lifecycleOps is one row of the dispatch table: the delete, restore
// and purge operations for a record kind. Adding a kind is a table
// edit in lifecycleTable, not a branch added to three switches.
type lifecycleOps struct {
	del     func(s *Store, id int, by string) error
	restore func(s *Store, id int) error
	purge   func(s *Store, id int) error
}
