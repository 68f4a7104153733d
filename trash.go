package backoffice

import (
	"fmt"
	"log"
)

// lifecycleTable maps every trashable kind to its lifecycle operations.
// The trash view dispatches through this table instead of switching on
// kind strings in three places.
var lifecycleTable = map[Kind]lifecycleOps{
	KindClient: {
		del: func(s *Store, id int, by string) error {
			return markRecord(s.clients, id, clientID, by)
		},
		restore: func(s *Store, id int) error {
			return clearRecord(s.clients, id, clientID)
		},
		purge: func(s *Store, id int) error {
			var ok bool
			s.clients, ok = spliceByID(s.clients, id, clientID)
			return purged(ok, KindClient, id)
		},
	},
	KindUser: {
		del: func(s *Store, id int, by string) error {
			u, found := s.User(id)
			if !found {
				return fmt.Errorf("unknown user %d", id)
			}
			if u.Role == RolePrimaryAdmin {
				return fmt.Errorf("user %q is the primary admin and cannot be deleted", u.Username)
			}
			return markRecord(s.users, id, userID, by)
		},
		restore: func(s *Store, id int) error {
			return clearRecord(s.users, id, userID)
		},
		purge: func(s *Store, id int) error {
			var ok bool
			s.users, ok = spliceByID(s.users, id, userID)
			return purged(ok, KindUser, id)
		},
	},
	KindStock: {
		del: func(s *Store, id int, by string) error {
			return markRecord(s.stocks, id, stockID, by)
		},
		restore: func(s *Store, id int) error {
			return clearRecord(s.stocks, id, stockID)
		},
		purge: func(s *Store, id int) error {
			var ok bool
			s.stocks, ok = spliceByID(s.stocks, id, stockID)
			return purged(ok, KindStock, id)
		},
	},
	KindNews: {
		del: func(s *Store, id int, by string) error {
			return markRecord(s.news, id, newsID, by)
		},
		restore: func(s *Store, id int) error {
			return clearRecord(s.news, id, newsID)
		},
		purge: func(s *Store, id int) error {
			var ok bool
			s.news, ok = spliceByID(s.news, id, newsID)
			return purged(ok, KindNews, id)
		},
	},
	KindTransaction: {
		del: func(s *Store, id int, by string) error {
			return markRecord(s.cashbook, id, cashID, by)
		},
		restore: func(s *Store, id int) error {
			return clearRecord(s.cashbook, id, cashID)
		},
		purge: func(s *Store, id int) error {
			var ok bool
			s.cashbook, ok = spliceByID(s.cashbook, id, cashID)
			return purged(ok, KindTransaction, id)
		},
	},
	KindFeature: {
		del: func(s *Store, id int, by string) error {
			return markRecord(s.aboutUs.Features, id, featureID, by)
		},
		restore: func(s *Store, id int) error {
			return clearRecord(s.aboutUs.Features, id, featureID)
		},
		purge: func(s *Store, id int) error {
			var ok bool
			s.aboutUs.Features, ok = spliceByID(s.aboutUs.Features, id, featureID)
			return purged(ok, KindFeature, id)
		},
	},
}

// id accessors for the dispatch table.
func clientID(c Client) int           { return c.ID }
func userID(u User) int               { return u.ID }
func stockID(st Stock) int            { return st.ID }
func newsID(n NewsItem) int           { return n.ID }
func cashID(t CashTransaction) int    { return t.ID }
func featureID(f AboutUsFeature) int  { return f.ID }

// markRecord soft-deletes the record with the given id.
func markRecord[T any](items []T, id int, idOf func(T) int, by string) error {
	type trashable interface{ markDeleted(string) }
	ok := findByID(items, id, idOf, func(t *T) {
		any(t).(trashable).markDeleted(by)
	})
	if !ok {
		return fmt.Errorf("no record with id %d", id)
	}
	return nil
}

// clearRecord restores the record with the given id to the active state.
func clearRecord[T any](items []T, id int, idOf func(T) int) error {
	type trashable interface{ clear() }
	ok := findByID(items, id, idOf, func(t *T) {
		any(t).(trashable).clear()
	})
	if !ok {
		return fmt.Errorf("no record with id %d", id)
	}
	return nil
}

func purged(ok bool, kind Kind, id int) error {
	if !ok {
		return fmt.Errorf("no %s with id %d", kind, id)
	}
	log.Printf("purge kind=%s id=%d", kind, id)
	return nil
}

// Delete moves the record of the given kind to the trash, attributed
// to the current actor. Primary admin users never enter the trash.
func (s *Store) Delete(kind Kind, id int) error {
	ops, ok := lifecycleTable[kind]
	if !ok {
		return fmt.Errorf("unknown record kind: %q", kind)
	}
	return ops.del(s, id, s.session.DisplayName())
}

// Restore returns the record of the given kind to the active state,
// with no deletedBy left behind.
func (s *Store) Restore(kind Kind, id int) error {
	ops, ok := lifecycleTable[kind]
	if !ok {
		return fmt.Errorf("unknown record kind: %q", kind)
	}
	return ops.restore(s, id)
}

// Purge permanently removes the record of the given kind from its
// collection. There is no way back.
func (s *Store) Purge(kind Kind, id int) error {
	ops, ok := lifecycleTable[kind]
	if !ok {
		return fmt.Errorf("unknown record kind: %q", kind)
	}
	return ops.purge(s, id)
}
