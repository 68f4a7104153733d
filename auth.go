package backoffice

import (
	"log"

	"github.com/belreon/backoffice/date"
)

// Realm selects which collection a login is checked against.
type Realm string

const (
	RealmAdmin  Realm = "admin"
	RealmClient Realm = "client"
)

// Login checks the identity and password against the matching
// collection with an exact match. Admin logins additionally require an
// active, non-deleted account; client logins a non-deleted one. On
// success the store's current actor is set. There is no token and no
// expiry: the session is the in-memory pointer, nothing more.
func (s *Store) Login(identity, password string, realm Realm) bool {
	switch realm {
	case RealmAdmin:
		u, found := s.UserByName(identity)
		if found && u.Password == password && u.Status == UserActive && !u.Trashed() {
			s.session = Admin{User: u}
			log.Printf("login realm=admin user=%q", u.Username)
			return true
		}
	case RealmClient:
		c, found := s.ClientByUserID(identity)
		if found && c.Password == password && !c.Trashed() {
			s.session = ClientActor{Client: c}
			log.Printf("login realm=client client=%q", c.UserID)
			return true
		}
	}
	return false
}

// Logout clears the current actor.
func (s *Store) Logout() { s.session = Anonymous{} }

// IsAuthenticated reports whether someone is logged in.
func (s *Store) IsAuthenticated() bool {
	_, anon := s.session.(Anonymous)
	return !anon
}

// RegistrationResult is the structured outcome of a registration
// attempt. Duplicate identities are an expected case, not an error.
type RegistrationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// minPasswordLength is the registration form rule.
const minPasswordLength = 6

// RegisterClient appends a new client with only credentials and email,
// in the New status, stamped with today's date. The record is created
// only when every check passes.
func (s *Store) RegisterClient(userID, email, password string) RegistrationResult {
	if userID == "" || email == "" {
		return RegistrationResult{Message: "User ID and email are required."}
	}
	if len(password) < minPasswordLength {
		return RegistrationResult{Message: "Password must be at least 6 characters."}
	}
	for _, c := range s.clients {
		if c.UserID == userID {
			return RegistrationResult{Message: "User ID already exists."}
		}
	}
	for _, c := range s.clients {
		if c.Email == email {
			return RegistrationResult{Message: "Email already registered."}
		}
	}

	c := Client{
		ID:             maxID(s.clients, clientID) + 1,
		UserID:         userID,
		Password:       password,
		Email:          email,
		ProjectStatus:  StatusNew,
		SubmissionDate: date.Today(),
	}
	s.clients = append(s.clients, c)
	log.Printf("register-client id=%d userId=%q", c.ID, c.UserID)
	return RegistrationResult{Success: true, Message: "Registration successful!"}
}
