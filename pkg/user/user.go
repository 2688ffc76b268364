// Package user defines user accounts, their preferences and their roles in
// family trees. Storage is behind the Manager interface; implementations
// live in internal/iouser.
package user

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when an operation needs an existing user.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicate is returned when a user name or email is already taken.
	ErrDuplicate = errors.New("user name or email already exists")

	// ErrBadCredentials is returned by Login for unknown identifiers and
	// wrong passwords alike.
	ErrBadCredentials = errors.New("incorrect user name or password")

	// ErrNotVerified is returned by Login when the email address was not
	// confirmed.
	ErrNotVerified = errors.New("email address is not verified")

	// ErrNotApproved is returned by Login when an administrator has not
	// approved the account yet.
	ErrNotApproved = errors.New("account is not approved")

	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)

// MaxPasswordLength is the largest password in bytes.
const MaxPasswordLength = 72

// VisitorID is the ID of anonymous visitors.
const VisitorID = 0

// TemplateID owns the default blocks copied to every new account.
const TemplateID = -1

// MaxPreferenceLength is the largest number of characters in a stored
// preference value.
const MaxPreferenceLength = 255

// Names of user preferences.
const (
	PrefCanAdmin              = "canadmin"
	PrefVerified              = "verified"
	PrefVerifiedByAdmin       = "verified_by_admin"
	PrefRegTimestamp          = "reg_timestamp"
	PrefSessionTime           = "sessiontime"
	PrefLanguage              = "language"
	PrefContactMethod         = "contactmethod"
	PrefVisibleOnline         = "visibleonline"
	PrefComment               = "comment"
	PrefMaxRelationPathLength = "max_relation_path_length"
	PrefAutoAccept            = "auto_accept"
)

// Names of per-tree user settings.
const (
	TreeGedcomID               = "gedcomid"
	TreeRootID                 = "rootid"
	TreeCanEdit                = "canedit"
	TreeRelationshipPathLength = "RELATIONSHIP_PATH_LENGTH"
)

// User is an account. A User obtained from a Manager carries its
// preferences, loaded on first use.
type User struct {
	ID       int    `json:"id"`
	UserName string `json:"user_name"`
	RealName string `json:"real_name"`
	Email    string `json:"email"`

	mu     sync.Mutex
	prefs  map[string]string
	loaded bool
}

// New creates a user without loaded preferences.
func New(id int, userName, realName, email string) *User {
	return &User{
		ID:       id,
		UserName: userName,
		RealName: realName,
		Email:    email,
	}
}

// Visitor returns the anonymous user. It has no stored preferences.
func Visitor() *User {
	return &User{ID: VisitorID, loaded: true, prefs: map[string]string{}}
}

// IsVisitor is true for anonymous users.
func (u *User) IsVisitor() bool {
	return u == nil || u.ID == VisitorID
}

// Loader fetches all stored preferences of a user.
type Loader func() (map[string]string, error)

// Preference returns the value of the named preference or def when it is
// not set. The first call fills the preference map using load; the
// visitor never calls it.
func (u *User) Preference(name, def string, load Loader) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.loaded {
		prefs := map[string]string{}
		if u.ID != VisitorID && load != nil {
			var err error
			if prefs, err = load(); err != nil {
				return def, err
			}
		}
		u.prefs = prefs
		u.loaded = true
	}

	if v, ok := u.prefs[name]; ok {
		return v, nil
	}
	return def, nil
}

// Remember stores a preference value in memory only. Managers call it
// after persisting the value.
func (u *User) Remember(name, value string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.prefs == nil {
		u.prefs = map[string]string{}
	}
	u.prefs[name] = value
}

// Forget drops the in-memory preference map, so that the next
// Preference call reloads it.
func (u *User) Forget() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.prefs = nil
	u.loaded = false
}

// Truncate cuts s to MaxPreferenceLength characters.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxPreferenceLength {
		return s
	}
	return string(r[:MaxPreferenceLength])
}
