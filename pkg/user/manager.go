package user

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
)

// Filter selects one of the predefined user lists.
type Filter string

const (
	FilterAll            Filter = "all"
	FilterAdministrators Filter = "administrators"
	FilterManagers       Filter = "managers"
	FilterModerators     Filter = "moderators"
	FilterUnapproved     Filter = "unapproved"
	FilterUnverified     Filter = "unverified"
	FilterLoggedIn       Filter = "logged-in"
)

// ErrUnknownFilter is returned by List for filters not listed by Filters.
var ErrUnknownFilter = errors.New("unknown user filter")

// ParseFilter converts s to a Filter. An empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(s)
	if slices.Contains(Filters(), f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFilter, s)
}

// Filters returns all user list filters.
func Filters() []Filter {
	return []Filter{
		FilterAll, FilterAdministrators, FilterManagers, FilterModerators,
		FilterUnapproved, FilterUnverified, FilterLoggedIn,
	}
}

// Session is an authenticated session created by Login.
type Session struct {
	Token     string    `json:"token"`
	UserID    int       `json:"user_id"`
	IPAddress string    `json:"-"`
	LastSeen  time.Time `json:"last_seen"`
}

// Manager stores and retrieves users. Lookups return nil, nil when the
// user does not exist. Every write keeps the identity cache and the
// in-memory user consistent.
type Manager interface {
	// Create adds a user with a hashed password and copies the default
	// blocks to it.
	Create(ctx context.Context, userName, realName, email, password string) (*User, error)

	// CreateActive adds a verified and approved user with initial
	// preferences. The row, its blocks and the preferences are stored in
	// one transaction.
	CreateActive(ctx context.Context, userName, realName, email, password string, prefs map[string]string) (*User, error)

	// Register creates a self-registered user that still has to verify
	// the email address and be approved by an administrator.
	Register(ctx context.Context, userName, realName, email, password, language string) (*User, error)

	// Delete removes the user and everything owned by it. Edits made by
	// the user are reassigned to actingUserID; logs are kept.
	Delete(ctx context.Context, u *User, actingUserID int) error

	Find(ctx context.Context, id int) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByIdentifier finds a user by user name or, failing that, by
	// email.
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)

	// FindByIndividual finds the user linked to an individual of a tree.
	FindByIndividual(ctx context.Context, treeID int, xref string) (*User, error)
	FindByUserName(ctx context.Context, userName string) (*User, error)

	// FindLatestToRegister returns the most recently registered user.
	FindLatestToRegister(ctx context.Context) (*User, error)

	// List returns the users selected by f, ordered by real name.
	List(ctx context.Context, f Filter) ([]*User, error)
	All(ctx context.Context) ([]*User, error)
	Administrators(ctx context.Context) ([]*User, error)
	Managers(ctx context.Context) ([]*User, error)
	Moderators(ctx context.Context) ([]*User, error)
	Unapproved(ctx context.Context) ([]*User, error)
	Unverified(ctx context.Context) ([]*User, error)
	AllLoggedIn(ctx context.Context) ([]*User, error)

	// CheckPassword verifies the password and upgrades the stored hash
	// when the configured cost changed.
	CheckPassword(ctx context.Context, u *User, password string) (bool, error)

	SetUserName(ctx context.Context, u *User, userName string) error
	SetRealName(ctx context.Context, u *User, realName string) error
	SetEmail(ctx context.Context, u *User, email string) error
	SetPassword(ctx context.Context, u *User, password string) error

	// Preference returns a preference of u, or def when it is not set.
	Preference(ctx context.Context, u *User, name, def string) (string, error)

	// SetPreference stores a preference of u. Values longer than
	// MaxPreferenceLength characters are truncated.
	SetPreference(ctx context.Context, u *User, name, value string) error

	TreeSetting(ctx context.Context, u *User, treeID int, name, def string) (string, error)
	SetTreeSetting(ctx context.Context, u *User, treeID int, name, value string) error

	// Role returns the role of u in a tree. Administrators are managers
	// of every tree.
	Role(ctx context.Context, u *User, treeID int) (Role, error)
	IsAdmin(ctx context.Context, u *User) (bool, error)

	Approve(ctx context.Context, u *User) error
	Verify(ctx context.Context, u *User) error

	// Login checks credentials and opens a session.
	Login(ctx context.Context, identifier, password, ip string) (*Session, *User, error)
	Logout(ctx context.Context, token string) error

	// FindBySession returns the user of a live session and refreshes it.
	FindBySession(ctx context.Context, token string) (*User, error)

	// PurgeSessions deletes sessions idle for longer than olderThan.
	PurgeSessions(ctx context.Context, olderThan time.Duration) (int64, error)

	// Close releases the identity cache.
	Close()
}
