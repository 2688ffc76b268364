// Package roster reads the YAML file used to create many users at once.
//
// A roster file has a single `users` list. See templates/users.yaml for
// an annotated example, which GenerateExample writes to disk.
package roster

import (
	_ "embed"
	"fmt"
	"net/mail"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gnames/gnkin/pkg/user"
	"gopkg.in/yaml.v3"
)

//go:embed templates/users.yaml
var exampleTemplate string

// MaxUserNameLength is the largest number of characters in a user name.
const MaxUserNameLength = 32

// Roster is the content of a users file.
type Roster struct {
	Users []Entry `yaml:"users"`
}

// Entry describes one user to create.
type Entry struct {
	UserName string `yaml:"user_name"`
	RealName string `yaml:"real_name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`

	// Admin grants site administration.
	Admin bool `yaml:"admin,omitempty"`

	// Verified marks the email as confirmed and the account as approved.
	// Nil means true.
	Verified *bool `yaml:"verified,omitempty"`

	// Language is the preferred language tag.
	Language string `yaml:"language,omitempty"`
}

// IsVerified reports whether the account can log in right away.
func (e Entry) IsVerified() bool {
	return e.Verified == nil || *e.Verified
}

// Load reads and validates a roster file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates roster YAML.
func Parse(data []byte) (*Roster, error) {
	var res Roster
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

// Validate trims every entry and checks required fields. User names and
// emails must be unique within the roster, case-insensitively.
func (r *Roster) Validate() error {
	if len(r.Users) == 0 {
		return fmt.Errorf("no users specified in users file")
	}

	names := make(map[string]int)
	emails := make(map[string]int)
	for i := range r.Users {
		e := &r.Users[i]
		if err := e.Validate(); err != nil {
			return fmt.Errorf("user %d: %w", i+1, err)
		}

		key := strings.ToLower(e.UserName)
		if j, ok := names[key]; ok {
			return fmt.Errorf("user %d: user_name '%s' repeats user %d",
				i+1, e.UserName, j)
		}
		names[key] = i + 1

		key = strings.ToLower(e.Email)
		if j, ok := emails[key]; ok {
			return fmt.Errorf("user %d: email '%s' repeats user %d",
				i+1, e.Email, j)
		}
		emails[key] = i + 1
	}
	return nil
}

// Validate checks a single entry.
func (e *Entry) Validate() error {
	e.UserName = strings.TrimSpace(e.UserName)
	e.RealName = strings.TrimSpace(e.RealName)
	e.Email = strings.TrimSpace(e.Email)
	e.Language = strings.TrimSpace(e.Language)

	if e.UserName == "" {
		return fmt.Errorf("user_name is required")
	}
	if utf8.RuneCountInString(e.UserName) > MaxUserNameLength {
		return fmt.Errorf("user_name '%s' is longer than %d characters",
			e.UserName, MaxUserNameLength)
	}
	if e.RealName == "" {
		return fmt.Errorf("real_name is required for '%s'", e.UserName)
	}
	if e.Email == "" {
		return fmt.Errorf("email is required for '%s'", e.UserName)
	}
	if addr, err := mail.ParseAddress(e.Email); err != nil || addr.Address != e.Email {
		return fmt.Errorf("invalid email '%s' for '%s'", e.Email, e.UserName)
	}
	if e.Password == "" {
		return fmt.Errorf("password is required for '%s'", e.UserName)
	}
	if len(e.Password) > user.MaxPasswordLength {
		return fmt.Errorf("%w for '%s'", user.ErrPasswordTooLong, e.UserName)
	}
	return nil
}

// Example returns the annotated example roster.
func Example() string {
	return exampleTemplate
}

// GenerateExample writes the example roster to path. It refuses to
// overwrite an existing file.
func GenerateExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("users file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(exampleTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write example users file: %w", err)
	}
	return nil
}
