// Package tree defines family trees as containers of per-tree settings
// and per-user roles. Storage lives in internal/iotree.
package tree

import (
	"context"
	"errors"
	"regexp"
)

var (
	// ErrNotFound is returned when an operation needs an existing tree.
	ErrNotFound = errors.New("tree not found")

	// ErrDuplicate is returned when a tree name is already taken.
	ErrDuplicate = errors.New("tree name already exists")

	// ErrInvalidName is returned for names that cannot be used in URLs.
	ErrInvalidName = errors.New("invalid tree name")
)

// Names of tree settings.
const (
	SettingSurnameTradition = "SURNAME_TRADITION"
	SettingLanguage         = "LANGUAGE"
	SettingContactUserID    = "CONTACT_USER_ID"
	SettingWebmasterUserID  = "WEBMASTER_USER_ID"
	SettingRelationshipPath = "RELATIONSHIP_PATH_LENGTH"
)

var reName = regexp.MustCompile(`^[\p{L}\p{N}_.-]{1,255}$`)

// ValidName reports whether name can identify a tree in URLs.
func ValidName(name string) bool {
	return reName.MatchString(name)
}

// Tree is a family tree.
type Tree struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	UUID  string `json:"uuid"`
}

// Manager stores trees and their settings. Lookups return nil, nil when
// the tree does not exist.
type Manager interface {
	// Create adds a tree. Its UUID is derived from the name, so the same
	// name always gets the same UUID.
	Create(ctx context.Context, name, title string) (*Tree, error)

	// CreateWithSettings adds a tree together with its initial settings.
	// Either all of them are stored or none.
	CreateWithSettings(ctx context.Context, name, title string, settings map[string]string) (*Tree, error)

	// All returns every tree ordered by title.
	All(ctx context.Context) ([]*Tree, error)

	Find(ctx context.Context, id int) (*Tree, error)
	FindByName(ctx context.Context, name string) (*Tree, error)

	// Setting returns a setting of the tree or def.
	Setting(ctx context.Context, treeID int, name, def string) (string, error)

	// SetSetting stores a setting. An empty value removes it.
	SetSetting(ctx context.Context, treeID int, name, value string) error

	// Tradition returns the surname tradition key of the tree,
	// "paternal" when none is set.
	Tradition(ctx context.Context, treeID int) (string, error)
}
