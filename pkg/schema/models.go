// Package schema provides database schema models for gnkin.
// Models are plain structs with GORM tags; the same definitions serve
// PostgreSQL and SQLite.
package schema

import (
	"time"
)

// User is an account of a person who can log in.
type User struct {
	// ID is the primary key. Real accounts have positive IDs.
	// 0 is reserved for visitors, -1 for the template account that owns
	// default blocks.
	ID int `gorm:"column:user_id;primaryKey;autoIncrement"`

	// UserName is the login name.
	UserName string `gorm:"column:user_name;size:32;not null;uniqueIndex"`

	// RealName is the display name.
	RealName string `gorm:"column:real_name;size:64;not null;index"`

	// Email is the contact address; it can also be used to log in.
	Email string `gorm:"column:email;size:64;not null;uniqueIndex"`

	// Password is a bcrypt hash.
	Password string `gorm:"column:password;size:128;not null"`
}

func (User) TableName() string {
	return "users"
}

// UserSetting is a key/value preference of a user.
type UserSetting struct {
	UserID       int    `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	SettingName  string `gorm:"column:setting_name;size:32;primaryKey"`
	SettingValue string `gorm:"column:setting_value;size:255;not null"`
}

func (UserSetting) TableName() string {
	return "user_settings"
}

// Tree is a family tree (a GEDCOM file).
type Tree struct {
	ID int `gorm:"column:tree_id;primaryKey;autoIncrement"`

	// Name is the unique short name of the tree, used in URLs.
	Name string `gorm:"column:tree_name;size:255;not null;uniqueIndex"`

	// Title is the human-readable title.
	Title string `gorm:"column:title;size:255;not null"`

	// UUID is a UUID v5 generated from Name.
	UUID string `gorm:"column:uuid;size:36;not null"`
}

func (Tree) TableName() string {
	return "trees"
}

// TreeSetting is a key/value setting of a tree.
type TreeSetting struct {
	TreeID       int    `gorm:"column:tree_id;primaryKey;autoIncrement:false"`
	SettingName  string `gorm:"column:setting_name;size:32;primaryKey"`
	SettingValue string `gorm:"column:setting_value;type:text;not null"`
}

func (TreeSetting) TableName() string {
	return "tree_settings"
}

// UserTreeSetting is a key/value setting of a user in a specific tree,
// for example the user's role (canedit) or linked individual (gedcomid).
type UserTreeSetting struct {
	UserID       int    `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	TreeID       int    `gorm:"column:tree_id;primaryKey;autoIncrement:false;index:idx_user_tree_settings_lookup,priority:1"`
	SettingName  string `gorm:"column:setting_name;size:32;primaryKey;index:idx_user_tree_settings_lookup,priority:2"`
	SettingValue string `gorm:"column:setting_value;size:255;not null;index:idx_user_tree_settings_lookup,priority:3"`
}

func (UserTreeSetting) TableName() string {
	return "user_tree_settings"
}

// Block is a module placed on a home page (of a user or a tree).
type Block struct {
	ID         int    `gorm:"column:block_id;primaryKey;autoIncrement"`
	TreeID     *int   `gorm:"column:tree_id;index"`
	UserID     *int   `gorm:"column:user_id;index"`
	XRef       string `gorm:"column:xref;size:20"`
	Location   string `gorm:"column:location;size:4"`
	BlockOrder int    `gorm:"column:block_order;not null"`
	ModuleName string `gorm:"column:module_name;size:32;not null"`
}

func (Block) TableName() string {
	return "blocks"
}

// BlockSetting is a key/value setting of a block.
type BlockSetting struct {
	BlockID      int    `gorm:"column:block_id;primaryKey;autoIncrement:false"`
	SettingName  string `gorm:"column:setting_name;size:32;primaryKey"`
	SettingValue string `gorm:"column:setting_value;type:text;not null"`
}

func (BlockSetting) TableName() string {
	return "block_settings"
}

// Log is an entry of the site's activity log.
type Log struct {
	ID         int       `gorm:"column:log_id;primaryKey;autoIncrement"`
	LogTime    time.Time `gorm:"column:log_time;not null;index"`
	LogType    string    `gorm:"column:log_type;size:10;not null;index"`
	LogMessage string    `gorm:"column:log_message;type:text;not null"`
	IPAddress  string    `gorm:"column:ip_address;size:45;not null"`
	UserID     *int      `gorm:"column:user_id;index"`
	TreeID     *int      `gorm:"column:tree_id;index"`
}

func (Log) TableName() string {
	return "logs"
}

// Change is a pending, accepted or rejected edit of a genealogy record.
type Change struct {
	ID         int       `gorm:"column:change_id;primaryKey;autoIncrement"`
	ChangeTime time.Time `gorm:"column:change_time;not null"`
	Status     string    `gorm:"column:status;size:10;not null;index"`
	TreeID     int       `gorm:"column:tree_id;not null;index"`
	XRef       string    `gorm:"column:xref;size:20;not null"`
	OldGedcom  string    `gorm:"column:old_gedcom;type:text;not null"`
	NewGedcom  string    `gorm:"column:new_gedcom;type:text;not null"`
	UserID     int       `gorm:"column:user_id;not null;index"`
}

func (Change) TableName() string {
	return "changes"
}

// Message is a message sent to a user.
type Message struct {
	ID        int       `gorm:"column:message_id;primaryKey;autoIncrement"`
	Sender    string    `gorm:"column:sender;size:64;not null"`
	IPAddress string    `gorm:"column:ip_address;size:45;not null"`
	UserID    int       `gorm:"column:user_id;not null;index"`
	Subject   string    `gorm:"column:subject;size:255;not null"`
	Body      string    `gorm:"column:body;type:text;not null"`
	Created   time.Time `gorm:"column:created;not null"`
}

func (Message) TableName() string {
	return "messages"
}

// Session is a logged-in session. A user is "online" while they have one.
type Session struct {
	ID          string    `gorm:"column:session_id;size:36;primaryKey"`
	SessionTime time.Time `gorm:"column:session_time;not null;index"`
	UserID      int       `gorm:"column:user_id;not null;index"`
	IPAddress   string    `gorm:"column:ip_address;size:45;not null"`
}

func (Session) TableName() string {
	return "sessions"
}

// Log types.
const (
	LogAuth   = "auth"
	LogConfig = "config"
	LogEdit   = "edit"
	LogError  = "error"
)

// Change statuses.
const (
	ChangePending  = "pending"
	ChangeAccepted = "accepted"
	ChangeRejected = "rejected"
)

// Block locations.
const (
	BlockMain = "main"
	BlockSide = "side"
)
