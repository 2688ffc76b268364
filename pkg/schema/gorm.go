package schema

import (
	"gorm.io/gorm"
)

// TemplateUserID owns the blocks copied to every new account.
const TemplateUserID = -1

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&User{},
		&UserSetting{},
		&Tree{},
		&TreeSetting{},
		&UserTreeSetting{},
		&Block{},
		&BlockSetting{},
		&Log{},
		&Change{},
		&Message{},
		&Session{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// DefaultBlocks returns the home-page blocks owned by the template
// account. New users receive a copy of them.
func DefaultBlocks() []Block {
	uid := TemplateUserID
	return []Block{
		{UserID: &uid, Location: BlockMain, BlockOrder: 1, ModuleName: "todays_events"},
		{UserID: &uid, Location: BlockMain, BlockOrder: 2, ModuleName: "user_messages"},
		{UserID: &uid, Location: BlockMain, BlockOrder: 3, ModuleName: "user_favorites"},
		{UserID: &uid, Location: BlockSide, BlockOrder: 1, ModuleName: "user_welcome"},
		{UserID: &uid, Location: BlockSide, BlockOrder: 2, ModuleName: "random_media"},
		{UserID: &uid, Location: BlockSide, BlockOrder: 3, ModuleName: "upcoming_events"},
		{UserID: &uid, Location: BlockSide, BlockOrder: 4, ModuleName: "logged_in"},
	}
}

// TemplateUser is the account that owns default settings. It can never
// log in: its password is not a valid hash.
func TemplateUser() User {
	return User{
		ID:       TemplateUserID,
		UserName: "DEFAULT_USER",
		RealName: "DEFAULT_USER",
		Email:    "DEFAULT_USER",
		Password: "DEFAULT_USER",
	}
}

// Seed inserts the template account and its default blocks unless they
// are already there.
func Seed(db *gorm.DB) error {
	tmpl := TemplateUser()
	err := db.Where("user_id = ?", TemplateUserID).FirstOrCreate(&tmpl).Error
	if err != nil {
		return err
	}

	var count int64
	err = db.Model(&Block{}).
		Where("user_id = ?", TemplateUserID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	blocks := DefaultBlocks()
	return db.Create(&blocks).Error
}
