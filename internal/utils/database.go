package utils

import (
	"lumetric/internal/constants"
	"lumetric/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func InitDatabase(dbPath string) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = "lumetric.db"
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.Post{},
		&models.Setting{},
		&models.AuthorApplication{},
		&models.Lead{},
		&models.NewsletterSubscriber{},
	)
	if err != nil {
		return nil, err
	}

	if err := seedSettings(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedSettings populates the database with default settings if they don't exist.
func seedSettings(db *gorm.DB) error {
	defaultSettings := map[string]string{
		constants.SettingPassword:        "admin123",
		constants.SettingSiteName:        "LUMETRIC",
		constants.SettingSiteTagline:     "Estratégias de dominação de mercado, entregues sem filtro.",
		constants.SettingBaseURL:         "http://localhost:37371",
		constants.SettingNewBadgeDays:    "7",
		constants.SettingDefaultCoverURL: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80&w=800",
	}

	for key, value := range defaultSettings {
		setting := models.Setting{Key: key}
		result := db.FirstOrCreate(&setting, models.Setting{Key: key})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			// Only set the value if the record was just created
			setting.Value = value
			db.Save(&setting)
		}
	}

	return nil
}
