package migration

import (
	"errors"

	"gorm.io/gorm"

	"github.com/draftmark/draftmark-backend/internal/domain"
)

// Run executes AutoMigrate for all models and seeds the rows the system
// assumes exist: the default template and the singleton settings row.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.ContentItem{},
		&domain.Revision{},
		&domain.Collaborator{},
		&domain.Site{},
		&domain.Template{},
		&domain.SystemSettings{},
	); err != nil {
		return err
	}

	if err := seedDefaultTemplate(db); err != nil {
		return err
	}
	return seedSettings(db)
}

func seedDefaultTemplate(db *gorm.DB) error {
	var tmpl domain.Template
	err := db.Where("name = ?", domain.DefaultTemplateName).First(&tmpl).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&domain.Template{
		Name:        domain.DefaultTemplateName,
		Description: "Fallback template used when content does not pick one",
	}).Error
}

func seedSettings(db *gorm.DB) error {
	var settings domain.SystemSettings
	err := db.First(&settings, domain.SystemSettingsID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(&domain.SystemSettings{ID: domain.SystemSettingsID}).Error
}
