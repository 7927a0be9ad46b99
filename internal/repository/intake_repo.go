package repository

import (
	"lumetric/internal/models"

	"gorm.io/gorm"
)

// IntakeRepository covers the write-once collections: author applications,
// consultation leads and newsletter subscribers.
type IntakeRepository struct {
	db *gorm.DB
}

func NewIntakeRepository(db *gorm.DB) *IntakeRepository {
	return &IntakeRepository{db: db}
}

func (r *IntakeRepository) CreateApplication(app *models.AuthorApplication) error {
	return r.db.Create(app).Error
}

func (r *IntakeRepository) CreateLead(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

func (r *IntakeRepository) CreateSubscriber(sub *models.NewsletterSubscriber) error {
	return r.db.Create(sub).Error
}
