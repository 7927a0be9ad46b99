package models

import "gorm.io/gorm"

// AuthorApplication is a write-once candidacy record. There is no review
// lifecycle on this side; the record is inserted and never read back.
type AuthorApplication struct {
	gorm.Model
	FullName     string `gorm:"not null" json:"full_name" form:"full_name"`
	Email        string `gorm:"not null" json:"email" form:"email"`
	Whatsapp     string `gorm:"not null" json:"whatsapp" form:"whatsapp"`
	PortfolioURL string `json:"portfolio_url" form:"portfolio_url"`
	Niche        string `gorm:"not null" json:"niche" form:"niche"`
	HeadlineTest string `gorm:"not null" json:"headline_test" form:"headline_test"`
	Pitch        string `gorm:"type:text;not null" json:"pitch" form:"pitch"`
}

func (AuthorApplication) TableName() string {
	return "author_applications"
}

// Lead is a consultation request captured by the landing page form.
type Lead struct {
	gorm.Model
	FullName   string `gorm:"not null" json:"full_name" form:"full_name"`
	Email      string `gorm:"not null" json:"email" form:"email"`
	Whatsapp   string `json:"whatsapp" form:"whatsapp"`
	SocialLink string `json:"social_link" form:"social_link"`
	Budget     string `json:"budget" form:"budget"`
	Obstacle   string `gorm:"type:text" json:"obstacle" form:"obstacle"`
	Urgency    string `json:"urgency" form:"urgency"`
}

func (Lead) TableName() string {
	return "leads"
}

// NewsletterSubscriber is captured by the footer newsletter form.
type NewsletterSubscriber struct {
	gorm.Model
	Email    string `gorm:"not null" json:"email" form:"email"`
	Whatsapp string `json:"whatsapp" form:"whatsapp"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
