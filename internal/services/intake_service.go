package services

import (
	"errors"
	"strings"

	"lumetric/internal/models"
	"lumetric/internal/repository"
)

var (
	ErrMissingFields = errors.New("campos obrigatórios em falta")
	ErrInvalidNiche  = errors.New("nicho deve ser uma das categorias")
)

type IntakeService struct {
	repo *repository.IntakeRepository
}

func NewIntakeService(repo *repository.IntakeRepository) *IntakeService {
	return &IntakeService{repo: repo}
}

// SubmitApplication validates and inserts an author application. The record
// is write-once; there is no review lifecycle here.
func (s *IntakeService) SubmitApplication(app *models.AuthorApplication) error {
	if anyBlank(app.FullName, app.Email, app.Whatsapp, app.HeadlineTest, app.Pitch) {
		return ErrMissingFields
	}
	if !models.IsMasterCategory(app.Niche) {
		return ErrInvalidNiche
	}
	return s.repo.CreateApplication(app)
}

// SubmitLead inserts a consultation request from the landing page.
func (s *IntakeService) SubmitLead(lead *models.Lead) error {
	if anyBlank(lead.FullName, lead.Email) {
		return ErrMissingFields
	}
	return s.repo.CreateLead(lead)
}

// Subscribe inserts a newsletter subscriber.
func (s *IntakeService) Subscribe(sub *models.NewsletterSubscriber) error {
	if anyBlank(sub.Email) {
		return ErrMissingFields
	}
	return s.repo.CreateSubscriber(sub)
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
