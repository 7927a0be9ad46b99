package services

import (
	"errors"
	"path/filepath"
	"testing"

	"lumetric/internal/models"
	"lumetric/internal/repository"
	"lumetric/internal/utils"
)

func setupIntakeService(t *testing.T) *IntakeService {
	t.Helper()

	db, err := utils.InitDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}
	return NewIntakeService(repository.NewIntakeRepository(db))
}

func validApplication() *models.AuthorApplication {
	return &models.AuthorApplication{
		FullName:     "Maria Silva",
		Email:        "maria@example.com",
		Whatsapp:     "+5511999999999",
		Niche:        "ESTRATÉGIA",
		HeadlineTest: "Por que sua marca está invisível",
		Pitch:        "Dez anos vendendo posicionamento para PMEs.",
	}
}

func TestSubmitApplication(t *testing.T) {
	svc := setupIntakeService(t)

	if err := svc.SubmitApplication(validApplication()); err != nil {
		t.Fatalf("SubmitApplication failed: %v", err)
	}
}

func TestSubmitApplicationRequiresFields(t *testing.T) {
	svc := setupIntakeService(t)

	app := validApplication()
	app.Pitch = "  "
	if err := svc.SubmitApplication(app); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestSubmitApplicationRejectsUnknownNiche(t *testing.T) {
	svc := setupIntakeService(t)

	app := validApplication()
	app.Niche = "ASTROLOGIA"
	if err := svc.SubmitApplication(app); !errors.Is(err, ErrInvalidNiche) {
		t.Errorf("expected ErrInvalidNiche, got %v", err)
	}
}

func TestSubmitLead(t *testing.T) {
	svc := setupIntakeService(t)

	if err := svc.SubmitLead(&models.Lead{FullName: "João", Email: "joao@example.com"}); err != nil {
		t.Fatalf("SubmitLead failed: %v", err)
	}
	if err := svc.SubmitLead(&models.Lead{FullName: "João"}); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestSubscribe(t *testing.T) {
	svc := setupIntakeService(t)

	if err := svc.Subscribe(&models.NewsletterSubscriber{Email: "x@example.com"}); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if err := svc.Subscribe(&models.NewsletterSubscriber{}); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}
