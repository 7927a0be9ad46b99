package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestLandingPage(t *testing.T) {
	env := setupTestEnv(t)

	w := env.get("/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "LUMETRIC") {
		t.Error("expected the site name on the landing page")
	}
}

func TestSubmitLead(t *testing.T) {
	env := setupTestEnv(t)

	form := url.Values{
		"full_name": {"João Costa"},
		"email":     {"joao@example.com"},
		"budget":    {"5k-10k"},
	}
	w := env.postForm("/consultation", form, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Errorf("expected redirect to /, got %d -> %s", w.Code, w.Header().Get("Location"))
	}
}

func TestSubmitLeadMissingEmail(t *testing.T) {
	env := setupTestEnv(t)

	w := env.postForm("/consultation", url.Values{"full_name": {"João"}}, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/#consultoria" {
		t.Errorf("expected redirect back to the form, got %d -> %s", w.Code, w.Header().Get("Location"))
	}
}

func TestNewsletterSubscribe(t *testing.T) {
	env := setupTestEnv(t)

	w := env.postForm("/newsletter", url.Values{"email": {"x@example.com"}}, nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Errorf("expected redirect to /, got %d -> %s", w.Code, w.Header().Get("Location"))
	}

	w = env.postForm("/newsletter", url.Values{}, nil)
	if w.Header().Get("Location") != "/#newsletter" {
		t.Errorf("expected redirect back to the form, got %s", w.Header().Get("Location"))
	}
}
