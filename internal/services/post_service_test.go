package services

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lumetric/internal/constants"
	"lumetric/internal/models"
	"lumetric/internal/repository"
	"lumetric/internal/utils"

	"gorm.io/gorm"
)

func setupPostService(t *testing.T) (*gorm.DB, *repository.PostRepository, *PostService) {
	t.Helper()

	db, err := utils.InitDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}

	postRepo := repository.NewPostRepository(db)
	settingService := NewSettingService(repository.NewSettingRepository(db))
	return db, postRepo, NewPostService(postRepo, settingService)
}

func validDraft() PostDraft {
	return PostDraft{
		Title:    "A Morte do Marketing Tradicional",
		Category: "ESTRATÉGIA",
		Body:     "Posicionamento é guerra.\nQuem não ataca, defende.",
	}
}

func TestPublishNewPostDefaults(t *testing.T) {
	_, repo, svc := setupPostService(t)

	post, err := svc.Publish(validDraft())
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if post.FiresCount != 0 {
		t.Errorf("new post fires = %d, want 0", post.FiresCount)
	}
	if !post.IsNew {
		t.Error("new post should carry the new badge")
	}
	if post.Slug != "a-morte-do-marketing-tradicional" {
		t.Errorf("unexpected slug %q", post.Slug)
	}
	if post.AuthorName != models.DefaultAuthorProfile().Name {
		t.Errorf("expected default author, got %q", post.AuthorName)
	}
	if !strings.Contains(post.Content, "<br>") {
		t.Errorf("expected newline rendered as <br>, got %q", post.Content)
	}

	count, err := repo.Count()
	if err != nil || count != 1 {
		t.Errorf("expected 1 stored post, got %d (err=%v)", count, err)
	}
}

func TestPublishRejectsBlankTitleOrBody(t *testing.T) {
	_, repo, svc := setupPostService(t)

	for _, draft := range []PostDraft{
		{Title: "  ", Category: "ESTRATÉGIA", Body: "corpo"},
		{Title: "Título", Category: "ESTRATÉGIA", Body: "  "},
	} {
		if _, err := svc.Publish(draft); !errors.Is(err, ErrTitleRequired) {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	}

	// Validation failures must not touch the store.
	if count, _ := repo.Count(); count != 0 {
		t.Errorf("expected no stored posts, got %d", count)
	}
}

func TestPublishRejectsUnknownCategory(t *testing.T) {
	_, _, svc := setupPostService(t)

	draft := validDraft()
	draft.Category = "INVENTADA"
	if _, err := svc.Publish(draft); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestPublishExcerptLength(t *testing.T) {
	_, _, svc := setupPostService(t)

	draft := validDraft()
	draft.Body = strings.Repeat("estratégia ", 40)
	post, err := svc.Publish(draft)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if got := len([]rune(post.Excerpt)); got != ExcerptLength+3 {
		t.Errorf("excerpt length = %d runes, want %d plus ellipsis", got, ExcerptLength)
	}
	if !strings.HasSuffix(post.Excerpt, "...") {
		t.Errorf("expected trailing ellipsis, got %q", post.Excerpt)
	}
}

func TestPublishSubstitutesDefaultCover(t *testing.T) {
	db, _, svc := setupPostService(t)

	post, err := svc.Publish(validDraft())
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	var setting models.Setting
	if err := db.Where("key = ?", constants.SettingDefaultCoverURL).First(&setting).Error; err != nil {
		t.Fatalf("default cover setting missing: %v", err)
	}
	if post.ImageURL != setting.Value {
		t.Errorf("cover = %q, want seeded default %q", post.ImageURL, setting.Value)
	}
}

func TestPublishKeepsProvidedCover(t *testing.T) {
	_, _, svc := setupPostService(t)

	draft := validDraft()
	draft.CoverImage = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("pequena"))
	post, err := svc.Publish(draft)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if post.ImageURL != draft.CoverImage {
		t.Error("provided cover must be kept verbatim")
	}
}

func TestPublishDuplicateTitleGetsSuffixedSlug(t *testing.T) {
	_, _, svc := setupPostService(t)

	first, err := svc.Publish(validDraft())
	if err != nil {
		t.Fatalf("first Publish failed: %v", err)
	}
	second, err := svc.Publish(validDraft())
	if err != nil {
		t.Fatalf("second Publish failed: %v", err)
	}
	if second.Slug != first.Slug+"-1" {
		t.Errorf("duplicate slug = %q, want %q", second.Slug, first.Slug+"-1")
	}
}

func TestCheckCoverSize(t *testing.T) {
	small := "data:image/png;base64," + strings.Repeat("A", base64.StdEncoding.EncodedLen(700*1024))
	if err := CheckCoverSize(small); err != nil {
		t.Errorf("700KB cover should pass, got %v", err)
	}

	big := "data:image/png;base64," + strings.Repeat("A", base64.StdEncoding.EncodedLen(900*1024))
	if !errors.Is(CheckCoverSize(big), ErrCoverTooLarge) {
		t.Error("900KB cover should be rejected")
	}

	if err := CheckCoverSize(""); err != nil {
		t.Errorf("empty cover should pass, got %v", err)
	}
}

func TestFireSetsAbsoluteValue(t *testing.T) {
	_, repo, svc := setupPostService(t)

	post, err := svc.Publish(validDraft())
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	// The reader saw 3 and fired: the store lands on exactly 4.
	if err := svc.Fire(post.ID, 4); err != nil {
		t.Fatalf("Fire failed: %v", err)
	}
	stored, err := repo.FindByID(post.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.FiresCount != 4 {
		t.Errorf("fires = %d, want 4", stored.FiresCount)
	}
}

func TestExpireNewBadges(t *testing.T) {
	db, repo, svc := setupPostService(t)

	post, err := svc.Publish(validDraft())
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	// Age the post past the badge window.
	old := time.Now().AddDate(0, 0, -10)
	if err := db.Model(&models.Post{}).Where("id = ?", post.ID).
		Update("created_at", old).Error; err != nil {
		t.Fatalf("failed to age post: %v", err)
	}

	affected, err := svc.ExpireNewBadges(7)
	if err != nil {
		t.Fatalf("ExpireNewBadges failed: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	stored, _ := repo.FindByID(post.ID)
	if stored.IsNew {
		t.Error("badge should be cleared after the window")
	}
}
