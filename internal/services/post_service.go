package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"lumetric/internal/constants"
	"lumetric/internal/models"
	"lumetric/internal/repository"
	"lumetric/internal/utils"

	"github.com/gosimple/slug"
)

const (
	// ExcerptLength is how many plain-text characters of the body become the
	// feed preview.
	ExcerptLength = 100

	// MaxCoverBytes is the hard ceiling for an embedded cover payload.
	MaxCoverBytes = 800 * 1024
)

var (
	ErrTitleRequired   = errors.New("título e conteúdo são obrigatórios")
	ErrInvalidCategory = errors.New("categoria inválida")
	ErrCoverTooLarge   = errors.New("a imagem é muito grande, use uma menor que 800KB")
)

// PostDraft is the editor's pending article.
type PostDraft struct {
	Title      string
	Category   string
	Body       string
	CoverImage string
	AuthorName string
}

type PostService struct {
	repo           *repository.PostRepository
	settingService *SettingService
}

func NewPostService(repo *repository.PostRepository, settingService *SettingService) *PostService {
	return &PostService{repo: repo, settingService: settingService}
}

// Publish validates a draft and inserts it as a new post with the engagement
// counter at zero and the new-badge set. Validation failures happen before
// any store call.
func (s *PostService) Publish(draft PostDraft) (*models.Post, error) {
	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Body) == "" {
		return nil, ErrTitleRequired
	}
	if !models.IsMasterCategory(draft.Category) {
		return nil, ErrInvalidCategory
	}
	if err := CheckCoverSize(draft.CoverImage); err != nil {
		return nil, err
	}

	htmlContent, err := utils.RenderBody(draft.Body)
	if err != nil {
		return nil, err
	}

	cover := draft.CoverImage
	if cover == "" {
		cover, _ = s.settingService.GetSetting(constants.SettingDefaultCoverURL)
	}

	author := draft.AuthorName
	if author == "" {
		author = models.DefaultAuthorProfile().Name
	}

	slugStr, err := s.generateUniqueSlug(draft.Title)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Category:   draft.Category,
		Title:      draft.Title,
		Slug:       slugStr,
		Excerpt:    utils.GenerateExcerpt(draft.Body, ExcerptLength),
		Content:    string(htmlContent),
		ImageURL:   cover,
		FiresCount: 0,
		AuthorName: author,
		IsNew:      true,
	}

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Fire persists an engagement increment by setting the counter to the value
// the reader now sees. The caller supplies the displayed count; the store is
// updated to exactly that value, matching the optimistic client behavior.
func (s *PostService) Fire(id uint, fires int) error {
	if fires < 0 {
		fires = 0
	}
	return s.repo.UpdateFires(id, fires)
}

// ExpireNewBadges clears the new-post badge on everything older than days.
func (s *PostService) ExpireNewBadges(days int) (int64, error) {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.repo.ExpireNewBadges(cutoff)
}

// CheckCoverSize enforces the payload ceiling on an embedded data-URL cover.
// An empty cover always passes; the default stock image is substituted later.
func CheckCoverSize(dataURL string) error {
	if dataURL == "" {
		return nil
	}
	payload := dataURL
	if idx := strings.Index(dataURL, ","); idx != -1 {
		payload = dataURL[idx+1:]
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxCoverBytes {
		return ErrCoverTooLarge
	}
	return nil
}

// generateUniqueSlug checks for slug uniqueness and appends a counter if needed.
func (s *PostService) generateUniqueSlug(title string) (string, error) {
	baseSlug := slug.Make(title)
	if baseSlug == "" {
		baseSlug = "sem-titulo"
	}
	finalSlug := baseSlug
	counter := 1
	for {
		exists, err := s.repo.CheckSlugExists(finalSlug)
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		finalSlug = fmt.Sprintf("%s-%d", baseSlug, counter)
		counter++
	}
	return finalSlug, nil
}
