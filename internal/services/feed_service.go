package services

import (
	"html/template"
	"strings"

	"lumetric/internal/models"
	"lumetric/internal/repository"
	"lumetric/internal/utils"
)

type FeedService struct {
	repo *repository.PostRepository
}

func NewFeedService(repo *repository.PostRepository) *FeedService {
	return &FeedService{repo: repo}
}

// Load fetches the full post collection ordered newest first and adapts each
// record into the feed shape. The result fully replaces any previous feed.
func (s *FeedService) Load(lang string) ([]models.FeedPost, error) {
	posts, err := s.repo.FindAllOrdered()
	if err != nil {
		return nil, err
	}

	feed := make([]models.FeedPost, len(posts))
	for i, p := range posts {
		feed[i] = models.FeedPost{
			ID:          models.FeedID(p.ID),
			Category:    p.Category,
			Title:       p.Title,
			Slug:        p.Slug,
			Excerpt:     p.Excerpt,
			Content:     template.HTML(p.Content),
			ImageURL:    p.ImageURL,
			DateLabel:   utils.FeedDateLabel(p.CreatedAt, lang),
			ReadingTime: utils.ReadingTime(p.Content),
			Fires:       p.FiresCount,
			Author:      p.AuthorName,
			IsNew:       p.IsNew,
		}
	}
	return feed, nil
}

// Filter computes the visible subset of the feed: category match (the ALL
// sentinel passes everything) AND a case-insensitive substring match against
// title or content (empty query passes everything). Pure function of its
// inputs; stored posts are never mutated.
func Filter(feed []models.FeedPost, category, query string) []models.FeedPost {
	q := strings.ToLower(query)
	out := make([]models.FeedPost, 0, len(feed))
	for _, p := range feed {
		if category != models.CategoryAll && category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(string(p.Content)), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FindByID locates a feed post by its deep-link identifier. Comparison is
// done as strings to tolerate numeric ids from the store. A miss returns nil
// and is not an error.
func FindByID(feed []models.FeedPost, id string) *models.FeedPost {
	for i := range feed {
		if feed[i].ID == id {
			return &feed[i]
		}
	}
	return nil
}
