package repository

import (
	"time"

	"lumetric/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	return &post, err
}

// FindAllOrdered returns the full collection, newest first. The feed always
// replaces its previous state with the result; there is no incremental merge.
func (r *PostRepository) FindAllOrdered() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at desc").Find(&posts).Error
	return posts, err
}

// UpdateFires sets the engagement counter to an absolute value for one post.
func (r *PostRepository) UpdateFires(id uint, fires int) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).
		Update("fires_count", fires).Error
}

// ExpireNewBadges clears the "is new" flag on posts created before cutoff.
func (r *PostRepository) ExpireNewBadges(cutoff time.Time) (int64, error) {
	result := r.db.Model(&models.Post{}).
		Where("is_new = ? AND created_at < ?", true, cutoff).
		Update("is_new", false)
	return result.RowsAffected, result.Error
}

func (r *PostRepository) CheckSlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}
