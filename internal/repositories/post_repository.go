package repositories

import (
	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
	GetPostsByAuthor(authorID uint, p models.Pagination) ([]models.Post, int64, error)
	GetPostsByAuthors(authorIDs []uint, p models.Pagination) ([]models.Post, int64, error)
	GetAllPosts(p models.Pagination) ([]models.Post, int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID from PostgreSQL
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost updates an existing post in PostgreSQL
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post and its reactions in a single transaction
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// GetPostsByAuthor retrieves a page of an author's posts, newest first
func (r *PostgresPostRepository) GetPostsByAuthor(authorID uint, p models.Pagination) ([]models.Post, int64, error) {
	q := r.db.Model(&models.Post{}).Where("author_id = ?", authorID)
	return r.pagePosts(q, p)
}

// GetPostsByAuthors retrieves a page of posts by any of the given authors,
// newest first
func (r *PostgresPostRepository) GetPostsByAuthors(authorIDs []uint, p models.Pagination) ([]models.Post, int64, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, 0, nil
	}
	q := r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs)
	return r.pagePosts(q, p)
}

// GetAllPosts retrieves a page of all posts, newest first
func (r *PostgresPostRepository) GetAllPosts(p models.Pagination) ([]models.Post, int64, error) {
	return r.pagePosts(r.db.Model(&models.Post{}), p)
}

func (r *PostgresPostRepository) pagePosts(q *gorm.DB, p models.Pagination) ([]models.Post, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []models.Post
	if err := q.Order("created_at DESC").Offset(p.Offset()).Limit(p.Size).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
