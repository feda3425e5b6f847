package repositories

import (
	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByVerificationCode(code string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
	SearchUsers(term string, p models.Pagination) ([]models.User, int64, error)
	SearchUsersByName(name string, p models.Pagination) ([]models.User, int64, error)
	SearchUsersBySurname(surname string, p models.Pagination) ([]models.User, int64, error)
	SearchUsersByUsername(username string, p models.Pagination) ([]models.User, int64, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user in PostgreSQL
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID from PostgreSQL
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email from PostgreSQL
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username from PostgreSQL
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByVerificationCode retrieves a user by their pending verification code
func (r *PostgresUserRepository) GetUserByVerificationCode(code string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("verification_code = ?", code).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user in PostgreSQL
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteUser deletes a user and everything hanging off them in a single
// transaction: reactions they made, reactions on their posts, their posts,
// and follow edges in both directions.
func (r *PostgresUserRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN (?)",
			tx.Model(&models.Post{}).Select("id").Where("author_id = ?", id),
		).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR following_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

// SearchUsers searches for users by username, name or surname (case-insensitive)
func (r *PostgresUserRepository) SearchUsers(term string, p models.Pagination) ([]models.User, int64, error) {
	q := r.db.Model(&models.User{}).Where(
		"LOWER(username) LIKE LOWER(?) OR LOWER(name) LIKE LOWER(?) OR LOWER(surname) LIKE LOWER(?)",
		"%"+term+"%", "%"+term+"%", "%"+term+"%",
	)
	return r.pageUsers(q, p)
}

// SearchUsersByName searches for users by name (case-insensitive)
func (r *PostgresUserRepository) SearchUsersByName(name string, p models.Pagination) ([]models.User, int64, error) {
	q := r.db.Model(&models.User{}).Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	return r.pageUsers(q, p)
}

// SearchUsersBySurname searches for users by surname (case-insensitive)
func (r *PostgresUserRepository) SearchUsersBySurname(surname string, p models.Pagination) ([]models.User, int64, error) {
	q := r.db.Model(&models.User{}).Where("LOWER(surname) LIKE LOWER(?)", "%"+surname+"%")
	return r.pageUsers(q, p)
}

// SearchUsersByUsername searches for users by username (case-insensitive)
func (r *PostgresUserRepository) SearchUsersByUsername(username string, p models.Pagination) ([]models.User, int64, error) {
	q := r.db.Model(&models.User{}).Where("LOWER(username) LIKE LOWER(?)", "%"+username+"%")
	return r.pageUsers(q, p)
}

func (r *PostgresUserRepository) pageUsers(q *gorm.DB, p models.Pagination) ([]models.User, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	if err := q.Order("id").Offset(p.Offset()).Limit(p.Size).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
