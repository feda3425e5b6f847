package repositories

import (
	"errors"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"gorm.io/gorm"
)

// ReactionRepository defines the interface for reaction data operations.
// Reaction state is reported as *bool: nil means no reaction, otherwise the
// value is the polarity (true = like, false = dislike).
type ReactionRepository interface {
	GetReactionState(postID, userID uint) (*bool, error)
	ToggleReaction(postID, userID uint, liked bool) (*bool, error)
	GetReactionCounts(postID uint) (likes int64, dislikes int64, err error)
	GetReactionStates(postIDs []uint, userID uint) (map[uint]*bool, error)
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL
type PostgresReactionRepository struct {
	db *gorm.DB
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository
func NewPostgresReactionRepository(db *gorm.DB) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db}
}

// GetReactionState retrieves the user's reaction to a post, if any
func (r *PostgresReactionRepository) GetReactionState(postID, userID uint) (*bool, error) {
	var reaction models.Reaction
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reaction.Liked, nil
}

// ToggleReaction applies the reaction state machine for one (post, user)
// pair and returns the resulting state:
//   - no existing reaction: create one with the given polarity
//   - existing reaction, same polarity: delete it
//   - existing reaction, other polarity: flip it in place
//
// The read-check-write runs in a single transaction; the unique index on
// (post_id, user_id) prevents duplicate rows under concurrent requests.
func (r *PostgresReactionRepository) ToggleReaction(postID, userID uint, liked bool) (*bool, error) {
	var state *bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var reaction models.Reaction
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&reaction).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reaction = models.Reaction{PostID: postID, UserID: userID, Liked: liked}
			if err := tx.Create(&reaction).Error; err != nil {
				return err
			}
			state = &reaction.Liked
			return nil
		}
		if err != nil {
			return err
		}
		if reaction.Liked == liked {
			state = nil
			return tx.Delete(&reaction).Error
		}
		reaction.Liked = liked
		if err := tx.Save(&reaction).Error; err != nil {
			return err
		}
		state = &reaction.Liked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// GetReactionCounts computes the like and dislike totals for a post
func (r *PostgresReactionRepository) GetReactionCounts(postID uint) (int64, int64, error) {
	var likes, dislikes int64
	if err := r.db.Model(&models.Reaction{}).
		Where("post_id = ? AND liked = ?", postID, true).Count(&likes).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.Model(&models.Reaction{}).
		Where("post_id = ? AND liked = ?", postID, false).Count(&dislikes).Error; err != nil {
		return 0, 0, err
	}
	return likes, dislikes, nil
}

// GetReactionStates retrieves the user's reactions to a batch of posts in
// one query. Posts without a reaction are absent from the map.
func (r *PostgresReactionRepository) GetReactionStates(postIDs []uint, userID uint) (map[uint]*bool, error) {
	states := make(map[uint]*bool, len(postIDs))
	if len(postIDs) == 0 {
		return states, nil
	}
	var reactions []models.Reaction
	if err := r.db.Where("post_id IN ? AND user_id = ?", postIDs, userID).Find(&reactions).Error; err != nil {
		return nil, err
	}
	for i := range reactions {
		states[reactions[i].PostID] = &reactions[i].Liked
	}
	return states, nil
}
