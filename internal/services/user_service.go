package services

import (
	"errors"
	"fmt"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService owns the user directory and the social graph. Every method
// takes the acting user's email and resolves them fresh from the store; the
// principal is never ambient state.
type UserService struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, followRepo repositories.FollowRepository) *UserService {
	return &UserService{
		userRepository:   userRepo,
		followRepository: followRepo,
	}
}

// GetCurrentUser returns the acting user's own profile
func (s *UserService) GetCurrentUser(actorEmail string) (*models.UserResponse, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	return s.toUserResponse(actor, actor)
}

// GetUserByID returns a user's profile annotated with whether the acting
// user follows them
func (s *UserService) GetUserByID(actorEmail string, userID uint) (*models.UserResponse, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return s.toUserResponse(user, actor)
}

// UpdateUser applies a partial profile update. Absent fields are left
// untouched. A new password must be at least 8 characters and is hashed
// before storage.
func (s *UserService) UpdateUser(actorEmail string, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		actor.Name = req.Name
	}
	if req.Surname != "" {
		actor.Surname = req.Surname
	}
	if req.Bio != "" {
		actor.Bio = req.Bio
	}
	if req.ProfilePictureURL != "" {
		actor.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.Password != "" {
		if len(req.Password) < 8 {
			return nil, fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		actor.Password = string(hashed)
	}

	if err := s.userRepository.UpdateUser(actor); err != nil {
		return nil, err
	}
	return s.toUserResponse(actor, actor)
}

// DeleteUser deletes the acting user's account along with their posts,
// reactions and follow edges
func (s *UserService) DeleteUser(actorEmail string) error {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return err
	}
	return s.userRepository.DeleteUser(actor.ID)
}

// Follow adds the target to the acting user's following set. Adding an
// existing edge is a no-op; following yourself fails.
func (s *UserService) Follow(actorEmail string, targetID uint) (*models.UserResponse, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	if actor.ID == targetID {
		return nil, ErrSelfFollow
	}
	target, err := s.userRepository.GetUserByID(targetID)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	if err := s.followRepository.CreateFollow(&models.Follow{
		FollowerID:  actor.ID,
		FollowingID: targetID,
	}); err != nil {
		return nil, err
	}
	return s.toUserResponse(target, actor)
}

// Unfollow removes the target from the acting user's following set. Removing
// an edge that does not exist is a no-op.
func (s *UserService) Unfollow(actorEmail string, targetID uint) (*models.UserResponse, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	target, err := s.userRepository.GetUserByID(targetID)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	if err := s.followRepository.DeleteFollow(actor.ID, targetID); err != nil {
		return nil, err
	}
	return s.toUserResponse(target, actor)
}

// IsFollowing reports whether the acting user follows the other user
func (s *UserService) IsFollowing(actorEmail string, otherID uint) (bool, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return false, err
	}
	return s.followRepository.IsFollowing(actor.ID, otherID)
}

// GetOwnFollowing lists the users the acting user follows
func (s *UserService) GetOwnFollowing(actorEmail string, p models.Pagination) (*models.Page[models.UserResponse], error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	return s.GetFollowing(actorEmail, actor.ID, p)
}

// GetOwnFollowers lists the acting user's followers
func (s *UserService) GetOwnFollowers(actorEmail string, p models.Pagination) (*models.Page[models.UserResponse], error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	return s.GetFollowers(actorEmail, actor.ID, p)
}

// GetFollowing lists the users a user follows, annotated relative to the
// acting user
func (s *UserService) GetFollowing(actorEmail string, userID uint, p models.Pagination) (*models.Page[models.UserResponse], error) {
	return s.listGraph(actorEmail, userID, p, s.followRepository.GetFollowing)
}

// GetFollowers lists a user's followers, annotated relative to the acting
// user
func (s *UserService) GetFollowers(actorEmail string, userID uint, p models.Pagination) (*models.Page[models.UserResponse], error) {
	return s.listGraph(actorEmail, userID, p, s.followRepository.GetFollowers)
}

func (s *UserService) listGraph(
	actorEmail string,
	userID uint,
	p models.Pagination,
	fetch func(uint, models.Pagination) ([]models.User, int64, error),
) (*models.Page[models.UserResponse], error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepository.GetUserByID(userID); err != nil {
		return nil, notFoundOr(err, "user")
	}
	p = p.Normalize()
	users, total, err := fetch(userID, p)
	if err != nil {
		return nil, err
	}
	return s.toUserPage(users, actor, p, total)
}

// SearchUsers matches the term against username, name and surname
func (s *UserService) SearchUsers(actorEmail, term string, p models.Pagination) (*models.Page[models.UserResponse], error) {
	return s.search(actorEmail, term, p, s.userRepository.SearchUsers)
}

// SearchUsersByName matches the term against name only
func (s *UserService) SearchUsersByName(actorEmail, name string, p models.Pagination) (*models.Page[models.UserResponse], error) {
	return s.search(actorEmail, name, p, s.userRepository.SearchUsersByName)
}

// SearchUsersBySurname matches the term against surname only
func (s *UserService) SearchUsersBySurname(actorEmail, surname string, p models.Pagination) (*models.Page[models.UserResponse], error) {
	return s.search(actorEmail, surname, p, s.userRepository.SearchUsersBySurname)
}

// SearchUsersByUsername matches the term against username only
func (s *UserService) SearchUsersByUsername(actorEmail, username string, p models.Pagination) (*models.Page[models.UserResponse], error) {
	return s.search(actorEmail, username, p, s.userRepository.SearchUsersByUsername)
}

func (s *UserService) search(
	actorEmail, term string,
	p models.Pagination,
	fetch func(string, models.Pagination) ([]models.User, int64, error),
) (*models.Page[models.UserResponse], error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	p = p.Normalize()
	users, total, err := fetch(term, p)
	if err != nil {
		return nil, err
	}
	return s.toUserPage(users, actor, p, total)
}

func (s *UserService) toUserPage(users []models.User, actor *models.User, p models.Pagination, total int64) (*models.Page[models.UserResponse], error) {
	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		resp, err := s.toUserResponse(&users[i], actor)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	page := models.NewPage(responses, p, total)
	return &page, nil
}

// toUserResponse builds the public view of a user. Follower and following
// counts are always computed from the current edge set, never cached.
func (s *UserService) toUserResponse(user, actor *models.User) (*models.UserResponse, error) {
	followers, err := s.followRepository.GetFollowersCount(user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepository.GetFollowingCount(user.ID)
	if err != nil {
		return nil, err
	}
	isFollowing := false
	if actor != nil && actor.ID != user.ID {
		isFollowing, err = s.followRepository.IsFollowing(actor.ID, user.ID)
		if err != nil {
			return nil, err
		}
	}
	return &models.UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Name:              user.Name,
		Surname:           user.Surname,
		Bio:               user.Bio,
		ProfilePictureURL: user.ProfilePictureURL,
		FollowersCount:    followers,
		FollowingCount:    following,
		IsFollowing:       isFollowing,
	}, nil
}

func (s *UserService) resolveActor(email string) (*models.User, error) {
	actor, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, notFoundOr(err, "current user")
	}
	return actor, nil
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}
