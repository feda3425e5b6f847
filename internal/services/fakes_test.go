package services

import (
	"sort"
	"strings"
	"time"

	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"gorm.io/gorm"
)

// fakeStore is an in-memory stand-in for the Postgres repositories. It
// implements UserRepository, PostRepository, ReactionRepository and
// FollowRepository so services can be exercised without a database.
type fakeStore struct {
	users     map[uint]*models.User
	posts     map[uint]*models.Post
	reactions map[uint]*models.Reaction
	follows   map[[2]uint]bool

	nextUserID     uint
	nextPostID     uint
	nextReactionID uint
	clock          time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[uint]*models.User),
		posts:     make(map[uint]*models.Post),
		reactions: make(map[uint]*models.Reaction),
		follows:   make(map[[2]uint]bool),
		clock:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// --- UserRepository ---

func (s *fakeStore) CreateUser(user *models.User) error {
	s.nextUserID++
	user.ID = s.nextUserID
	user.CreatedAt = s.tick()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeStore) GetUserByID(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeStore) GetUserByEmail(email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) GetUserByUsername(username string) (*models.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) GetUserByVerificationCode(code string) (*models.User, error) {
	for _, user := range s.users {
		if user.VerificationCode == code {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) UpdateUser(user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeStore) DeleteUser(id uint) error {
	delete(s.users, id)
	for rid, reaction := range s.reactions {
		if reaction.UserID == id {
			delete(s.reactions, rid)
		}
	}
	for pid, post := range s.posts {
		if post.AuthorID != id {
			continue
		}
		for rid, reaction := range s.reactions {
			if reaction.PostID == pid {
				delete(s.reactions, rid)
			}
		}
		delete(s.posts, pid)
	}
	for edge := range s.follows {
		if edge[0] == id || edge[1] == id {
			delete(s.follows, edge)
		}
	}
	return nil
}

func (s *fakeStore) SearchUsers(term string, p models.Pagination) ([]models.User, int64, error) {
	return s.searchUsers(p, func(u *models.User) bool {
		return containsFold(u.Username, term) || containsFold(u.Name, term) || containsFold(u.Surname, term)
	})
}

func (s *fakeStore) SearchUsersByName(name string, p models.Pagination) ([]models.User, int64, error) {
	return s.searchUsers(p, func(u *models.User) bool { return containsFold(u.Name, name) })
}

func (s *fakeStore) SearchUsersBySurname(surname string, p models.Pagination) ([]models.User, int64, error) {
	return s.searchUsers(p, func(u *models.User) bool { return containsFold(u.Surname, surname) })
}

func (s *fakeStore) SearchUsersByUsername(username string, p models.Pagination) ([]models.User, int64, error) {
	return s.searchUsers(p, func(u *models.User) bool { return containsFold(u.Username, username) })
}

func (s *fakeStore) searchUsers(p models.Pagination, match func(*models.User) bool) ([]models.User, int64, error) {
	var matched []models.User
	for _, user := range s.users {
		if match(user) {
			matched = append(matched, *user)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return pageSlice(matched, p), int64(len(matched)), nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// --- PostRepository ---

func (s *fakeStore) CreatePost(post *models.Post) error {
	s.nextPostID++
	post.ID = s.nextPostID
	post.CreatedAt = s.tick()
	post.UpdatedAt = post.CreatedAt
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *fakeStore) GetPostByID(id uint) (*models.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *post
	return &copied, nil
}

func (s *fakeStore) UpdatePost(post *models.Post) error {
	if _, ok := s.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	post.UpdatedAt = s.tick()
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *fakeStore) DeletePost(id uint) error {
	for rid, reaction := range s.reactions {
		if reaction.PostID == id {
			delete(s.reactions, rid)
		}
	}
	delete(s.posts, id)
	return nil
}

func (s *fakeStore) GetPostsByAuthor(authorID uint, p models.Pagination) ([]models.Post, int64, error) {
	return s.selectPosts(p, func(post *models.Post) bool { return post.AuthorID == authorID })
}

func (s *fakeStore) GetPostsByAuthors(authorIDs []uint, p models.Pagination) ([]models.Post, int64, error) {
	allowed := make(map[uint]bool, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = true
	}
	return s.selectPosts(p, func(post *models.Post) bool { return allowed[post.AuthorID] })
}

func (s *fakeStore) GetAllPosts(p models.Pagination) ([]models.Post, int64, error) {
	return s.selectPosts(p, func(*models.Post) bool { return true })
}

func (s *fakeStore) selectPosts(p models.Pagination, match func(*models.Post) bool) ([]models.Post, int64, error) {
	var matched []models.Post
	for _, post := range s.posts {
		if match(post) {
			matched = append(matched, *post)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return pageSlice(matched, p), int64(len(matched)), nil
}

func pageSlice[T any](items []T, p models.Pagination) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// --- ReactionRepository ---

func (s *fakeStore) GetReactionState(postID, userID uint) (*bool, error) {
	for _, reaction := range s.reactions {
		if reaction.PostID == postID && reaction.UserID == userID {
			liked := reaction.Liked
			return &liked, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) ToggleReaction(postID, userID uint, liked bool) (*bool, error) {
	for rid, reaction := range s.reactions {
		if reaction.PostID != postID || reaction.UserID != userID {
			continue
		}
		if reaction.Liked == liked {
			delete(s.reactions, rid)
			return nil, nil
		}
		reaction.Liked = liked
		state := liked
		return &state, nil
	}
	s.nextReactionID++
	s.reactions[s.nextReactionID] = &models.Reaction{
		ID:        s.nextReactionID,
		PostID:    postID,
		UserID:    userID,
		Liked:     liked,
		CreatedAt: s.tick(),
	}
	state := liked
	return &state, nil
}

func (s *fakeStore) GetReactionCounts(postID uint) (int64, int64, error) {
	var likes, dislikes int64
	for _, reaction := range s.reactions {
		if reaction.PostID != postID {
			continue
		}
		if reaction.Liked {
			likes++
		} else {
			dislikes++
		}
	}
	return likes, dislikes, nil
}

func (s *fakeStore) GetReactionStates(postIDs []uint, userID uint) (map[uint]*bool, error) {
	states := make(map[uint]*bool, len(postIDs))
	for _, postID := range postIDs {
		state, _ := s.GetReactionState(postID, userID)
		if state != nil {
			states[postID] = state
		}
	}
	return states, nil
}

// --- FollowRepository ---

func (s *fakeStore) CreateFollow(follow *models.Follow) error {
	s.follows[[2]uint{follow.FollowerID, follow.FollowingID}] = true
	return nil
}

func (s *fakeStore) DeleteFollow(followerID, followingID uint) error {
	delete(s.follows, [2]uint{followerID, followingID})
	return nil
}

func (s *fakeStore) IsFollowing(followerID, followingID uint) (bool, error) {
	return s.follows[[2]uint{followerID, followingID}], nil
}

func (s *fakeStore) GetFollowers(userID uint, p models.Pagination) ([]models.User, int64, error) {
	return s.edgeUsers(p, func(edge [2]uint) (uint, bool) {
		return edge[0], edge[1] == userID
	})
}

func (s *fakeStore) GetFollowing(userID uint, p models.Pagination) ([]models.User, int64, error) {
	return s.edgeUsers(p, func(edge [2]uint) (uint, bool) {
		return edge[1], edge[0] == userID
	})
}

func (s *fakeStore) edgeUsers(p models.Pagination, pick func([2]uint) (uint, bool)) ([]models.User, int64, error) {
	var matched []models.User
	for edge := range s.follows {
		if id, ok := pick(edge); ok {
			if user, exists := s.users[id]; exists {
				matched = append(matched, *user)
			}
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return pageSlice(matched, p), int64(len(matched)), nil
}

func (s *fakeStore) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	for edge := range s.follows {
		if edge[1] == userID {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	for edge := range s.follows {
		if edge[0] == userID {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	for edge := range s.follows {
		if edge[0] == userID {
			ids = append(ids, edge[1])
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// seedUser creates a user directly in the store and returns it
func (s *fakeStore) seedUser(username, email, name, surname string) *models.User {
	user := &models.User{
		Username: username,
		Email:    email,
		Password: "hashed",
		Name:     name,
		Surname:  surname,
	}
	_ = s.CreateUser(user)
	return user
}

// seedPost creates a post directly in the store and returns it
func (s *fakeStore) seedPost(authorID uint, title, content string) *models.Post {
	post := &models.Post{Title: title, Content: content, AuthorID: authorID}
	_ = s.CreatePost(post)
	return post
}
