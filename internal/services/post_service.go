package services

import (
	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/repositories"
)

// PostService owns the post lifecycle, the like/dislike toggle and feed
// composition. Like UserService, the acting user is resolved fresh from
// their email on every call.
type PostService struct {
	postRepository     repositories.PostRepository
	reactionRepository repositories.ReactionRepository
	userRepository     repositories.UserRepository
	followRepository   repositories.FollowRepository
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repositories.PostRepository,
	reactionRepo repositories.ReactionRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
) *PostService {
	return &PostService{
		postRepository:     postRepo,
		reactionRepository: reactionRepo,
		userRepository:     userRepo,
		followRepository:   followRepo,
	}
}

// CreatePost creates a post owned by the acting user
func (s *PostService) CreatePost(actorEmail string, req *models.CreatePostRequest) (*models.PostResponse, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: actor.ID,
	}
	if err := s.postRepository.CreatePost(post); err != nil {
		return nil, err
	}
	return s.toPostResponse(post, actor)
}

// GetPost returns a post annotated with the acting user's reaction
func (s *PostService) GetPost(actorEmail string, postID uint) (*models.PostResponse, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	post, err := s.postRepository.GetPostByID(postID)
	if err != nil {
		return nil, notFoundOr(err, "post")
	}
	return s.toPostResponse(post, actor)
}

// UpdatePost applies a partial update to a post owned by the acting user.
// Empty fields in the request leave the stored values untouched.
func (s *PostService) UpdatePost(actorEmail string, postID uint, req *models.UpdatePostRequest) (*models.PostResponse, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	post, err := s.postRepository.GetPostByID(postID)
	if err != nil {
		return nil, notFoundOr(err, "post")
	}
	if post.AuthorID != actor.ID {
		return nil, ErrForbidden
	}
	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if err := s.postRepository.UpdatePost(post); err != nil {
		return nil, err
	}
	return s.toPostResponse(post, actor)
}

// DeletePost deletes a post owned by the acting user, cascading to its
// reactions
func (s *PostService) DeletePost(actorEmail string, postID uint) error {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return err
	}
	post, err := s.postRepository.GetPostByID(postID)
	if err != nil {
		return notFoundOr(err, "post")
	}
	if post.AuthorID != actor.ID {
		return ErrForbidden
	}
	return s.postRepository.DeletePost(postID)
}

// ReactToPost toggles the acting user's reaction on a post: first reaction
// creates it, repeating the same polarity removes it, the opposite polarity
// flips it in place. Returns the post with fresh counts and the resulting
// reaction state.
func (s *PostService) ReactToPost(actorEmail string, postID uint, liked bool) (*models.PostResponse, error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	post, err := s.postRepository.GetPostByID(postID)
	if err != nil {
		return nil, notFoundOr(err, "post")
	}
	if _, err := s.reactionRepository.ToggleReaction(postID, actor.ID, liked); err != nil {
		return nil, err
	}
	return s.toPostResponse(post, actor)
}

// GetUserPosts returns a page of a user's posts, newest first
func (s *PostService) GetUserPosts(actorEmail string, userID uint, p models.Pagination) (*models.Page[models.PostResponse], error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepository.GetUserByID(userID); err != nil {
		return nil, notFoundOr(err, "user")
	}
	p = p.Normalize()
	posts, total, err := s.postRepository.GetPostsByAuthor(userID, p)
	if err != nil {
		return nil, err
	}
	return s.toPostPage(posts, actor, p, total)
}

// GetFeedPosts returns a page of posts authored by users the acting user
// follows, newest first. A user following nobody gets an empty page.
func (s *PostService) GetFeedPosts(actorEmail string, p models.Pagination) (*models.Page[models.PostResponse], error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	p = p.Normalize()
	followingIDs, err := s.followRepository.GetFollowingIDs(actor.ID)
	if err != nil {
		return nil, err
	}
	if len(followingIDs) == 0 {
		page := models.NewPage([]models.PostResponse{}, p, 0)
		return &page, nil
	}
	posts, total, err := s.postRepository.GetPostsByAuthors(followingIDs, p)
	if err != nil {
		return nil, err
	}
	return s.toPostPage(posts, actor, p, total)
}

// GetExplorePosts returns a page of all posts, newest first
func (s *PostService) GetExplorePosts(actorEmail string, p models.Pagination) (*models.Page[models.PostResponse], error) {
	actor, err := s.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	p = p.Normalize()
	posts, total, err := s.postRepository.GetAllPosts(p)
	if err != nil {
		return nil, err
	}
	return s.toPostPage(posts, actor, p, total)
}

// toPostPage annotates a page of posts. Reaction states are fetched for the
// whole page in one batch query; authors are resolved once per distinct id.
func (s *PostService) toPostPage(posts []models.Post, actor *models.User, p models.Pagination, total int64) (*models.Page[models.PostResponse], error) {
	postIDs := make([]uint, len(posts))
	for i := range posts {
		postIDs[i] = posts[i].ID
	}
	states, err := s.reactionRepository.GetReactionStates(postIDs, actor.ID)
	if err != nil {
		return nil, err
	}

	authors := make(map[uint]models.UserResponse)
	responses := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		author, ok := authors[post.AuthorID]
		if !ok {
			resolved, err := s.authorResponse(post.AuthorID)
			if err != nil {
				return nil, err
			}
			author = *resolved
			authors[post.AuthorID] = author
		}
		likes, dislikes, err := s.reactionRepository.GetReactionCounts(post.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, models.PostResponse{
			ID:            post.ID,
			Title:         post.Title,
			Content:       post.Content,
			Author:        author,
			CreatedAt:     post.CreatedAt,
			UpdatedAt:     post.UpdatedAt,
			LikesCount:    likes,
			DislikesCount: dislikes,
			UserReaction:  states[post.ID],
		})
	}
	page := models.NewPage(responses, p, total)
	return &page, nil
}

func (s *PostService) toPostResponse(post *models.Post, actor *models.User) (*models.PostResponse, error) {
	author, err := s.authorResponse(post.AuthorID)
	if err != nil {
		return nil, err
	}
	likes, dislikes, err := s.reactionRepository.GetReactionCounts(post.ID)
	if err != nil {
		return nil, err
	}
	state, err := s.reactionRepository.GetReactionState(post.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	return &models.PostResponse{
		ID:            post.ID,
		Title:         post.Title,
		Content:       post.Content,
		Author:        *author,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
		LikesCount:    likes,
		DislikesCount: dislikes,
		UserReaction:  state,
	}, nil
}

func (s *PostService) authorResponse(authorID uint) (*models.UserResponse, error) {
	author, err := s.userRepository.GetUserByID(authorID)
	if err != nil {
		return nil, notFoundOr(err, "author")
	}
	followers, err := s.followRepository.GetFollowersCount(author.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepository.GetFollowingCount(author.ID)
	if err != nil {
		return nil, err
	}
	return &models.UserResponse{
		ID:                author.ID,
		Username:          author.Username,
		Name:              author.Name,
		Surname:           author.Surname,
		Bio:               author.Bio,
		ProfilePictureURL: author.ProfilePictureURL,
		FollowersCount:    followers,
		FollowingCount:    following,
	}, nil
}

func (s *PostService) resolveActor(email string) (*models.User, error) {
	actor, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, notFoundOr(err, "current user")
	}
	return actor, nil
}
