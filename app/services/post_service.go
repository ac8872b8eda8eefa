package services

import (
	"errors"
	"fmt"
	"strings"

	"yatube/app/models"
	"yatube/app/pagination"
	"yatube/app/repositories"
)

// ErrNotAuthor is returned when someone other than a post's author tries to
// edit it. Callers are expected to deny the edit silently.
var ErrNotAuthor = errors.New("only the author may edit a post")

// ValidationError reports a user-correctable input problem. The web layer
// re-renders the submitted form with the message instead of failing the
// request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PostListing is one page of posts together with its pagination state.
type PostListing struct {
	Posts []*models.Post
	Page  pagination.Page
}

// PostService handles listing and mutation logic for posts
type PostService struct {
	postRepo  repositories.PostRepository
	userRepo  repositories.UserRepository
	groupRepo repositories.GroupRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, groupRepo repositories.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// ListPosts retrieves one page of the global feed, newest first.
func (s *PostService) ListPosts(pageNum int) (*PostListing, error) {
	total, err := s.postRepo.Count()
	if err != nil {
		return nil, err
	}
	page := pagination.New(total, pagination.DefaultPerPage, pageNum)
	posts, err := s.postRepo.List(page.PerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	if err := s.attachRelated(posts); err != nil {
		return nil, err
	}
	return &PostListing{Posts: posts, Page: page}, nil
}

// ListGroupPosts retrieves one page of a group's feed. The group is looked
// up by slug; an unknown slug yields repositories.ErrNotFound.
func (s *PostService) ListGroupPosts(slug string, pageNum int) (*models.Group, *PostListing, error) {
	group, err := s.groupRepo.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.postRepo.CountByGroup(group.ID)
	if err != nil {
		return nil, nil, err
	}
	page := pagination.New(total, pagination.DefaultPerPage, pageNum)
	posts, err := s.postRepo.ListByGroup(group.ID, page.PerPage, page.Offset())
	if err != nil {
		return nil, nil, err
	}
	if err := s.attachRelated(posts); err != nil {
		return nil, nil, err
	}
	return group, &PostListing{Posts: posts, Page: page}, nil
}

// ListProfile retrieves one page of an author's feed plus the author's total
// post count. The count covers all pages, not just the current one.
func (s *PostService) ListProfile(username string, pageNum int) (*models.User, int, *PostListing, error) {
	author, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, 0, nil, err
	}
	total, err := s.postRepo.CountByAuthor(author.ID)
	if err != nil {
		return nil, 0, nil, err
	}
	page := pagination.New(total, pagination.DefaultPerPage, pageNum)
	posts, err := s.postRepo.ListByAuthor(author.ID, page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, nil, err
	}
	if err := s.attachRelated(posts); err != nil {
		return nil, 0, nil, err
	}
	return author, total, &PostListing{Posts: posts, Page: page}, nil
}

// GetPost retrieves a single post with its author and group attached, plus
// the site-wide total post count.
func (s *PostService) GetPost(id int) (*models.Post, int, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, 0, err
	}
	if err := s.attachRelated([]*models.Post{post}); err != nil {
		return nil, 0, err
	}
	total, err := s.postRepo.Count()
	if err != nil {
		return nil, 0, err
	}
	return post, total, nil
}

// CreatePost persists a new post. The author is always the supplied identity;
// any client-side author value has been discarded before this point.
func (s *PostService) CreatePost(authorID int, text string, groupID int) (*models.Post, error) {
	if err := s.validateInput(text, groupID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(authorID); err != nil {
		return nil, fmt.Errorf("unknown author %d: %w", authorID, err)
	}

	post := &models.Post{
		Text:     strings.TrimSpace(text),
		AuthorID: authorID,
		GroupID:  groupID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost applies a text/group update to an existing post. Only the original
// author may edit; anyone else gets ErrNotAuthor and nothing is persisted.
// PubDate and AuthorID never change across edits.
func (s *PostService) EditPost(postID, editorID int, text string, groupID int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != editorID {
		return nil, ErrNotAuthor
	}
	if err := s.validateInput(text, groupID); err != nil {
		return nil, err
	}

	post.Text = strings.TrimSpace(text)
	post.GroupID = groupID
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// validateInput checks the submitted post fields
func (s *PostService) validateInput(text string, groupID int) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Message: "text is required"}
	}
	if groupID != 0 {
		if _, err := s.groupRepo.GetByID(groupID); err != nil {
			if err == repositories.ErrNotFound {
				return &ValidationError{Message: "selected group does not exist"}
			}
			return err
		}
	}
	return nil
}

// attachRelated fills in the Author and Group references used by templates.
func (s *PostService) attachRelated(posts []*models.Post) error {
	users := make(map[int]*models.User)
	groups := make(map[int]*models.Group)

	for _, post := range posts {
		if _, ok := users[post.AuthorID]; !ok {
			author, err := s.userRepo.GetByID(post.AuthorID)
			if err != nil {
				return fmt.Errorf("failed to load author %d: %v", post.AuthorID, err)
			}
			users[post.AuthorID] = author
		}
		post.Author = users[post.AuthorID]

		if post.GroupID == 0 {
			continue
		}
		if _, ok := groups[post.GroupID]; !ok {
			group, err := s.groupRepo.GetByID(post.GroupID)
			if err != nil {
				return fmt.Errorf("failed to load group %d: %v", post.GroupID, err)
			}
			groups[post.GroupID] = group
		}
		post.Group = groups[post.GroupID]
	}
	return nil
}
