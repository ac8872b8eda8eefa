package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"yatube/app/models"
	"yatube/app/pagination"
	"yatube/app/repositories"
	"yatube/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for the post listings and the
// create/edit forms
type PostController struct {
	postService  *services.PostService
	groupService *services.GroupService
	templates    map[string]*template.Template
}

// NewPostController creates a new PostController. basePath is the directory
// holding app/views; tests point it at a fixture directory.
func NewPostController(postService *services.PostService, groupService *services.GroupService, basePath string) *PostController {
	return &PostController{
		postService:  postService,
		groupService: groupService,
		templates: loadTemplates(basePath,
			"posts/index",
			"posts/group_list",
			"posts/profile",
			"posts/post_detail",
			"posts/create_post",
		),
	}
}

// listingData is the template context shared by the three feed pages.
type listingData struct {
	CurrentUser *models.User
	Listing     *services.PostListing
	Group       *models.Group
	Author      *models.User
	PostCount   int
}

// postFormData is the template context for the create/edit form.
type postFormData struct {
	CurrentUser *models.User
	Groups      []*models.Group
	Text        string
	GroupID     int
	Error       string
	IsEdit      bool
	Post        *models.Post
}

// Index handles the global feed
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page := parsePageParam(r)
	listing, err := pc.postService.ListPosts(page)
	if err != nil {
		http.Error(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}
	render(w, pc.templates, "posts/index", listingData{
		CurrentUser: currentUser(r),
		Listing:     listing,
	})
}

// GroupPosts handles a group's feed, looked up by slug
func (pc *PostController) GroupPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	page := parsePageParam(r)

	group, listing, err := pc.postService.ListGroupPosts(slug, page)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}
	render(w, pc.templates, "posts/group_list", listingData{
		CurrentUser: currentUser(r),
		Listing:     listing,
		Group:       group,
	})
}

// Profile handles an author's feed together with their total post count
func (pc *PostController) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	page := parsePageParam(r)

	author, count, listing, err := pc.postService.ListProfile(username, page)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}
	render(w, pc.templates, "posts/profile", listingData{
		CurrentUser: currentUser(r),
		Listing:     listing,
		Author:      author,
		PostCount:   count,
	})
}

// Show handles a single post's detail page
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, total, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}

	data := struct {
		CurrentUser *models.User
		Post        *models.Post
		PostCount   int
	}{
		CurrentUser: currentUser(r),
		Post:        post,
		PostCount:   total,
	}
	render(w, pc.templates, "posts/post_detail", data)
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	pc.renderForm(w, r, postFormData{})
}

// Create handles the create-post submission. The author is always the
// signed-in account; any author value in the payload is ignored.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	text := r.FormValue("text")
	groupID := parseGroupParam(r)

	post, err := pc.postService.CreatePost(user.ID, text, groupID)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			pc.renderForm(w, r, postFormData{Text: text, GroupID: groupID, Error: verr.Message})
			return
		}
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%d", post.ID), http.StatusSeeOther)
}

// EditForm displays the edit form for an existing post. Anyone but the
// author is sent back to the detail page without comment.
func (pc *PostController) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	post, _, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}
	if post.AuthorID != currentUser(r).ID {
		http.Redirect(w, r, fmt.Sprintf("/posts/%d", post.ID), http.StatusFound)
		return
	}
	pc.renderForm(w, r, postFormData{
		Text:    post.Text,
		GroupID: post.GroupID,
		IsEdit:  true,
		Post:    post,
	})
}

// Edit handles the edit-post submission
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}
	user := currentUser(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	text := r.FormValue("text")
	groupID := parseGroupParam(r)

	post, err := pc.postService.EditPost(id, user.ID, text, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		// Silent denial: a non-author is redirected to the read-only view.
		if errors.Is(err, services.ErrNotAuthor) {
			http.Redirect(w, r, fmt.Sprintf("/posts/%d", id), http.StatusFound)
			return
		}
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			existing, _, gerr := pc.postService.GetPost(id)
			if gerr != nil {
				http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
				return
			}
			pc.renderForm(w, r, postFormData{
				Text:    text,
				GroupID: groupID,
				Error:   verr.Message,
				IsEdit:  true,
				Post:    existing,
			})
			return
		}
		http.Error(w, "Failed to update post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%d", post.ID), http.StatusSeeOther)
}

// renderForm fills in the group selector and renders the post form
func (pc *PostController) renderForm(w http.ResponseWriter, r *http.Request, data postFormData) {
	groups, err := pc.groupService.ListGroups()
	if err != nil {
		http.Error(w, "Failed to fetch groups", http.StatusInternalServerError)
		return
	}
	data.CurrentUser = currentUser(r)
	data.Groups = groups
	render(w, pc.templates, "posts/create_post", data)
}

func parsePageParam(r *http.Request) int {
	return pagination.ParseNumber(r.URL.Query().Get("page"))
}

// parseGroupParam reads the optional group selector; empty or invalid
// values mean no group.
func parseGroupParam(r *http.Request) int {
	id, err := strconv.Atoi(r.FormValue("group"))
	if err != nil || id < 0 {
		return 0
	}
	return id
}
