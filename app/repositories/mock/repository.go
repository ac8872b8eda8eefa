package mock

import (
	"sort"
	"sync"

	"yatube/app/models"
	"yatube/app/repositories"
)

type UserRepository struct {
	users  map[int]*models.User
	nextID int
	mutex  sync.RWMutex
}

type GroupRepository struct {
	groups map[int]*models.Group
	nextID int
	mutex  sync.RWMutex
}

type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		groups: make(map[int]*models.Group),
		nextID: 1,
	}
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return repositories.ErrUsernameTaken
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.BeforeCreate()
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// GroupRepository implementation

func (m *GroupRepository) Create(group *models.Group) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, g := range m.groups {
		if g.Slug == group.Slug {
			return repositories.ErrSlugTaken
		}
	}
	group.ID = m.nextID
	m.nextID++
	m.groups[group.ID] = group
	return nil
}

func (m *GroupRepository) GetByID(id int) (*models.Group, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	group, exists := m.groups[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return group, nil
}

func (m *GroupRepository) GetBySlug(slug string) (*models.Group, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, group := range m.groups {
		if group.Slug == slug {
			return group, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *GroupRepository) List() ([]*models.Group, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var groups []*models.Group
	for id := 1; id < m.nextID; id++ {
		if group, exists := m.groups[id]; exists {
			groups = append(groups, group)
		}
	}
	return groups, nil
}

func (m *GroupRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.groups[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.groups, id)
	return nil
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	return m.listWhere(nil, limit, offset)
}

func (m *PostRepository) ListByGroup(groupID, limit, offset int) ([]*models.Post, error) {
	return m.listWhere(func(p *models.Post) bool { return p.GroupID == groupID }, limit, offset)
}

func (m *PostRepository) ListByAuthor(authorID, limit, offset int) ([]*models.Post, error) {
	return m.listWhere(func(p *models.Post) bool { return p.AuthorID == authorID }, limit, offset)
}

func (m *PostRepository) Count() (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.posts), nil
}

func (m *PostRepository) CountByGroup(groupID int) (int, error) {
	posts, err := m.listWhere(func(p *models.Post) bool { return p.GroupID == groupID }, -1, 0)
	if err != nil {
		return 0, err
	}
	return len(posts), nil
}

func (m *PostRepository) CountByAuthor(authorID int) (int, error) {
	posts, err := m.listWhere(func(p *models.Post) bool { return p.AuthorID == authorID }, -1, 0)
	if err != nil {
		return 0, err
	}
	return len(posts), nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) DeleteByAuthor(authorID int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for id, post := range m.posts {
		if post.AuthorID == authorID {
			delete(m.posts, id)
		}
	}
	return nil
}

func (m *PostRepository) ClearGroup(groupID int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, post := range m.posts {
		if post.GroupID == groupID {
			post.GroupID = 0
		}
	}
	return nil
}

func (m *PostRepository) listWhere(match func(*models.Post) bool, limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		if match == nil || match(post) {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].PubDate.Equal(posts[j].PubDate) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].PubDate.After(posts[j].PubDate)
	})

	if limit < 0 {
		return posts, nil
	}
	if offset >= len(posts) {
		return []*models.Post{}, nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], nil
}
