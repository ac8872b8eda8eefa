package routes

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"yatube/app/models"
	"yatube/app/repositories"
	"yatube/app/services"

	"github.com/alexedwards/scs/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// viewsBase points template loading at the real app/views directory.
const viewsBase = "../.."

type testApp struct {
	server *httptest.Server
	db     *badger.DB

	users  *services.UserService
	groups *services.GroupService
	posts  *services.PostService
}

func setupTestApp(t *testing.T) *testApp {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	session := scs.New()
	handler := SetupRoutes(db, session, viewsBase)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	userRepo := repositories.NewBadgerUserRepository(db)
	groupRepo := repositories.NewBadgerGroupRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	return &testApp{
		server: server,
		db:     db,
		users:  services.NewUserService(userRepo, postRepo),
		groups: services.NewGroupService(groupRepo, postRepo),
		posts:  services.NewPostService(postRepo, userRepo, groupRepo),
	}
}

// client returns an HTTP client with its own cookie jar, representing one
// browser session.
func (a *testApp) client(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

// noRedirectClient is like client but stops at the first redirect so tests
// can assert on Location headers.
func (a *testApp) noRedirectClient(t *testing.T) *http.Client {
	c := a.client(t)
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}

func (a *testApp) get(t *testing.T, c *http.Client, path string) (*http.Response, string) {
	resp, err := c.Get(a.server.URL + path)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (a *testApp) postForm(t *testing.T, c *http.Client, path string, form url.Values) (*http.Response, string) {
	resp, err := c.PostForm(a.server.URL+path, form)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

// signup registers an account through the web flow, leaving the client
// signed in.
func (a *testApp) signup(t *testing.T, c *http.Client, username, password string) {
	resp, _ := a.postForm(t, c, "/auth/signup", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (a *testApp) seedUser(t *testing.T, username string) *models.User {
	user, err := a.users.Register(username, "", "test-password")
	require.NoError(t, err)
	return user
}

func (a *testApp) seedGroup(t *testing.T, title, slug string) *models.Group {
	group, err := a.groups.CreateGroup(title, slug, "Test group description")
	require.NoError(t, err)
	return group
}

func (a *testApp) seedPost(t *testing.T, author *models.User, group *models.Group, text string, at time.Time) *models.Post {
	groupID := 0
	if group != nil {
		groupID = group.ID
	}
	post := &models.Post{Text: text, AuthorID: author.ID, GroupID: groupID, PubDate: at}
	repo := repositories.NewBadgerPostRepository(a.db)
	require.NoError(t, repo.Create(post))
	return post
}
