package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendalabs/contacts-api/internal/contact"
	"github.com/agendalabs/contacts-api/internal/pkg/logger"
	"github.com/agendalabs/contacts-api/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// stubRepo is a minimal contact.Repository double for handler tests.
type stubRepo struct {
	records  []contact.Record
	insertID int64
	affected int64
	calls    int
}

func (s *stubRepo) FetchAll(ctx context.Context) ([]contact.Record, error) {
	s.calls++
	return s.records, nil
}

func (s *stubRepo) FetchByID(ctx context.Context, id int64) (contact.Record, error) {
	s.calls++
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return contact.Record{}, store.ErrNotFound
}

func (s *stubRepo) Insert(ctx context.Context, m *contact.Contact) (int64, error) {
	s.calls++
	return s.insertID, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, m *contact.Contact) (int64, error) {
	s.calls++
	return s.affected, nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) (int64, error) {
	s.calls++
	return s.affected, nil
}

func newTestRouter(repo *stubRepo) *gin.Engine {
	srv := NewServer(contact.NewService(repo), nil)

	router := gin.New()
	router.NoRoute(RouteNotFound)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/contacts", srv.ListContacts)
		v1.GET("/contacts/:id", srv.GetContact)
		v1.POST("/contacts", srv.CreateContact)
		v1.PUT("/contacts/:id", srv.UpdateContact)
		v1.DELETE("/contacts/:id", srv.DeleteContact)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestListContacts(t *testing.T) {
	repo := &stubRepo{records: []contact.Record{{
		ID: 1, Name: "Ana", Lastname: "Diaz", Email: "ana@x.com", Phone: "+14155551234",
	}}}
	router := newTestRouter(repo)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/contacts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Status.Success)
	require.NotNil(t, env.Data)
}

func TestGetContact_NotFound(t *testing.T) {
	router := newTestRouter(&stubRepo{})

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/contacts/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Status.Success)
	assert.Contains(t, env.Status.Message, "99")
	assert.Nil(t, env.Data)
}

func TestGetContact_InvalidID(t *testing.T) {
	repo := &stubRepo{}
	router := newTestRouter(repo)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/contacts/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Status.Success)
	assert.Zero(t, repo.calls)
}

func TestCreateContact(t *testing.T) {
	repo := &stubRepo{insertID: 5}
	router := newTestRouter(repo)

	body := `{"name":"Ana","lastname":"Diaz","email":"ana@x.com","phone":"+14155551234"}`
	w, env := doRequest(t, router, http.MethodPost, "/api/v1/contacts", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Status.Success)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(5), data["id"])
}

func TestCreateContact_MissingRequiredField(t *testing.T) {
	repo := &stubRepo{}
	router := newTestRouter(repo)

	body := `{"name":"Ana","lastname":"Diaz","email":"ana@x.com"}`
	w, env := doRequest(t, router, http.MethodPost, "/api/v1/contacts", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Status.Success)
	assert.Contains(t, env.Status.Message, "phone")
	assert.Zero(t, repo.calls, "validation failures must not reach the repository")
}

func TestCreateContact_MalformedJSON(t *testing.T) {
	router := newTestRouter(&stubRepo{})

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/contacts", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Status.Success)
}

func TestUpdateContact(t *testing.T) {
	repo := &stubRepo{
		records: []contact.Record{{
			ID: 7, Name: "Ana", Lastname: "Diaz", Email: "ana@x.com", Phone: "+14155551234",
		}},
		affected: 1,
	}
	router := newTestRouter(repo)

	w, env := doRequest(t, router, http.MethodPut, "/api/v1/contacts/7", `{"company":"Acme"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Status.Success)
	require.NotNil(t, env.Data)
}

func TestUpdateContact_EmptyPayload(t *testing.T) {
	repo := &stubRepo{}
	router := newTestRouter(repo)

	w, env := doRequest(t, router, http.MethodPut, "/api/v1/contacts/7", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Status.Success)
	assert.Zero(t, repo.calls)
}

func TestUpdateContact_InvalidFieldValue(t *testing.T) {
	router := newTestRouter(&stubRepo{})

	w, env := doRequest(t, router, http.MethodPut, "/api/v1/contacts/7", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Status.Message, "email")
}

func TestDeleteContact(t *testing.T) {
	repo := &stubRepo{affected: 1}
	router := newTestRouter(repo)

	w, env := doRequest(t, router, http.MethodDelete, "/api/v1/contacts/7", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Status.Success)
	assert.Nil(t, env.Data)
}

func TestDeleteContact_NotFound(t *testing.T) {
	repo := &stubRepo{affected: 0}
	router := newTestRouter(repo)

	w, env := doRequest(t, router, http.MethodDelete, "/api/v1/contacts/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Status.Success)
}

func TestRouteNotFound(t *testing.T) {
	router := newTestRouter(&stubRepo{})

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/unknown", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Status.Success)
	assert.Equal(t, "The requested route does not exist.", env.Status.Message)
}
