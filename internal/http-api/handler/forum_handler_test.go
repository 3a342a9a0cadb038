package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leaguehub/internal/http-api/dto"
	"leaguehub/internal/http-api/models"
	"leaguehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockForumService mocks the ForumService interface
type MockForumService struct {
	mock.Mock
}

func (m *MockForumService) CreateThread(userID, title, body string) (*models.Thread, error) {
	args := m.Called(userID, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Thread), args.Error(1)
}

func (m *MockForumService) ListThreads(page, pageSize int) (*dto.ThreadListResponse, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ThreadListResponse), args.Error(1)
}

func (m *MockForumService) GetThread(threadID int64) (*dto.ThreadDetailResponse, error) {
	args := m.Called(threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ThreadDetailResponse), args.Error(1)
}

func (m *MockForumService) AddReply(threadID int64, userID, body string, parentReplyID *int64) error {
	args := m.Called(threadID, userID, body, parentReplyID)
	return args.Error(0)
}

func (m *MockForumService) DeleteThread(threadID int64, actor service.Actor) error {
	args := m.Called(threadID, actor)
	return args.Error(0)
}

func (m *MockForumService) DeleteReply(threadID, replyID int64, actor service.Actor) error {
	args := m.Called(threadID, replyID, actor)
	return args.Error(0)
}

func (m *MockForumService) ListLatest(now time.Time) ([]dto.LatestThreadResponse, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LatestThreadResponse), args.Error(1)
}

func (m *MockForumService) ReconcileReplyCounts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func authContext(userID string, isAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", "testuser")
		c.Set("isAdmin", isAdmin)
	}
}

func TestCreateThread_Created(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.POST("/threads", authContext("user-123", false), h.Create)

	mockForum.On("CreateThread", "user-123", "Match thread", "Who wins tonight?").
		Return(&models.Thread{ID: 42}, nil)

	w := postJSON(router, "/threads", dto.CreateThreadRequest{
		Title: "Match thread",
		Body:  "Who wins tonight?",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["ok"])
	assert.Equal(t, float64(42), response["id"])
	mockForum.AssertExpectations(t)
}

func TestCreateThread_TitleTooLong(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.POST("/threads", authContext("user-123", false), h.Create)

	mockForum.On("CreateThread", "user-123", mock.Anything, mock.Anything).
		Return(nil, service.NewValidationError("Title must be at most 80 characters."))

	w := postJSON(router, "/threads", dto.CreateThreadRequest{Title: "long", Body: "body"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Title must be at most 80 characters.", response["message"])
}

func TestCreateThread_Unauthenticated(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.POST("/threads", h.Create)

	w := postJSON(router, "/threads", dto.CreateThreadRequest{Title: "t", Body: "b"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockForum.AssertNotCalled(t, "CreateThread", mock.Anything, mock.Anything, mock.Anything)
}

func TestListThreads_PassesPagination(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.GET("/threads", h.List)

	mockForum.On("ListThreads", 2, 10).Return(&dto.ThreadListResponse{
		Threads:    []models.ThreadSummary{},
		Total:      23,
		Page:       2,
		PageSize:   10,
		TotalPages: 3,
	}, nil)

	req, _ := http.NewRequest("GET", "/threads?page=2&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ThreadListResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(23), response.Total)
	assert.Equal(t, 3, response.TotalPages)
	mockForum.AssertExpectations(t)
}

func TestListThreads_DefaultsOnGarbageQuery(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.GET("/threads", h.List)

	mockForum.On("ListThreads", 1, defaultPageSize).Return(&dto.ThreadListResponse{
		Threads: []models.ThreadSummary{}, Total: 0, Page: 1, PageSize: defaultPageSize, TotalPages: 1,
	}, nil)

	req, _ := http.NewRequest("GET", "/threads?page=abc&limit=xyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockForum.AssertExpectations(t)
}

func TestGetThread_NotFound(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.GET("/threads/:id", h.Get)

	mockForum.On("GetThread", int64(99)).Return(nil, service.ErrNotFound)

	req, _ := http.NewRequest("GET", "/threads/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Thread not found", response["message"])
}

func TestGetThread_BadID(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.GET("/threads/:id", h.Get)

	req, _ := http.NewRequest("GET", "/threads/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockForum.AssertNotCalled(t, "GetThread", mock.Anything)
}

func TestAddReply_WithParent(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.POST("/threads/:id/replies", authContext("user-123", false), h.AddReply)

	parentID := int64(7)
	mockForum.On("AddReply", int64(5), "user-123", "Agreed.", &parentID).Return(nil)

	w := postJSON(router, "/threads/5/replies", dto.AddReplyRequest{
		Body:          "Agreed.",
		ParentReplyID: &parentID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	mockForum.AssertExpectations(t)
}

func TestAddReply_LockedThread(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.POST("/threads/:id/replies", authContext("user-123", false), h.AddReply)

	mockForum.On("AddReply", int64(5), "user-123", "Agreed.", (*int64)(nil)).
		Return(service.ErrThreadLocked)

	w := postJSON(router, "/threads/5/replies", dto.AddReplyRequest{Body: "Agreed."})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Thread is locked", response["message"])
}

func TestDeleteThread_RequiresAdmin(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.DELETE("/threads/:id", authContext("user-123", false), h.Delete)

	mockForum.On("DeleteThread", int64(5), service.Actor{UserID: "user-123", IsAdmin: false}).
		Return(service.ErrForbidden)

	req, _ := http.NewRequest("DELETE", "/threads/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteThread_AdminSucceeds(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.DELETE("/threads/:id", authContext("admin-1", true), h.Delete)

	mockForum.On("DeleteThread", int64(5), service.Actor{UserID: "admin-1", IsAdmin: true}).
		Return(nil)

	req, _ := http.NewRequest("DELETE", "/threads/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockForum.AssertExpectations(t)
}

func TestDeleteReply_NotOwner(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.DELETE("/threads/:id/replies/:rid", authContext("user-456", false), h.DeleteReply)

	mockForum.On("DeleteReply", int64(5), int64(9), service.Actor{UserID: "user-456", IsAdmin: false}).
		Return(service.ErrForbidden)

	req, _ := http.NewRequest("DELETE", "/threads/5/replies/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "You cannot delete this reply", response["message"])
}

func TestLatest_ReturnsFlags(t *testing.T) {
	mockForum := new(MockForumService)
	h := NewForumHandler(mockForum, testLogger())
	router := setupRouter()
	router.GET("/threads/latest", h.Latest)

	mockForum.On("ListLatest", mock.AnythingOfType("time.Time")).Return([]dto.LatestThreadResponse{
		{ID: 1, Title: "Hot one", ReplyCount: 14, IsHot: true, IsNew: false},
	}, nil)

	req, _ := http.NewRequest("GET", "/threads/latest", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.LatestThreadResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 1)
	assert.True(t, response[0].IsHot)
	assert.False(t, response[0].IsNew)
}
