package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leaguehub/internal/http-api/models"
	"leaguehub/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVoteService mocks the VoteService interface
type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) CastLeagueVote(userID string, leagueID int64, today time.Time) error {
	args := m.Called(userID, leagueID, today)
	return args.Error(0)
}

func (m *MockVoteService) GetLeagueStandings(scope service.StandingsScope) ([]models.LeagueStanding, error) {
	args := m.Called(scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeagueStanding), args.Error(1)
}

func TestTop5_ReturnsStandings(t *testing.T) {
	mockVote := new(MockVoteService)
	h := NewLeagueHandler(mockVote, testLogger())
	router := setupRouter()
	router.GET("/ranking", h.Top5)

	mockVote.On("GetLeagueStandings", service.StandingsTop5).Return([]models.LeagueStanding{
		{ID: 1, Name: "Premier League", Votes: 12},
		{ID: 3, Name: "La Liga", Votes: 9},
	}, nil)

	req, _ := http.NewRequest("GET", "/ranking", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []models.LeagueStanding
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
	assert.Equal(t, int64(12), response[0].Votes)
	mockVote.AssertExpectations(t)
}

func TestFullRanking_UsesFullScope(t *testing.T) {
	mockVote := new(MockVoteService)
	h := NewLeagueHandler(mockVote, testLogger())
	router := setupRouter()
	router.GET("/ranking/full", h.FullRanking)

	mockVote.On("GetLeagueStandings", service.StandingsFull).Return([]models.LeagueStanding{}, nil)

	req, _ := http.NewRequest("GET", "/ranking/full", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockVote.AssertExpectations(t)
}

func TestVote_Success(t *testing.T) {
	mockVote := new(MockVoteService)
	h := NewLeagueHandler(mockVote, testLogger())
	router := setupRouter()
	router.POST("/:id/vote", authContext("user-123", false), h.Vote)

	mockVote.On("CastLeagueVote", "user-123", int64(3), mock.AnythingOfType("time.Time")).
		Return(nil)

	w := postJSON(router, "/3/vote", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Vote recorded successfully.", response["message"])
	mockVote.AssertExpectations(t)
}

func TestVote_AlreadyVotedToday(t *testing.T) {
	mockVote := new(MockVoteService)
	h := NewLeagueHandler(mockVote, testLogger())
	router := setupRouter()
	router.POST("/:id/vote", authContext("user-123", false), h.Vote)

	mockVote.On("CastLeagueVote", "user-123", int64(3), mock.AnythingOfType("time.Time")).
		Return(service.ErrAlreadyVoted)

	w := postJSON(router, "/3/vote", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "You already voted today. Come back tomorrow!", response["message"])
}

func TestVote_UnknownLeague(t *testing.T) {
	mockVote := new(MockVoteService)
	h := NewLeagueHandler(mockVote, testLogger())
	router := setupRouter()
	router.POST("/:id/vote", authContext("user-123", false), h.Vote)

	mockVote.On("CastLeagueVote", "user-123", int64(99), mock.AnythingOfType("time.Time")).
		Return(service.ErrNotFound)

	w := postJSON(router, "/99/vote", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "League not found.", response["message"])
}

func TestVote_BadLeagueID(t *testing.T) {
	mockVote := new(MockVoteService)
	h := NewLeagueHandler(mockVote, testLogger())
	router := setupRouter()
	router.POST("/:id/vote", authContext("user-123", false), h.Vote)

	w := postJSON(router, "/abc/vote", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockVote.AssertNotCalled(t, "CastLeagueVote", mock.Anything, mock.Anything, mock.Anything)
}
