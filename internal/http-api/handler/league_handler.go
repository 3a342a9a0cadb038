package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"leaguehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type LeagueHandler struct {
	voteService service.VoteService
	log         *slog.Logger
}

func NewLeagueHandler(voteService service.VoteService, log *slog.Logger) *LeagueHandler {
	return &LeagueHandler{voteService: voteService, log: log}
}

// RegisterRoutes registers league ranking and voting routes.
func (h *LeagueHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.GET("/ranking", h.Top5)
	router.GET("/ranking/full", h.FullRanking)
	router.POST("/:id/vote", authRequired, h.Vote)
}

// Top5 returns the five leading leagues by all-time votes.
// GET /api/leagues/ranking
func (h *LeagueHandler) Top5(c *gin.Context) {
	h.standings(c, service.StandingsTop5)
}

// FullRanking returns the complete standings table.
// GET /api/leagues/ranking/full
func (h *LeagueHandler) FullRanking(c *gin.Context) {
	h.standings(c, service.StandingsFull)
}

func (h *LeagueHandler) standings(c *gin.Context, scope service.StandingsScope) {
	rows, err := h.voteService.GetLeagueStandings(scope)
	if err != nil {
		serverError(c, h.log, "standings query failed", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Vote records the authenticated user's daily vote for a league.
// POST /api/leagues/:id/vote
func (h *LeagueHandler) Vote(c *gin.Context) {
	leagueID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid league id."})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	err = h.voteService.CastLeagueVote(userID.(string), leagueID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "League not found."})
		case errors.Is(err, service.ErrAlreadyVoted):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You already voted today. Come back tomorrow!"})
		default:
			serverError(c, h.log, "league vote failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded successfully."})
}
