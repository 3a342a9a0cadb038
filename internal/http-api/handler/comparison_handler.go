package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"leaguehub/internal/http-api/dto"
	"leaguehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ComparisonHandler struct {
	comparisonService service.ComparisonService
	log               *slog.Logger
}

func NewComparisonHandler(comparisonService service.ComparisonService, log *slog.Logger) *ComparisonHandler {
	return &ComparisonHandler{comparisonService: comparisonService, log: log}
}

// RegisterRoutes registers the comparison poll routes.
func (h *ComparisonHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.GET("/nik-levitan", h.Summary)
	router.POST("/nik-levitan/vote", authRequired, h.Vote)
}

// Summary returns the aggregated poll results.
// GET /api/comparison/nik-levitan
func (h *ComparisonHandler) Summary(c *gin.Context) {
	summary, err := h.comparisonService.GetSummary()
	if err != nil {
		serverError(c, h.log, "comparison summary failed", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Vote records the authenticated user's one-time ballot.
// POST /api/comparison/nik-levitan/vote
func (h *ComparisonHandler) Vote(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	var req dto.ComparisonVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid vote payload."})
		return
	}

	choices := service.ComparisonChoices{
		"game_iq":     req.GameIQ,
		"skill":       req.Skill,
		"positioning": req.Positioning,
		"finishing":   req.Finishing,
		"defending":   req.Defending,
	}

	err := h.comparisonService.CastVote(userID.(string), choices)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyVoted):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You already voted in this comparison."})
		case service.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			serverError(c, h.log, "comparison vote failed", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vote recorded successfully."})
}
