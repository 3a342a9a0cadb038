package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"leaguehub/internal/http-api/dto"
	"leaguehub/internal/http-api/middleware"
	"leaguehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 15

type ForumHandler struct {
	forumService service.ForumService
	log          *slog.Logger
}

func NewForumHandler(forumService service.ForumService, log *slog.Logger) *ForumHandler {
	return &ForumHandler{forumService: forumService, log: log}
}

// RegisterRoutes registers forum routes on the given group.
func (h *ForumHandler) RegisterRoutes(router *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	threads := router.Group("/threads")
	{
		// Public routes
		threads.GET("", h.List)
		threads.GET("/latest", h.Latest)
		threads.GET("/:id", h.Get)

		// Write routes
		threads.POST("", authRequired, h.Create)
		threads.POST("/:id/replies", authRequired, h.AddReply)
		threads.DELETE("/:id", authRequired, adminRequired, h.Delete)
		threads.DELETE("/:id/replies/:rid", authRequired, h.DeleteReply)
	}
}

// List returns one page of threads ordered by latest activity.
// GET /api/forum/threads?page&limit
func (h *ForumHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil {
		limit = defaultPageSize
	}

	result, err := h.forumService.ListThreads(page, limit)
	if err != nil {
		serverError(c, h.log, "thread listing failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Latest returns the five most recently active threads for the sidebar.
// GET /api/forum/threads/latest
func (h *ForumHandler) Latest(c *gin.Context) {
	threads, err := h.forumService.ListLatest(time.Now())
	if err != nil {
		serverError(c, h.log, "latest threads failed", err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

// Get returns a thread and all of its replies.
// GET /api/forum/threads/:id
func (h *ForumHandler) Get(c *gin.Context) {
	threadID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Thread not found"})
		return
	}

	detail, err := h.forumService.GetThread(threadID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Thread not found"})
			return
		}
		serverError(c, h.log, "thread lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create opens a new thread.
// POST /api/forum/threads
func (h *ForumHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	var req dto.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and body are required"})
		return
	}

	thread, err := h.forumService.CreateThread(userID.(string), req.Title, req.Body)
	if err != nil {
		if service.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		serverError(c, h.log, "thread creation failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"id":      thread.ID,
		"message": "Thread created successfully",
	})
}

// AddReply appends a reply, optionally quoting another reply.
// POST /api/forum/threads/:id/replies
func (h *ForumHandler) AddReply(c *gin.Context) {
	threadID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Thread not found"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	var req dto.AddReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Reply body is required"})
		return
	}

	err = h.forumService.AddReply(threadID, userID.(string), req.Body, req.ParentReplyID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Thread not found"})
		case errors.Is(err, service.ErrThreadLocked):
			c.JSON(http.StatusForbidden, gin.H{"message": "Thread is locked"})
		case service.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			serverError(c, h.log, "reply creation failed", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Reply added successfully"})
}

// Delete removes a thread and, by cascade, its replies. Admin only.
// DELETE /api/forum/threads/:id
func (h *ForumHandler) Delete(c *gin.Context) {
	threadID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Thread not found"})
		return
	}

	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	err = h.forumService.DeleteThread(threadID, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Thread not found"})
		default:
			serverError(c, h.log, "thread deletion failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Thread deleted successfully"})
}

// DeleteReply removes a reply. Allowed for the reply's author or an admin.
// DELETE /api/forum/threads/:id/replies/:rid
func (h *ForumHandler) DeleteReply(c *gin.Context) {
	threadID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Reply not found"})
		return
	}
	replyID, err := strconv.ParseInt(c.Param("rid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Reply not found"})
		return
	}

	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	err = h.forumService.DeleteReply(threadID, replyID, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": "You cannot delete this reply"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Reply not found"})
		default:
			serverError(c, h.log, "reply deletion failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Reply deleted successfully"})
}
