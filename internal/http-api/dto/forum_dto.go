package dto

import (
	"time"

	"leaguehub/internal/http-api/models"
)

// CreateThreadRequest: payload for opening a new thread. Validation
// (trimming, 80-char title cap) happens in the service so the error
// messages stay consistent with the public contract.
type CreateThreadRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// AddReplyRequest: payload for replying to a thread, optionally quoting
// an existing reply.
type AddReplyRequest struct {
	Body          string `json:"body"`
	ParentReplyID *int64 `json:"parentReplyId"`
}

// ThreadListResponse: one page of the activity-ordered thread listing.
type ThreadListResponse struct {
	Threads    []models.ThreadSummary `json:"threads"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"pageSize"`
	TotalPages int                    `json:"totalPages"`
}

// ThreadResponse: a single thread with its author's username.
type ThreadResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ReplyCount int       `json:"reply_count"`
	IsPinned   bool      `json:"is_pinned"`
	IsLocked   bool      `json:"is_locked"`
	CreatedAt  time.Time `json:"created_at"`
	Author     string    `json:"author"`
}

// ReplyResponse: a reply with its author, plus the quoted parent's
// author and a truncated snippet of the parent's body when nested.
// UserID is included so the client can decide whether the viewer may
// delete the reply.
type ReplyResponse struct {
	ID            int64     `json:"id"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	ParentReplyID *int64    `json:"parent_reply_id"`
	UserID        string    `json:"user_id"`
	Author        string    `json:"author"`
	ParentAuthor  *string   `json:"parent_author"`
	ParentSnippet *string   `json:"parent_snippet"`
}

// ThreadDetailResponse: a thread and all of its replies in creation order.
type ThreadDetailResponse struct {
	Thread  ThreadResponse  `json:"thread"`
	Replies []ReplyResponse `json:"replies"`
}

// LatestThreadResponse: sidebar item for the most recently active
// threads, flagged hot (> 10 replies) and new (reply within 24h).
type LatestThreadResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	ReplyCount      int        `json:"reply_count"`
	LastReplyAt     *time.Time `json:"last_reply_at"`
	LastReplyAuthor *string    `json:"last_reply_author"`
	IsHot           bool       `json:"is_hot"`
	IsNew           bool       `json:"is_new"`
}
