package service

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"leaguehub/internal/http-api/dto"
	"leaguehub/internal/http-api/models"
	"leaguehub/internal/http-api/repository"

	"gorm.io/gorm"
)

const (
	maxTitleLen       = 80
	minPageSize       = 1
	maxPageSize       = 50
	parentSnippetLen  = 120
	latestThreadCount = 5
	hotReplyThreshold = 10
	newReplyWindow    = 24 * time.Hour
)

// Actor is the viewer's identity, passed explicitly into every
// permission decision instead of read from ambient state.
type Actor struct {
	UserID  string
	IsAdmin bool
}

type ForumService interface {
	CreateThread(userID, title, body string) (*models.Thread, error)
	ListThreads(page, pageSize int) (*dto.ThreadListResponse, error)
	GetThread(threadID int64) (*dto.ThreadDetailResponse, error)
	AddReply(threadID int64, userID, body string, parentReplyID *int64) error
	DeleteThread(threadID int64, actor Actor) error
	DeleteReply(threadID, replyID int64, actor Actor) error
	ListLatest(now time.Time) ([]dto.LatestThreadResponse, error)
	// ReconcileReplyCounts heals reply_count drift from partial
	// failures; returns the number of corrected threads.
	ReconcileReplyCounts() (int64, error)
}

type forumService struct {
	threadRepo repository.ThreadRepository
	replyRepo  repository.ReplyRepository
}

func NewForumService(threadRepo repository.ThreadRepository, replyRepo repository.ReplyRepository) ForumService {
	return &forumService{
		threadRepo: threadRepo,
		replyRepo:  replyRepo,
	}
}

func (s *forumService) CreateThread(userID, title, body string) (*models.Thread, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	if title == "" || body == "" {
		return nil, NewValidationError("Title and body are required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, NewValidationError("Title must be at most 80 characters.")
	}

	thread := &models.Thread{
		UserID: userID,
		Title:  title,
		Body:   body,
	}

	if err := s.threadRepo.Create(thread); err != nil {
		return nil, err
	}

	return thread, nil
}

func (s *forumService) ListThreads(page, pageSize int) (*dto.ThreadListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < minPageSize {
		pageSize = minPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	threads, total, err := s.threadRepo.List(page, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	if threads == nil {
		threads = []models.ThreadSummary{}
	}

	return &dto.ThreadListResponse{
		Threads:    threads,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *forumService) GetThread(threadID int64) (*dto.ThreadDetailResponse, error) {
	thread, err := s.threadRepo.GetByID(threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	replies, err := s.replyRepo.ListByThread(threadID)
	if err != nil {
		return nil, err
	}

	replyResponses := make([]dto.ReplyResponse, 0, len(replies))
	for _, reply := range replies {
		replyResponses = append(replyResponses, dto.ReplyResponse{
			ID:            reply.ID,
			Body:          reply.Body,
			CreatedAt:     reply.CreatedAt,
			ParentReplyID: reply.ParentReplyID,
			UserID:        reply.UserID,
			Author:        reply.Author,
			ParentAuthor:  reply.ParentAuthor,
			ParentSnippet: snippet(reply.ParentBody),
		})
	}

	return &dto.ThreadDetailResponse{
		Thread: dto.ThreadResponse{
			ID:         thread.ID,
			Title:      thread.Title,
			Body:       thread.Body,
			ReplyCount: thread.ReplyCount,
			IsPinned:   thread.IsPinned,
			IsLocked:   thread.IsLocked,
			CreatedAt:  thread.CreatedAt,
			Author:     thread.User.Username,
		},
		Replies: replyResponses,
	}, nil
}

// snippet truncates a quoted parent body to its first 120 runes,
// marking the cut with an ellipsis.
func snippet(body *string) *string {
	if body == nil {
		return nil
	}
	runes := []rune(*body)
	if len(runes) <= parentSnippetLen {
		return body
	}
	truncated := string(runes[:parentSnippetLen]) + "…"
	return &truncated
}

func (s *forumService) AddReply(threadID int64, userID, body string, parentReplyID *int64) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return NewValidationError("Reply body is required")
	}

	thread, err := s.threadRepo.GetByID(threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if thread.IsLocked {
		return ErrThreadLocked
	}

	// A quoted parent must live in the same thread.
	if parentReplyID != nil {
		parent, err := s.replyRepo.GetByID(*parentReplyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewValidationError("Parent reply does not belong to this thread.")
			}
			return err
		}
		if parent.ThreadID != threadID {
			return NewValidationError("Parent reply does not belong to this thread.")
		}
	}

	reply := &models.Reply{
		ThreadID:      threadID,
		ParentReplyID: parentReplyID,
		UserID:        userID,
		Body:          body,
	}

	if err := s.replyRepo.Create(reply); err != nil {
		return err
	}

	// counter bump is arithmetic in the store, safe under concurrent replies
	return s.threadRepo.IncrementReplyCount(threadID)
}

func (s *forumService) DeleteThread(threadID int64, actor Actor) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}

	if err := s.threadRepo.Delete(threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

func (s *forumService) DeleteReply(threadID, replyID int64, actor Actor) error {
	reply, err := s.replyRepo.GetByID(replyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if reply.ThreadID != threadID {
		return ErrNotFound
	}

	if !actor.IsAdmin && reply.UserID != actor.UserID {
		return ErrForbidden
	}

	if err := s.replyRepo.Delete(replyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.threadRepo.DecrementReplyCount(threadID)
}

func (s *forumService) ListLatest(now time.Time) ([]dto.LatestThreadResponse, error) {
	threads, err := s.threadRepo.Latest(latestThreadCount)
	if err != nil {
		return nil, err
	}

	latest := make([]dto.LatestThreadResponse, 0, len(threads))
	for _, t := range threads {
		isNew := false
		if t.LastReplyAt != nil && now.Sub(*t.LastReplyAt) < newReplyWindow {
			isNew = true
		}
		latest = append(latest, dto.LatestThreadResponse{
			ID:              t.ID,
			Title:           t.Title,
			ReplyCount:      t.ReplyCount,
			LastReplyAt:     t.LastReplyAt,
			LastReplyAuthor: t.LastReplyAuthor,
			IsHot:           t.ReplyCount > hotReplyThreshold,
			IsNew:           isNew,
		})
	}

	return latest, nil
}

func (s *forumService) ReconcileReplyCounts() (int64, error) {
	return s.threadRepo.ReconcileReplyCounts()
}
