package repository

import (
	"time"

	"leaguehub/internal/http-api/models"

	"gorm.io/gorm"
)

// ThreadRepository owns the forum_threads table, including the
// denormalized reply_count maintenance.
type ThreadRepository interface {
	Create(thread *models.Thread) error
	GetByID(threadID int64) (*models.Thread, error)
	// List returns one activity-ordered page plus the unfiltered total.
	List(page, pageSize int) ([]models.ThreadSummary, int64, error)
	Latest(limit int) ([]models.ThreadSummary, error)
	Delete(threadID int64) error
	IncrementReplyCount(threadID int64) error
	DecrementReplyCount(threadID int64) error
	// ReconcileReplyCounts recounts live replies for every thread whose
	// counter has drifted and returns how many rows were healed.
	ReconcileReplyCounts() (int64, error)
}

type threadRepository struct {
	db *gorm.DB
}

func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

// listSelect joins each thread with its author and its most recent
// reply. Ordering: pinned first, then latest activity (last reply time,
// or creation time for reply-less threads).
const listSelect = `
	SELECT
		t.id,
		t.title,
		t.body,
		t.reply_count,
		t.is_pinned,
		t.is_locked,
		t.created_at,
		u.username AS author,
		lr.created_at AS last_reply_at,
		lu.username AS last_reply_author
	FROM forum_threads t
	JOIN users u ON u.id = t.user_id
	LEFT JOIN LATERAL (
		SELECT r.user_id, r.created_at
		FROM forum_replies r
		WHERE r.thread_id = t.id
		ORDER BY r.created_at DESC
		LIMIT 1
	) lr ON TRUE
	LEFT JOIN users lu ON lu.id = lr.user_id
	ORDER BY t.is_pinned DESC, COALESCE(lr.created_at, t.created_at) DESC`

func (r *threadRepository) Create(thread *models.Thread) error {
	return translateError(r.db.Create(thread).Error)
}

func (r *threadRepository) GetByID(threadID int64) (*models.Thread, error) {
	var thread models.Thread
	err := r.db.Where("id = ?", threadID).
		Preload("User").
		First(&thread).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *threadRepository) List(page, pageSize int) ([]models.ThreadSummary, int64, error) {
	var total int64
	if err := r.db.Model(&models.Thread{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	var rows []models.ThreadSummary
	err := r.db.Raw(listSelect+" LIMIT ? OFFSET ?", pageSize, offset).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *threadRepository) Latest(limit int) ([]models.ThreadSummary, error) {
	var rows []models.ThreadSummary
	err := r.db.Raw(listSelect+" LIMIT ?", limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *threadRepository) Delete(threadID int64) error {
	// replies go with it via ON DELETE CASCADE
	result := r.db.Delete(&models.Thread{}, "id = ?", threadID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *threadRepository) IncrementReplyCount(threadID int64) error {
	// arithmetic on the stored value, not a read-modify-write, so
	// concurrent replies never lose updates
	return r.db.Model(&models.Thread{}).
		Where("id = ?", threadID).
		Updates(map[string]interface{}{
			"reply_count": gorm.Expr("reply_count + 1"),
			"updated_at":  time.Now(),
		}).Error
}

func (r *threadRepository) DecrementReplyCount(threadID int64) error {
	return r.db.Model(&models.Thread{}).
		Where("id = ?", threadID).
		Update("reply_count", gorm.Expr("GREATEST(reply_count - 1, 0)")).Error
}

func (r *threadRepository) ReconcileReplyCounts() (int64, error) {
	result := r.db.Exec(`
		UPDATE forum_threads t
		SET reply_count = live.n
		FROM (
			SELECT t2.id, COUNT(r.id) AS n
			FROM forum_threads t2
			LEFT JOIN forum_replies r ON r.thread_id = t2.id
			GROUP BY t2.id
		) live
		WHERE live.id = t.id AND t.reply_count <> live.n`)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
