package repository

import (
	"leaguehub/internal/http-api/models"

	"gorm.io/gorm"
)

type ReplyRepository interface {
	Create(reply *models.Reply) error
	GetByID(replyID int64) (*models.Reply, error)
	// ListByThread returns all replies in creation order, each joined
	// with its author and, when present, the quoted parent reply.
	ListByThread(threadID int64) ([]models.ReplyWithParent, error)
	Delete(replyID int64) error
}

type replyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(reply *models.Reply) error {
	return translateError(r.db.Create(reply).Error)
}

func (r *replyRepository) GetByID(replyID int64) (*models.Reply, error) {
	var reply models.Reply
	if err := r.db.First(&reply, "id = ?", replyID).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *replyRepository) ListByThread(threadID int64) ([]models.ReplyWithParent, error) {
	var rows []models.ReplyWithParent
	err := r.db.Raw(`
		SELECT
			r.id,
			r.body,
			r.created_at,
			r.parent_reply_id,
			r.user_id,
			u.username AS author,
			pu.username AS parent_author,
			p.body AS parent_body
		FROM forum_replies r
		JOIN users u ON u.id = r.user_id
		LEFT JOIN forum_replies p ON p.id = r.parent_reply_id
		LEFT JOIN users pu ON pu.id = p.user_id
		WHERE r.thread_id = ?
		ORDER BY r.created_at ASC`, threadID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *replyRepository) Delete(replyID int64) error {
	result := r.db.Delete(&models.Reply{}, "id = ?", replyID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
