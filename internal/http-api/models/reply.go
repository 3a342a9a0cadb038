package models

import "time"

// Reply nesting is bounded to one level: a parent reply is itself
// never nested. The parent reference survives parent deletion as NULL.
type Reply struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ThreadID      int64     `json:"thread_id" gorm:"not null;index"`
	ParentReplyID *int64    `json:"parent_reply_id" gorm:"index"`
	UserID        string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Body          string    `json:"body" gorm:"not null;type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Thread Thread `json:"thread,omitempty" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE;"`
}

func (Reply) TableName() string {
	return "forum_replies"
}

// ReplyWithParent is one row of the thread-detail reply listing, with
// the quoted parent's author and body joined in when a parent exists.
type ReplyWithParent struct {
	ID            int64     `json:"id"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	ParentReplyID *int64    `json:"parent_reply_id" gorm:"column:parent_reply_id"`
	UserID        string    `json:"user_id" gorm:"column:user_id"`
	Author        string    `json:"author"`
	ParentAuthor  *string   `json:"parent_author" gorm:"column:parent_author"`
	ParentBody    *string   `json:"-" gorm:"column:parent_body"`
}
