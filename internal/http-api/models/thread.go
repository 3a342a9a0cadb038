package models

import "time"

type Thread struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Title      string    `json:"title" gorm:"size:80;not null"`
	Body       string    `json:"body" gorm:"not null;type:text"`
	ReplyCount int       `json:"reply_count" gorm:"not null;default:0"`
	IsPinned   bool      `json:"is_pinned" gorm:"not null;default:false"`
	IsLocked   bool      `json:"is_locked" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Thread) TableName() string {
	return "forum_threads"
}

// ThreadSummary is one row of the activity-ordered thread listing:
// the thread plus its author and latest-reply info from the join.
type ThreadSummary struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Body            string     `json:"body"`
	ReplyCount      int        `json:"reply_count"`
	IsPinned        bool       `json:"is_pinned"`
	IsLocked        bool       `json:"is_locked"`
	CreatedAt       time.Time  `json:"created_at"`
	Author          string     `json:"author"`
	LastReplyAt     *time.Time `json:"last_reply_at" gorm:"column:last_reply_at"`
	LastReplyAuthor *string    `json:"last_reply_author" gorm:"column:last_reply_author"`
}
