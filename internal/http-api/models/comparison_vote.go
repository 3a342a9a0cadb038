package models

import "time"

// ComparisonVote holds one choice per category for the fixed two-player
// comparison poll. At most one row per user, immutable after insert.
type ComparisonVote struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	GameIQ      string    `json:"game_iq" gorm:"column:game_iq;not null"`
	Skill       string    `json:"skill" gorm:"not null"`
	Positioning string    `json:"positioning" gorm:"not null"`
	Finishing   string    `json:"finishing" gorm:"not null"`
	Defending   string    `json:"defending" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (ComparisonVote) TableName() string {
	return "comparison_votes"
}

// ComparisonTally is the single aggregation row behind the summary
// endpoint: per-category counts for each subject plus the vote total.
type ComparisonTally struct {
	TotalVotes     int64 `gorm:"column:total_votes"`
	GameIQLeft     int64 `gorm:"column:game_iq_left"`
	GameIQRight    int64 `gorm:"column:game_iq_right"`
	SkillLeft      int64 `gorm:"column:skill_left"`
	SkillRight     int64 `gorm:"column:skill_right"`
	PosLeft        int64 `gorm:"column:pos_left"`
	PosRight       int64 `gorm:"column:pos_right"`
	FinishingLeft  int64 `gorm:"column:fin_left"`
	FinishingRight int64 `gorm:"column:fin_right"`
	DefendingLeft  int64 `gorm:"column:def_left"`
	DefendingRight int64 `gorm:"column:def_right"`
}
