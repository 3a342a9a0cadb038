package models

import "time"

// LeagueVote rows are insert-only. The (user, league, day) unique
// constraint in the store is the sole duplicate-vote check.
type LeagueVote struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:league_votes_user_league_date_key"`
	LeagueID  int64     `json:"league_id" gorm:"not null;uniqueIndex:league_votes_user_league_date_key"`
	VoteDate  time.Time `json:"vote_date" gorm:"type:date;not null;uniqueIndex:league_votes_user_league_date_key"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	League League `json:"league,omitempty" gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE;"`
}

func (LeagueVote) TableName() string {
	return "league_votes"
}
