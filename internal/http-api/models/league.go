package models

import "time"

type League struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Region      string    `json:"region"`
	MapName     string    `json:"map_name"`
	DiscordLink string    `json:"discord_link"`
	LogoURL     string    `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (League) TableName() string {
	return "leagues"
}

// LeagueStanding is one row of the ranking aggregation. The vote count
// keeps its historical wire name votes_today even though it is all-time.
type LeagueStanding struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Region      string `json:"region"`
	MapName     string `json:"map_name"`
	DiscordLink string `json:"discord_link"`
	LogoURL     string `json:"logo_url"`
	Votes       int64  `json:"votes_today" gorm:"column:votes_today"`
}
