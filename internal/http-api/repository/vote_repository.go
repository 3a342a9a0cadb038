package repository

import (
	"leaguehub/internal/http-api/models"

	"gorm.io/gorm"
)

// LeagueVoteRepository is the insert path of the vote ledger. Duplicate
// votes surface as ErrDuplicate from the store's unique constraint,
// never from a prior read.
type LeagueVoteRepository interface {
	Create(vote *models.LeagueVote) error
}

type leagueVoteRepository struct {
	db *gorm.DB
}

func NewLeagueVoteRepository(db *gorm.DB) LeagueVoteRepository {
	return &leagueVoteRepository{db: db}
}

func (r *leagueVoteRepository) Create(vote *models.LeagueVote) error {
	return translateError(r.db.Create(vote).Error)
}
