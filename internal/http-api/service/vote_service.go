package service

import (
	"errors"
	"time"

	"leaguehub/internal/http-api/models"
	"leaguehub/internal/http-api/repository"

	"gorm.io/gorm"
)

// StandingsScope selects between the top-5 ranking and the full table.
type StandingsScope int

const (
	StandingsTop5 StandingsScope = iota
	StandingsFull
)

const top5Limit = 5

type VoteService interface {
	// CastLeagueVote records one vote for the league on the given day.
	// A second vote the same day fails with ErrAlreadyVoted, detected
	// from the store's unique constraint rather than a pre-check.
	CastLeagueVote(userID string, leagueID int64, today time.Time) error
	GetLeagueStandings(scope StandingsScope) ([]models.LeagueStanding, error)
}

type voteService struct {
	leagueRepo repository.LeagueRepository
	voteRepo   repository.LeagueVoteRepository
}

func NewVoteService(leagueRepo repository.LeagueRepository, voteRepo repository.LeagueVoteRepository) VoteService {
	return &voteService{
		leagueRepo: leagueRepo,
		voteRepo:   voteRepo,
	}
}

func (s *voteService) CastLeagueVote(userID string, leagueID int64, today time.Time) error {
	if _, err := s.leagueRepo.FindByID(leagueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// The voting day is the caller's calendar day, so the boundary
	// follows the deployment's wall clock rather than UTC midnights.
	y, m, d := today.Date()
	vote := &models.LeagueVote{
		UserID:   userID,
		LeagueID: leagueID,
		VoteDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}

	if err := s.voteRepo.Create(vote); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyVoted
		}
		return err
	}

	return nil
}

func (s *voteService) GetLeagueStandings(scope StandingsScope) ([]models.LeagueStanding, error) {
	limit := 0
	if scope == StandingsTop5 {
		limit = top5Limit
	}
	return s.leagueRepo.Standings(limit)
}
