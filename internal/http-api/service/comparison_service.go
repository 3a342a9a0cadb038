package service

import (
	"errors"
	"fmt"

	"leaguehub/internal/http-api/models"
	"leaguehub/internal/http-api/repository"
)

// The comparison poll is fixed: two subjects, five categories.
const (
	ComparisonLeft  = "nik"
	ComparisonRight = "Levitan"
)

// comparisonCategories is ordered; validation reports the first
// missing category, matching the public error messages.
var comparisonCategories = []string{"game_iq", "skill", "positioning", "finishing", "defending"}

// ComparisonChoices maps each category key to one of the two subjects.
type ComparisonChoices map[string]string

// ComparisonSummary is the aggregated poll result. Categories maps each
// category key to per-subject counts; the scores are each subject's
// category wins summed (max five points per voter).
type ComparisonSummary struct {
	LeftName   string                      `json:"leftName"`
	RightName  string                      `json:"rightName"`
	TotalVotes int64                       `json:"totalVotes"`
	Categories map[string]map[string]int64 `json:"categories"`
	NikScore   int64                       `json:"nikScore"`
	LevScore   int64                       `json:"levScore"`
}

type ComparisonService interface {
	// CastVote records a user's one-time ballot. Repeat votes fail
	// with ErrAlreadyVoted via the store's unique constraint.
	CastVote(userID string, choices ComparisonChoices) error
	GetSummary() (*ComparisonSummary, error)
}

type comparisonService struct {
	voteRepo repository.ComparisonVoteRepository
}

func NewComparisonService(voteRepo repository.ComparisonVoteRepository) ComparisonService {
	return &comparisonService{voteRepo: voteRepo}
}

func (s *comparisonService) CastVote(userID string, choices ComparisonChoices) error {
	for _, category := range comparisonCategories {
		value := choices[category]
		if value == "" {
			return NewValidationError(fmt.Sprintf("Please vote in %s.", category))
		}
		if value != ComparisonLeft && value != ComparisonRight {
			return NewValidationError("Invalid vote value.")
		}
	}

	vote := &models.ComparisonVote{
		UserID:      userID,
		GameIQ:      choices["game_iq"],
		Skill:       choices["skill"],
		Positioning: choices["positioning"],
		Finishing:   choices["finishing"],
		Defending:   choices["defending"],
	}

	if err := s.voteRepo.Create(vote); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyVoted
		}
		return err
	}

	return nil
}

func (s *comparisonService) GetSummary() (*ComparisonSummary, error) {
	tally, err := s.voteRepo.Tally(ComparisonLeft, ComparisonRight)
	if err != nil {
		return nil, err
	}

	categories := map[string]map[string]int64{
		"game_iq":     {ComparisonLeft: tally.GameIQLeft, ComparisonRight: tally.GameIQRight},
		"skill":       {ComparisonLeft: tally.SkillLeft, ComparisonRight: tally.SkillRight},
		"positioning": {ComparisonLeft: tally.PosLeft, ComparisonRight: tally.PosRight},
		"finishing":   {ComparisonLeft: tally.FinishingLeft, ComparisonRight: tally.FinishingRight},
		"defending":   {ComparisonLeft: tally.DefendingLeft, ComparisonRight: tally.DefendingRight},
	}

	return &ComparisonSummary{
		LeftName:   ComparisonLeft,
		RightName:  ComparisonRight,
		TotalVotes: tally.TotalVotes,
		Categories: categories,
		NikScore:   tally.GameIQLeft + tally.SkillLeft + tally.PosLeft + tally.FinishingLeft + tally.DefendingLeft,
		LevScore:   tally.GameIQRight + tally.SkillRight + tally.PosRight + tally.FinishingRight + tally.DefendingRight,
	}, nil
}
