package repository

import (
	"leaguehub/internal/http-api/models"

	"gorm.io/gorm"
)

// ComparisonVoteRepository stores the one-shot comparison ballots and
// aggregates them into a single tally row.
type ComparisonVoteRepository interface {
	Create(vote *models.ComparisonVote) error
	Tally(leftSubject, rightSubject string) (*models.ComparisonTally, error)
}

type comparisonVoteRepository struct {
	db *gorm.DB
}

func NewComparisonVoteRepository(db *gorm.DB) ComparisonVoteRepository {
	return &comparisonVoteRepository{db: db}
}

func (r *comparisonVoteRepository) Create(vote *models.ComparisonVote) error {
	return translateError(r.db.Create(vote).Error)
}

func (r *comparisonVoteRepository) Tally(leftSubject, rightSubject string) (*models.ComparisonTally, error) {
	query := `
		SELECT
			COUNT(*) AS total_votes,
			COUNT(*) FILTER (WHERE game_iq = @left)      AS game_iq_left,
			COUNT(*) FILTER (WHERE game_iq = @right)     AS game_iq_right,
			COUNT(*) FILTER (WHERE skill = @left)        AS skill_left,
			COUNT(*) FILTER (WHERE skill = @right)       AS skill_right,
			COUNT(*) FILTER (WHERE positioning = @left)  AS pos_left,
			COUNT(*) FILTER (WHERE positioning = @right) AS pos_right,
			COUNT(*) FILTER (WHERE finishing = @left)    AS fin_left,
			COUNT(*) FILTER (WHERE finishing = @right)   AS fin_right,
			COUNT(*) FILTER (WHERE defending = @left)    AS def_left,
			COUNT(*) FILTER (WHERE defending = @right)   AS def_right
		FROM comparison_votes`

	var tally models.ComparisonTally
	err := r.db.Raw(query,
		map[string]interface{}{"left": leftSubject, "right": rightSubject},
	).Scan(&tally).Error
	if err != nil {
		return nil, err
	}
	return &tally, nil
}
