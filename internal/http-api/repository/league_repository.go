package repository

import (
	"leaguehub/internal/http-api/models"

	"gorm.io/gorm"
)

// LeagueRepository reads league reference data and computes standings
// from the raw vote rows.
type LeagueRepository interface {
	FindByID(id int64) (*models.League, error)
	// Standings returns leagues ordered by all-time vote count
	// descending, ties broken by newest league first. limit <= 0
	// returns the full table.
	Standings(limit int) ([]models.LeagueStanding, error)
}

type leagueRepository struct {
	db *gorm.DB
}

func NewLeagueRepository(db *gorm.DB) LeagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) FindByID(id int64) (*models.League, error) {
	var league models.League
	if err := r.db.First(&league, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &league, nil
}

func (r *leagueRepository) Standings(limit int) ([]models.LeagueStanding, error) {
	query := `
		SELECT
			l.id,
			l.name,
			l.region,
			l.map_name,
			l.discord_link,
			l.logo_url,
			COUNT(v.id) AS votes_today
		FROM leagues l
		LEFT JOIN league_votes v ON v.league_id = l.id
		GROUP BY l.id
		ORDER BY votes_today DESC, l.created_at DESC`

	var rows []models.LeagueStanding
	tx := r.db.Raw(query)
	if limit > 0 {
		tx = r.db.Raw(query+" LIMIT ?", limit)
	}
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
