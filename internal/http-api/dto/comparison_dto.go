package dto

// ComparisonVoteRequest: one choice per category, each naming one of
// the poll's two subjects. Domain validation lives in the service so a
// missing category gets its own message.
type ComparisonVoteRequest struct {
	GameIQ      string `json:"game_iq"`
	Skill       string `json:"skill"`
	Positioning string `json:"positioning"`
	Finishing   string `json:"finishing"`
	Defending   string `json:"defending"`
}
