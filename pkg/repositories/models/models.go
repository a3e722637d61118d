package models

// HighScore is the single persisted best score.
type HighScore struct {
	Score int `json:"score"`
	// UpdatedAt is the time of the last write in unix milliseconds
	UpdatedAt int64 `json:"updated_at"`
}
