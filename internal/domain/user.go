package domain

import "time"

// User represents a registered user
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	DiscordID string    `json:"discord_id"`
	CreatedAt time.Time `json:"created_at"`
}
