package discord

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// PingCommand returns the ping command definition and handler. The reply
// includes the gateway heartbeat latency so it doubles as a health check.
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check that the bot is alive and how fast it responds",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, _ *APIClient) {
		latency := s.HeartbeatLatency().Round(time.Millisecond)
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("Pong! 🏓 Gateway latency: %s", latency),
			},
		}); err != nil {
			slog.Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}
