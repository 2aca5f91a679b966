package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// BalanceCommand returns the balance command definition and handler
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Check your coin balance",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		if !ensureUserRegistered(s, i, client, user) {
			return
		}

		balance, err := client.GetBalance(user.ID)
		if err != nil {
			slog.Error("Failed to get balance", "error", err, "user", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("💰 You have **%d coins**.", balance)
		sendEmbed(s, i, createEmbed("Wallet", description, 0xf1c40f, ""))
	}

	return cmd, handler
}
