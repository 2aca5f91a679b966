package discord

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MyteScripts/investbot/internal/domain"
)

// Embed colors for venture command responses
const (
	colorInfo    = 0x3498db
	colorSuccess = 0x2ecc71
	colorWarning = 0xf39c12
)

var titleCaser = cases.Title(language.English)

// formatVentureName turns a catalog key like "grocery_store" into a
// display name like "Grocery Store"
func formatVentureName(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// riskEmoji maps a risk level to its indicator
func riskEmoji(level domain.RiskLevel) string {
	switch level {
	case domain.RiskHigh:
		return "🔴"
	case domain.RiskMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

// ventureTypeOption is the shared "type" option used by venture commands
func ventureTypeOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "type",
		Description: "Venture type key, e.g. grocery_store (see /catalog)",
		Required:    true,
	}
}

// CatalogCommand returns the catalog command definition and handler
func CatalogCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "catalog",
		Description: "Browse the ventures you can buy",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		types, err := client.GetCatalog()
		if err != nil {
			slog.Error("Failed to get catalog", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		for _, vt := range types {
			sb.WriteString(fmt.Sprintf("%s **%s** (`%s`) — %d coins\n%d coins/hour, holds up to %d\n\n",
				riskEmoji(vt.RiskLevel), vt.DisplayName, vt.Key, vt.Cost, vt.HourlyReturn, vt.MaxHolding))
		}
		sb.WriteString("Buy one with `/buy type:<key>`")

		sendEmbed(s, i, createEmbed("Venture Catalog", sb.String(), colorInfo, ""))
	}

	return cmd, handler
}

// PortfolioCommand returns the portfolio command definition and handler
func PortfolioCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "portfolio",
		Description: "View your ventures and how they're doing",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		if !ensureUserRegistered(s, i, client, user) {
			return
		}

		entries, err := client.GetPortfolio(user.ID)
		if err != nil {
			slog.Error("Failed to get portfolio", "error", err, "user", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(entries) == 0 {
			sendEmbed(s, i, createEmbed("Portfolio",
				"You don't own any ventures yet. Check out `/catalog` to get started!", colorInfo, ""))
			return
		}

		var sb strings.Builder
		for _, entry := range entries {
			v := entry.Venture
			sb.WriteString(fmt.Sprintf("%s **%s** (`%s`)\n", riskEmoji(entry.Type.RiskLevel), entry.Type.DisplayName, v.TypeKey))
			sb.WriteString(fmt.Sprintf("Maintenance: %.0f%% · Accumulated: %.0f/%d coins\n", v.Maintenance, v.Accumulated, entry.Type.MaxHolding))
			if v.RiskEvent {
				sb.WriteString(fmt.Sprintf("🚨 Incident: **%s** — use `/repair`\n", v.RiskEventType))
			}
			sb.WriteString("\n")
		}

		sendEmbed(s, i, createEmbed(fmt.Sprintf("%s's Portfolio", user.Username), sb.String(), colorInfo, ""))
	}

	return cmd, handler
}

// BuyVentureCommand returns the buy command definition and handler
func BuyVentureCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Buy a venture from the catalog",
		Options: []*discordgo.ApplicationCommandOption{
			ventureTypeOption(),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		typeKey := getOptions(i)[0].StringValue()

		if !ensureUserRegistered(s, i, client, user) {
			return
		}

		created, err := client.BuyVenture(user.ID, typeKey)
		if err != nil {
			slog.Error("Failed to buy venture", "error", err, "user", user.Username, "type", typeKey)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("You now own a **%s**!\nIt starts at full maintenance and earns while you're away.\nCome back with `/collect type:%s` to pick up your coins.",
			formatVentureName(created.TypeKey), created.TypeKey)
		sendEmbed(s, i, createEmbed("💰 Purchase Complete", description, colorSuccess, ""))
	}

	return cmd, handler
}

// CollectCommand returns the collect command definition and handler
func CollectCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "collect",
		Description: "Collect the coins a venture has earned",
		Options: []*discordgo.ApplicationCommandOption{
			ventureTypeOption(),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		typeKey := getOptions(i)[0].StringValue()

		if !ensureUserRegistered(s, i, client, user) {
			return
		}

		result, err := client.CollectVenture(user.ID, typeKey)
		if err != nil {
			slog.Error("Failed to collect", "error", err, "user", user.Username, "type", typeKey)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("Your **%s** paid out **%d coins**!\nNext collection available at %s.",
			formatVentureName(typeKey), result.Payout, result.NextCollectAt.UTC().Format(time.Kitchen))
		sendEmbed(s, i, createEmbed("🪙 Collected!", description, colorSuccess, ""))
	}

	return cmd, handler
}

// MaintainCommand returns the maintain command definition and handler
func MaintainCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "maintain",
		Description: "Spend coins on a venture's upkeep",
		Options: []*discordgo.ApplicationCommandOption{
			ventureTypeOption(),
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "points",
				Description: "Maintenance points to restore (default: 25)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		options := getOptions(i)
		typeKey := options[0].StringValue()
		points := 0.0
		if len(options) > 1 {
			points = float64(options[1].IntValue())
		}

		if !ensureUserRegistered(s, i, client, user) {
			return
		}

		updated, err := client.MaintainVenture(user.ID, typeKey, points)
		if err != nil {
			slog.Error("Failed to maintain", "error", err, "user", user.Username, "type", typeKey)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("Your **%s** is back up to **%.0f%%** maintenance.",
			formatVentureName(typeKey), updated.Maintenance)
		sendEmbed(s, i, createEmbed("🔧 Maintenance Done", description, colorSuccess, ""))
	}

	return cmd, handler
}

// RepairCommand returns the repair command definition and handler
func RepairCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "repair",
		Description: "Fix a venture's incident so it can earn again",
		Options: []*discordgo.ApplicationCommandOption{
			ventureTypeOption(),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		typeKey := getOptions(i)[0].StringValue()

		if !ensureUserRegistered(s, i, client, user) {
			return
		}

		updated, err := client.RepairVenture(user.ID, typeKey)
		if err != nil {
			slog.Error("Failed to repair", "error", err, "user", user.Username, "type", typeKey)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("Your **%s** is fixed and back in business at **%.0f%%** maintenance.",
			formatVentureName(typeKey), updated.Maintenance)
		sendEmbed(s, i, createEmbed("🛠️ Repaired!", description, colorWarning, ""))
	}

	return cmd, handler
}

// SellVentureCommand returns the sell command definition and handler
func SellVentureCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "sell",
		Description: "Sell a venture for half its purchase price",
		Options: []*discordgo.ApplicationCommandOption{
			ventureTypeOption(),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		typeKey := getOptions(i)[0].StringValue()

		if !ensureUserRegistered(s, i, client, user) {
			return
		}

		result, err := client.SellVenture(user.ID, typeKey)
		if err != nil {
			slog.Error("Failed to sell venture", "error", err, "user", user.Username, "type", typeKey)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("Sold your **%s** for **%d coins**.",
			formatVentureName(typeKey), result.Refund)
		sendEmbed(s, i, createEmbed("🏷️ Sale Complete", description, colorWarning, ""))
	}

	return cmd, handler
}
