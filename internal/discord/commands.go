package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/MyteScripts/investbot/internal/handler"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		h(s, i, client)
	}
}

// RegisterCommands registers/updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if forceUpdate {
		slog.Info("Force update enabled - replacing all commands", "count", len(desiredCmds))
		_, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds)
		if err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		slog.Info("Commands force updated successfully")
		return nil
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Commands changed, updating...",
		"existing", len(existingCmds),
		"desired", len(desiredCmds))

	_, err = b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds)
	if err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, desired := range desired {
		existing, ok := existingMap[desired.Name]
		if !ok {
			return false
		}
		if !commandEqual(existing, desired) {
			return false
		}
	}

	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if len(a.Options) != len(b.Options) {
		return false
	}

	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}

	return true
}

// optionEqual checks if two command options are equivalent
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}

	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}

	return true
}

// respondError sends a generic error message.
// Use for system-level errors or when a detailed error message would confuse users.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// deferResponse acknowledges an interaction with a deferred message.
// Required before any async operations that might take longer than 3 seconds.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getOptions extracts command options from an interaction
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// respondFriendlyError formats the error message to be more user-friendly
// before responding. Transforms API errors (insufficient funds, cooldowns,
// incidents, etc.) into readable messages.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	respondError(s, i, formatFriendlyError(message))
}

// formatFriendlyError cleans up technical error messages
func formatFriendlyError(msg string) string {
	// Remove "API error: " prefix if present (from client.go)
	msg = strings.TrimPrefix(msg, "API error: ")

	// Map common API errors to friendly messages.
	// We check for containment because error messages might be wrapped.
	switch {
	case strings.Contains(msg, handler.ErrMsgNotEnoughCoinsError):
		return MsgInsufficientFunds
	case strings.Contains(msg, handler.ErrMsgUserNotFoundError):
		return MsgUserNotFound
	case strings.Contains(msg, handler.ErrMsgVentureNotFoundError):
		return MsgVentureNotFound
	case strings.Contains(msg, handler.ErrMsgUnknownTypeError):
		return MsgUnknownType
	case strings.Contains(msg, handler.ErrMsgAlreadyOwnedError):
		return MsgAlreadyOwned
	case strings.Contains(msg, handler.ErrMsgIncidentActiveError):
		return MsgIncidentActive
	case strings.Contains(msg, handler.ErrMsgNoIncidentError):
		return MsgNoIncident
	case strings.Contains(msg, handler.ErrMsgOnCooldownError):
		return MsgCooldownActive
	default:
		return "❌ " + msg
	}
}

// sendEmbed sends an embed message with standardized error handling.
// Logs errors internally - no need for callers to handle send errors.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// FooterInvestBot is the standard footer for user-facing command embeds
const FooterInvestBot = "InvestBot"

// createEmbed creates a standard embed with optional footer customization.
// An empty footerText defaults to FooterInvestBot.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterInvestBot
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

// ensureUserRegistered registers a user and handles errors uniformly.
// Returns true if successful, false if registration failed (error already
// handled).
func ensureUserRegistered(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, user *discordgo.User) bool {
	_, err := client.RegisterUser(user.Username, user.ID)
	if err != nil {
		slog.Error("Failed to register user", "error", err)
		respondError(s, i, "Error connecting to the investment server.")
		return false
	}
	return true
}
