package moderation

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// User is a platform-global user identity.
type User struct {
	ID  string
	Tag string
}

// Member is a user's membership record inside a guild.
type Member struct {
	User User
}

// Channel is the subset of channel state the bot cares about.
type Channel struct {
	ID   string
	Name string
	Text bool
}

// ActionClient is the capability the moderation core uses to act on the
// remote platform. Everything takes explicit identifiers and returns plain
// data; the discord package provides the live implementation over a session,
// tests provide fakes.
type ActionClient interface {
	// Ban bans a user from a guild. The target does not have to be a member.
	Ban(guildID, userID, reason string) error

	// Kick removes a member from a guild.
	Kick(guildID, userID, reason string) error

	// ApplyTimeout restricts a member for durationMs milliseconds.
	ApplyTimeout(guildID, userID string, durationMs int64, reason string) error

	// ResolveMember returns the member record, or nil if the user is not a
	// member of the guild.
	ResolveMember(guildID, userID string) (*Member, error)

	// FetchRecentMessages returns the IDs of up to limit most recent messages
	// in a channel.
	FetchRecentMessages(channelID string, limit int) ([]string, error)

	// BulkDelete deletes the given messages from a channel in one batch.
	BulkDelete(channelID string, messageIDs []string) error

	// SendMessage posts a plain text message to a channel.
	SendMessage(channelID, content string) error

	// SendEmbed posts an embed to a channel.
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error

	// ResolveChannel returns channel state, or an error if it does not exist.
	ResolveChannel(channelID string) (*Channel, error)

	// Latency reports the current gateway heartbeat latency.
	Latency() time.Duration
}
