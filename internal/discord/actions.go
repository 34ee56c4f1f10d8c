package discord

import (
	"errors"
	"time"

	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
)

// sessionActions implements moderation.ActionClient over a live session.
type sessionActions struct {
	dg *discordgo.Session
}

// NewActionClient wraps a session in the capability interface the moderation
// core and the dashboard act through.
func NewActionClient(dg *discordgo.Session) moderation.ActionClient {
	return &sessionActions{dg: dg}
}

func (a *sessionActions) Ban(guildID, userID, reason string) error {
	return a.dg.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func (a *sessionActions) Kick(guildID, userID, reason string) error {
	return a.dg.GuildMemberDeleteWithReason(guildID, userID, reason)
}

func (a *sessionActions) ApplyTimeout(guildID, userID string, durationMs int64, reason string) error {
	until := time.Now().Add(time.Duration(durationMs) * time.Millisecond)
	return a.dg.GuildMemberTimeout(guildID, userID, &until, discordgo.WithAuditLogReason(reason))
}

func (a *sessionActions) ResolveMember(guildID, userID string) (*moderation.Member, error) {
	m, err := a.dg.GuildMember(guildID, userID)
	if err != nil {
		var rerr *discordgo.RESTError
		if errors.As(err, &rerr) && rerr.Message != nil && rerr.Message.Code == discordgo.ErrCodeUnknownMember {
			return nil, nil
		}
		return nil, err
	}
	return &moderation.Member{
		User: moderation.User{ID: m.User.ID, Tag: m.User.String()},
	}, nil
}

func (a *sessionActions) FetchRecentMessages(channelID string, limit int) ([]string, error) {
	msgs, err := a.dg.ChannelMessages(channelID, limit, "", "", "")
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (a *sessionActions) BulkDelete(channelID string, messageIDs []string) error {
	return a.dg.ChannelMessagesBulkDelete(channelID, messageIDs)
}

func (a *sessionActions) SendMessage(channelID, content string) error {
	_, err := a.dg.ChannelMessageSend(channelID, content)
	return err
}

func (a *sessionActions) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := a.dg.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (a *sessionActions) ResolveChannel(channelID string) (*moderation.Channel, error) {
	channel, err := a.dg.State.Channel(channelID)
	if err != nil {
		channel, err = a.dg.Channel(channelID)
		if err != nil {
			return nil, err
		}
	}
	return &moderation.Channel{
		ID:   channel.ID,
		Name: channel.Name,
		Text: isTextCapable(channel.Type),
	}, nil
}

// isTextCapable reports whether messages can be sent to a channel of the
// given type. Announcement channels and threads count alongside regular
// guild text channels.
func isTextCapable(t discordgo.ChannelType) bool {
	switch t {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread:
		return true
	}
	return false
}

func (a *sessionActions) Latency() time.Duration {
	return a.dg.HeartbeatLatency()
}
