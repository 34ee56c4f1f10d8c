package moderation

import "fmt"

// Service runs the moderation actions against an injected ActionClient.
// Every method validates its input, performs the remote call, and returns an
// ActionResult only once the platform confirmed the action. Failures come
// back as *Error with a user-safe message.
type Service struct {
	actions ActionClient
}

func NewService(actions ActionClient) *Service {
	return &Service{actions: actions}
}

func orDefaultReason(reason string) string {
	if reason == "" {
		return DefaultReason
	}
	return reason
}

// Ban bans the target from the guild. The target does not need to be a
// current member.
func (s *Service) Ban(guildID string, target, actor User, reason string) (*ActionResult, error) {
	reason = orDefaultReason(reason)

	if err := s.actions.Ban(guildID, target.ID, reason); err != nil {
		return nil, remote("Could not ban the user. Check bot permissions and hierarchy.", err)
	}

	return &ActionResult{
		Kind:   KindBan,
		Target: target,
		Actor:  actor,
		Reason: reason,
	}, nil
}

// Kick removes the target from the guild. The target must currently be a
// member.
func (s *Service) Kick(guildID string, target, actor User, reason string) (*ActionResult, error) {
	reason = orDefaultReason(reason)

	member, err := s.actions.ResolveMember(guildID, target.ID)
	if err != nil {
		return nil, remote("Could not kick the user. Check bot permissions and hierarchy.", err)
	}
	if member == nil {
		return nil, invalid("That user is not a member of this server.")
	}

	if err := s.actions.Kick(guildID, target.ID, reason); err != nil {
		return nil, remote("Could not kick the user. Check bot permissions and hierarchy.", err)
	}

	return &ActionResult{
		Kind:   KindKick,
		Target: member.User,
		Actor:  actor,
		Reason: reason,
	}, nil
}

// Timeout applies a timed restriction to the target for durationSeconds.
// kind selects the reply/audit wording: KindMute and KindTimeout are the same
// underlying platform action.
func (s *Service) Timeout(guildID string, target, actor User, durationSeconds int, reason string, kind Kind) (*ActionResult, error) {
	reason = orDefaultReason(reason)
	verb := "timeout"
	if kind == KindMute {
		verb = "mute"
	}
	failMsg := fmt.Sprintf("Could not %s the user. Check bot permissions and hierarchy.", verb)

	member, err := s.actions.ResolveMember(guildID, target.ID)
	if err != nil {
		return nil, remote(failMsg, err)
	}
	if member == nil {
		return nil, invalid("That user is not a member of this server.")
	}

	// The platform API takes milliseconds.
	durationMs := int64(durationSeconds) * 1000
	if err := s.actions.ApplyTimeout(guildID, target.ID, durationMs, reason); err != nil {
		return nil, remote(failMsg, err)
	}

	return &ActionResult{
		Kind:            kind,
		Target:          member.User,
		Actor:           actor,
		Reason:          reason,
		DurationSeconds: durationSeconds,
	}, nil
}

// Purge bulk-deletes up to amount most recent messages in the channel.
// Amount must be within [1, 100].
func (s *Service) Purge(channelID string, actor User, amount int) (*ActionResult, error) {
	if amount < 1 || amount > 100 {
		return nil, invalid("You can only purge between 1 and 100 messages.")
	}

	const failMsg = "Could not purge messages. Messages older than 14 days cannot be bulk deleted, or check bot permissions."

	ids, err := s.actions.FetchRecentMessages(channelID, amount)
	if err != nil {
		return nil, remote(failMsg, err)
	}
	if err := s.actions.BulkDelete(channelID, ids); err != nil {
		return nil, remote(failMsg, err)
	}

	return &ActionResult{
		Kind:         KindPurge,
		Actor:        actor,
		ChannelID:    channelID,
		DeletedCount: len(ids),
	}, nil
}

// Send posts content verbatim to the channel on behalf of the bot and
// returns a bridge-send result with a capped preview. The channel must exist
// and be text-capable.
func (s *Service) Send(channelID, content string) (*ActionResult, *Channel, error) {
	channel, err := s.actions.ResolveChannel(channelID)
	if err != nil || channel == nil || !channel.Text {
		return nil, nil, invalid("Invalid or Non-Text Channel ID")
	}

	if err := s.actions.SendMessage(channelID, content); err != nil {
		return nil, nil, remote("Could not send message. Check Bot Permissions.", err)
	}

	preview := content
	if runes := []rune(content); len(runes) > 1024 {
		preview = string(runes[:1024])
	}

	return &ActionResult{
		Kind:      KindBridgeSend,
		ChannelID: channelID,
		Preview:   preview,
	}, channel, nil
}
