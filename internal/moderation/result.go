package moderation

import "fmt"

// Kind identifies which moderation action a result describes.
type Kind string

const (
	KindBan        Kind = "ban"
	KindKick       Kind = "kick"
	KindMute       Kind = "mute"
	KindTimeout    Kind = "timeout"
	KindPurge      Kind = "purge"
	KindBridgeSend Kind = "bridge-send"
)

// DefaultReason is substituted when the issuer gives no reason.
const DefaultReason = "No reason provided"

// ActionResult describes a moderation action that the platform confirmed.
// It is built only after the remote call succeeded and is consumed once by
// the audit logger and once by the reply composer.
type ActionResult struct {
	Kind   Kind
	Target User
	Actor  User
	Reason string

	// DurationSeconds is set for mute/timeout.
	DurationSeconds int

	// DeletedCount is set for purge.
	DeletedCount int

	// ChannelID is set for purge and bridge-send.
	ChannelID string

	// Preview is set for bridge-send: the message body capped at 1024 runes.
	Preview string
}

// DurationDisplay renders the timeout duration the way replies and audit
// events show it: floored to whole minutes.
func (r *ActionResult) DurationDisplay() string {
	return fmt.Sprintf("%d minutes", r.DurationSeconds/60)
}
