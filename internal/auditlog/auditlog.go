// Package auditlog formats confirmed moderation actions into embeds and
// delivers them to the configured log channel. Delivery is best-effort: a
// missing or broken destination is an operator-log concern, never a caller
// error.
package auditlog

import (
	"fmt"
	"log"
	"time"

	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// Event colors, one per action kind. Closed set, not configurable.
const (
	colorBan        = 0xFF0000 // red
	colorKick       = 0xFFA500 // orange
	colorTimeout    = 0xFFFF00 // yellow
	colorPurge      = 0x800080 // purple
	colorBridgeSend = 0x00BFFF // deep sky blue
)

// Field is one labeled value in an audit event, order-preserving.
type Field struct {
	Name  string
	Value string
}

// Event is the fixed-shape audit notification built from an ActionResult.
type Event struct {
	ID        string
	Kind      moderation.Kind
	Title     string
	Color     int
	Fields    []Field
	Timestamp time.Time
}

func userRef(u moderation.User) string {
	return fmt.Sprintf("%s (`%s`)", u.Tag, u.ID)
}

// NewEvent builds the audit event for a confirmed action.
func NewEvent(res *moderation.ActionResult) Event {
	evt := Event{
		ID:        uuid.NewString(),
		Kind:      res.Kind,
		Timestamp: time.Now(),
	}

	switch res.Kind {
	case moderation.KindBan:
		evt.Title = "🚨 User Banned 🚨"
		evt.Color = colorBan
		evt.Fields = []Field{
			{"Target User", userRef(res.Target)},
			{"Moderator", userRef(res.Actor)},
			{"Reason", res.Reason},
		}
	case moderation.KindKick:
		evt.Title = "⚠️ User Kicked ⚠️"
		evt.Color = colorKick
		evt.Fields = []Field{
			{"Target User", userRef(res.Target)},
			{"Moderator", userRef(res.Actor)},
			{"Reason", res.Reason},
		}
	case moderation.KindMute, moderation.KindTimeout:
		verb := "Timed Out"
		if res.Kind == moderation.KindMute {
			verb = "Muted"
		}
		evt.Title = fmt.Sprintf("🔇 User %s 🔇", verb)
		evt.Color = colorTimeout
		evt.Fields = []Field{
			{"Target User", userRef(res.Target)},
			{"Moderator", userRef(res.Actor)},
			{"Duration", res.DurationDisplay()},
			{"Reason", res.Reason},
		}
	case moderation.KindPurge:
		evt.Title = "🗑️ Message Purge 🗑️"
		evt.Color = colorPurge
		evt.Fields = []Field{
			{"Channel", fmt.Sprintf("<#%s>", res.ChannelID)},
			{"Amount", fmt.Sprintf("%d", res.DeletedCount)},
			{"Moderator", userRef(res.Actor)},
		}
	case moderation.KindBridgeSend:
		evt.Title = "🌐 Message Sent via Dashboard"
		evt.Color = colorBridgeSend
		evt.Fields = []Field{
			{"Channel", fmt.Sprintf("<#%s>", res.ChannelID)},
			{"Message Preview", res.Preview},
		}
	}

	return evt
}

// Logger delivers audit events to a single configured channel through the
// shared ActionClient.
type Logger struct {
	actions   moderation.ActionClient
	channelID string
}

// New returns a Logger. An empty channelID disables delivery entirely.
func New(actions moderation.ActionClient, channelID string) *Logger {
	return &Logger{actions: actions, channelID: channelID}
}

// Emit delivers the event to the log channel. It never returns an error:
// every failure mode is logged for operators and swallowed.
func (l *Logger) Emit(evt Event) {
	if l.channelID == "" {
		log.Println("[INFO] LOG_CHANNEL_ID is not set. Skipping audit log.")
		return
	}

	channel, err := l.actions.ResolveChannel(l.channelID)
	if err != nil {
		log.Printf("[WARN] Failed to resolve audit log channel %s: %v", l.channelID, err)
		return
	}
	if channel == nil || !channel.Text {
		log.Printf("[WARN] Audit log channel %s is not a text channel. Skipping.", l.channelID)
		return
	}

	if err := l.actions.SendEmbed(l.channelID, l.buildEmbed(evt)); err != nil {
		log.Printf("[WARN] Failed to deliver audit event %s (%s): %v", evt.ID, evt.Kind, err)
	}
}

// EmitAfter schedules Emit after the given delay and returns immediately.
// Purge uses this to let the bulk delete settle server-side before the event
// describes it; ordering relative to the reply is deliberately not guaranteed.
func (l *Logger) EmitAfter(delay time.Duration, evt Event) {
	time.AfterFunc(delay, func() { l.Emit(evt) })
}

func (l *Logger) buildEmbed(evt Event) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(evt.Fields))
	for _, f := range evt.Fields {
		fields = append(fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value})
	}
	return &discordgo.MessageEmbed{
		Title:     evt.Title,
		Color:     evt.Color,
		Fields:    fields,
		Timestamp: evt.Timestamp.Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: "event " + evt.ID},
	}
}
