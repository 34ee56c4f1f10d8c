package command

import (
	"errors"
	"log"

	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
)

// optionUser returns the user supplied for the named option, preferring the
// resolved user record (which carries the tag) over the bare id.
func optionUser(e *discordgo.InteractionCreate, name string) *discordgo.User {
	data := e.ApplicationCommandData()
	for _, opt := range data.Options {
		if opt.Name != name || opt.Type != discordgo.ApplicationCommandOptionUser {
			continue
		}
		id, _ := opt.Value.(string)
		if data.Resolved != nil {
			if u, ok := data.Resolved.Users[id]; ok {
				return u
			}
		}
		return &discordgo.User{ID: id}
	}
	return nil
}

func optionString(e *discordgo.InteractionCreate, name string) string {
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			s, _ := opt.Value.(string)
			return s
		}
	}
	return ""
}

func optionInt(e *discordgo.InteractionCreate, name string) (int, bool) {
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionInteger {
			// Interaction payloads decode integers as float64.
			if f, ok := opt.Value.(float64); ok {
				return int(f), true
			}
		}
	}
	return 0, false
}

// respondFailure is the single translation point from a moderation error to
// the user-visible reply. Remote failures are logged for operators; the raw
// error never reaches the issuer.
func respondFailure(slash *SlashContext, commandName string, err error) error {
	var mErr *moderation.Error
	if errors.As(err, &mErr) {
		if mErr.Kind == moderation.RemoteActionFailed {
			log.Printf("[ERR] %s failed: %v", commandName, mErr.Unwrap())
		}
		return slash.Reply.RespondEphemeral(slash.Session, slash.Event, mErr.Message)
	}

	log.Printf("[ERR] %s failed: %v", commandName, err)
	return slash.Reply.RespondEphemeral(slash.Session, slash.Event, "Something went wrong. Try again later.")
}
