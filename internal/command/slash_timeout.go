package command

import (
	"fmt"

	"server-warden/internal/auditlog"
	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
)

// TimeoutCommand backs both /mute and /timeout: the same platform restriction
// with different wording.
type TimeoutCommand struct {
	Mute bool
}

func (c *TimeoutCommand) Name() string {
	if c.Mute {
		return "mute"
	}
	return "timeout"
}

func (c *TimeoutCommand) Description() string {
	if c.Mute {
		return "Mute a member for a duration"
	}
	return "Time out a member for a duration"
}

func (c *TimeoutCommand) kind() moderation.Kind {
	if c.Mute {
		return moderation.KindMute
	}
	return moderation.KindTimeout
}

func (c *TimeoutCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The member to restrict",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "duration",
				Description: "Duration in seconds",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Reason for the restriction",
			},
		},
	}
}

func (c *TimeoutCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	target := optionUser(slash.Event, "user")
	if target == nil {
		return slash.Reply.RespondEphemeral(slash.Session, slash.Event, "No user selected.")
	}
	duration, ok := optionInt(slash.Event, "duration")
	if !ok {
		return slash.Reply.RespondEphemeral(slash.Session, slash.Event, "No duration given.")
	}
	reason := optionString(slash.Event, "reason")

	svc := moderation.NewService(slash.Actions)
	res, err := svc.Timeout(
		slash.Event.GuildID,
		moderation.User{ID: target.ID, Tag: target.String()},
		slash.Actor(),
		duration,
		reason,
		c.kind(),
	)
	if err != nil {
		return respondFailure(slash, c.Name(), err)
	}

	verb := "Timed out"
	if c.Mute {
		verb = "Muted"
	}
	reply := fmt.Sprintf("%s **%s** for **%s** (Reason: *%s*)", verb, res.Target.Tag, res.DurationDisplay(), res.Reason)
	if err := slash.Reply.Respond(slash.Session, slash.Event, reply); err != nil {
		return err
	}

	slash.Audit.Emit(auditlog.NewEvent(res))
	return nil
}

func init() {
	Register(ApplyMiddlewares(
		&TimeoutCommand{Mute: true},
		WithModeratorCheck(),
		WithGuildOnly(),
	))
	Register(ApplyMiddlewares(
		&TimeoutCommand{},
		WithModeratorCheck(),
		WithGuildOnly(),
	))
}
