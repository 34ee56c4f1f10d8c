package command

import (
	"fmt"

	"server-warden/internal/auditlog"
	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
)

type KickCommand struct{}

func (c *KickCommand) Name() string        { return "kick" }
func (c *KickCommand) Description() string { return "Kick a member from the server" }

func (c *KickCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The member to kick",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Reason for the kick",
			},
		},
	}
}

func (c *KickCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	target := optionUser(slash.Event, "user")
	if target == nil {
		return slash.Reply.RespondEphemeral(slash.Session, slash.Event, "No user selected.")
	}
	reason := optionString(slash.Event, "reason")

	svc := moderation.NewService(slash.Actions)
	res, err := svc.Kick(
		slash.Event.GuildID,
		moderation.User{ID: target.ID, Tag: target.String()},
		slash.Actor(),
		reason,
	)
	if err != nil {
		return respondFailure(slash, c.Name(), err)
	}

	reply := fmt.Sprintf("Kicked **%s** for reason: *%s*", res.Target.Tag, res.Reason)
	if err := slash.Reply.Respond(slash.Session, slash.Event, reply); err != nil {
		return err
	}

	slash.Audit.Emit(auditlog.NewEvent(res))
	return nil
}

func init() {
	Register(ApplyMiddlewares(
		&KickCommand{},
		WithModeratorCheck(),
		WithGuildOnly(),
	))
}
