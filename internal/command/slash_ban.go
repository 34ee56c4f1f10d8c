package command

import (
	"fmt"

	"server-warden/internal/auditlog"
	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
)

type BanCommand struct{}

func (c *BanCommand) Name() string        { return "ban" }
func (c *BanCommand) Description() string { return "Ban a user from the server" }

func (c *BanCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user to ban",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Reason for the ban",
			},
		},
	}
}

func (c *BanCommand) Run(ctx interface{}) error {
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
	res, err := svc.Ban(
		slash.Event.GuildID,
		moderation.User{ID: target.ID, Tag: target.String()},
		slash.Actor(),
		reason,
	)
	if err != nil {
		return respondFailure(slash, c.Name(), err)
	}

	reply := fmt.Sprintf("Banned **%s** for reason: *%s*", res.Target.Tag, res.Reason)
	if err := slash.Reply.Respond(slash.Session, slash.Event, reply); err != nil {
		return err
	}

	slash.Audit.Emit(auditlog.NewEvent(res))
	return nil
}

func init() {
	Register(ApplyMiddlewares(
		&BanCommand{},
		WithModeratorCheck(),
		WithGuildOnly(),
	))
}
