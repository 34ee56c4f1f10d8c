package command

import (
	"fmt"
	"time"

	"server-warden/internal/auditlog"
	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
)

// purgeLogDelay defers the purge audit event so the bulk delete fully
// settles server-side before the event describes it. This means the audit
// event can land after later replies; that reordering is expected.
var purgeLogDelay = 3 * time.Second

type PurgeCommand struct{}

func (c *PurgeCommand) Name() string        { return "purge" }
func (c *PurgeCommand) Description() string { return "Bulk delete recent messages in this channel" }

func (c *PurgeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Number of messages to delete (1-100)",
				Required:    true,
			},
		},
	}
}

func (c *PurgeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	amount, ok := optionInt(slash.Event, "amount")
	if !ok {
		return slash.Reply.RespondEphemeral(slash.Session, slash.Event, "No amount given.")
	}

	svc := moderation.NewService(slash.Actions)
	res, err := svc.Purge(slash.Event.ChannelID, slash.Actor(), amount)
	if err != nil {
		return respondFailure(slash, c.Name(), err)
	}

	reply := fmt.Sprintf("Successfully deleted **%d** messages.", res.DeletedCount)
	if err := slash.Reply.RespondEphemeral(slash.Session, slash.Event, reply); err != nil {
		return err
	}

	slash.Audit.EmitAfter(purgeLogDelay, auditlog.NewEvent(res))
	return nil
}

func init() {
	Register(ApplyMiddlewares(
		&PurgeCommand{},
		WithModeratorCheck(),
		WithGuildOnly(),
	))
}
