package command

import (
	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// ApplyMiddlewares wraps cmd; the first middleware in the list is the
// innermost.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithGuildOnly silently drops interactions that arrive outside a guild.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*SlashContext); ok {
					if v.Event.GuildID == "" || v.Event.Member == nil {
						return nil
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithModeratorCheck runs the authorization gate before the command. Denials
// are reported to the issuer ephemerally with the gate's reason and stop the
// pipeline before any remote call.
func WithModeratorCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				slash, ok := ctx.(*SlashContext)
				if !ok {
					return cmd.Run(ctx)
				}

				member := slash.Event.Member
				issuer := moderation.Issuer{
					RoleNames:      slash.IssuerRoleNames,
					Administrator:  member.Permissions&discordgo.PermissionAdministrator != 0,
					ManageMessages: member.Permissions&discordgo.PermissionManageMessages != 0,
				}

				decision := moderation.Authorize(issuer, cmd.Name(), slash.Config.RequiredRoleName)
				if !decision.Allowed {
					return slash.Reply.RespondEphemeral(slash.Session, slash.Event, decision.Reason)
				}

				return cmd.Run(ctx)
			},
		}
	}
}
