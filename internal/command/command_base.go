package command

import (
	"server-warden/internal/auditlog"
	"server-warden/internal/config"
	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
)

// Command is the contract every slash command implements.
type Command interface {
	Name() string
	Description() string
	Run(ctx interface{}) error
}

// SlashProvider exposes the Discord application-command definition used for
// registration.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// Responder lets commands reply without importing the discord package
// directly (avoids import cycles; tests inject a recorder).
type Responder interface {
	Respond(s *discordgo.Session, e *discordgo.InteractionCreate, content string) error
	RespondEphemeral(s *discordgo.Session, e *discordgo.InteractionCreate, content string) error
}

// SlashContext carries one inbound command event through the pipeline. It is
// built by the dispatcher, consumed synchronously, and discarded.
type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Actions moderation.ActionClient
	Audit   *auditlog.Logger
	Config  *config.Config
	Reply   Responder

	// IssuerRoleNames are the invoking member's role names, resolved by the
	// dispatcher so the authorization gate stays free of session lookups.
	IssuerRoleNames []string
}

// Actor returns the invoking identity.
func (c *SlashContext) Actor() moderation.User {
	u := c.Event.Member.User
	return moderation.User{ID: u.ID, Tag: u.String()}
}
