package discord

import (
	"server-warden/internal/command"

	"github.com/bwmarrin/discordgo"
)

// responder implements command.Responder so commands can reply without
// importing the discord package directly (avoids import cycles).
type responder struct{}

func (responder) Respond(s *discordgo.Session, e *discordgo.InteractionCreate, content string) error {
	return Respond(s, e, content)
}

func (responder) RespondEphemeral(s *discordgo.Session, e *discordgo.InteractionCreate, content string) error {
	return RespondEphemeral(s, e, content)
}

// DefaultResponder is injected into command contexts.
var DefaultResponder command.Responder = responder{}

// Respond sends a public message response to an interaction.
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

// RespondEphemeral sends a message response visible only to the issuer.
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
