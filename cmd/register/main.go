// cmd/register/main.go
//
// One-time utility: overwrites the guild's slash commands with the
// definitions from the command registry. Run it after adding or changing a
// command; the bot itself never touches command registration.
package main

import (
	"log"

	"server-warden/internal/command"
	"server-warden/internal/config"

	"github.com/bwmarrin/discordgo"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GuildID == "" {
		log.Fatal("GUILD_ID is not set")
	}

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatal(err)
	}
	if err := dg.Open(); err != nil {
		log.Fatal(err)
	}
	defer dg.Close()

	var defs []*discordgo.ApplicationCommand
	for _, c := range command.All() {
		sp, ok := c.(command.SlashProvider)
		if !ok {
			continue
		}
		if def := sp.SlashDefinition(); def != nil {
			defs = append(defs, def)
		}
	}

	log.Printf("[INFO] Started refreshing %d application (/) commands.", len(defs))

	created, err := dg.ApplicationCommandBulkOverwrite(dg.State.User.ID, cfg.GuildID, defs)
	if err != nil {
		log.Fatalf("[ERR] Failed to register commands: %v", err)
	}

	log.Printf("[INFO] Successfully reloaded %d application (/) commands.", len(created))
}
