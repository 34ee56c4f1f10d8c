package discord

import (
	"context"
	"fmt"
	"log"

	"server-warden/internal/auditlog"
	"server-warden/internal/command"
	"server-warden/internal/config"
	"server-warden/internal/moderation"

	"github.com/bwmarrin/discordgo"
)

// Bot is the Discord session collaborator: it owns the gateway connection and
// dispatches slash command interactions into the command registry.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	actions moderation.ActionClient
	audit   *auditlog.Logger
}

// NewBot builds the bot plus the process-wide shared capabilities: the action
// client over the session and the audit logger on top of it.
func NewBot(cfg *config.Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	actions := NewActionClient(dg)
	return &Bot{
		dg:      dg,
		cfg:     cfg,
		actions: actions,
		audit:   auditlog.New(actions, cfg.LogChannelID),
	}, nil
}

// Actions exposes the shared action client (the dashboard uses the same one).
func (b *Bot) Actions() moderation.ActionClient { return b.actions }

// Audit exposes the shared audit logger.
func (b *Bot) Audit() *auditlog.Logger { return b.audit }

// Run connects to the gateway and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.configureIntents()
	b.dg.AddHandler(b.onReady)
	b.dg.AddHandler(b.onInteractionCreate)

	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent
}

// onReady is called when the gateway session is established.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ Logged in as %s", r.User.String())
	log.Println("[INFO] The bot is now online and running.")
}

// onInteractionCreate dispatches a slash command interaction through the
// registry. Each invocation is independent; nothing here mutates shared
// state.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmdName := i.ApplicationCommandData().Name
	cmd, ok := command.Get(cmdName)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", cmdName)
		return
	}

	ctx := &command.SlashContext{
		Session:         s,
		Event:           i,
		Actions:         b.actions,
		Audit:           b.audit,
		Config:          b.cfg,
		Reply:           DefaultResponder,
		IssuerRoleNames: b.memberRoleNames(s, i.GuildID, i.Member),
	}

	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Error running command %s: %v", cmdName, err)
	}
}

// memberRoleNames resolves the member's role IDs into names, from state when
// possible with a REST fallback.
func (b *Bot) memberRoleNames(s *discordgo.Session, guildID string, member *discordgo.Member) []string {
	if guildID == "" || member == nil {
		return nil
	}

	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil || len(guild.Roles) == 0 {
		guild, err = s.Guild(guildID)
		if err != nil {
			log.Println("[WARN] Failed to fetch guild roles:", err)
			return nil
		}
	}

	byID := make(map[string]string, len(guild.Roles))
	for _, r := range guild.Roles {
		byID[r.ID] = r.Name
	}

	names := make([]string, 0, len(member.Roles))
	for _, id := range member.Roles {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
