package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"msgsource/internal/config"
	"msgsource/internal/ports/input"
)

// Bot is the Discord adapter.
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	resolver input.MessageResolver
	handler  *Handler
	logger   *zap.Logger
}

// NewBot creates a Bot serving resolver over a new Discord session.
func NewBot(cfg *config.Config, resolver input.MessageResolver, logger *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session:  s,
		config:   cfg,
		resolver: resolver,
		handler:  NewHandler(resolver, logger),
		logger:   logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == commandName {
		b.handler.HandleMessageCommand(s, i)
	}
}

// Start runs the bot until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range buildCommands(b.resolver) {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			b.logger.Warn("⚠️ command registration failed", zap.String("command", cmd.Name), zap.Error(err))
		}
	}

	b.logger.Info("🤖 bot online, press CTRL+C to quit")
	<-ctx.Done()
	return nil
}
