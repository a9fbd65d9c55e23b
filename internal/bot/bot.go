package bot

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/jusunglee/hindify/internal/metrics"
	"github.com/jusunglee/hindify/internal/ratelimit"
	"github.com/jusunglee/hindify/internal/transform"
	"github.com/samber/lo"
)

const (
	// Discord rejects embed field values longer than this.
	maxFieldLen = 1024

	emptyTextMessage = "Please enter some text."
	rateLimitMessage = "You're sending commands too quickly. Try again in a minute."
)

type Config struct {
	GuildID         string
	RateLimit       int
	RateLimitWindow time.Duration
	CommandTimeout  time.Duration
}

type Bot struct {
	log         Logger
	session     DiscordSession
	transformer Transformer
	limiter     *ratelimit.Limiter
	config      Config
}

func New(log Logger, session DiscordSession, transformer Transformer, config Config) *Bot {
	if config.RateLimit <= 0 {
		config.RateLimit = 5
	}
	if config.RateLimitWindow <= 0 {
		config.RateLimitWindow = time.Minute
	}
	if config.CommandTimeout <= 0 {
		config.CommandTimeout = time.Minute
	}
	return &Bot{
		log:         log,
		session:     session,
		transformer: transformer,
		limiter:     ratelimit.New(config.RateLimit, config.RateLimitWindow),
		config:      config,
	}
}

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "hindi",
		Description: "Transliterate and translate English text into Hindi",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "English text",
				Required:    true,
			},
		},
	},
	{
		Name:        "romanize",
		Description: "Write Devanagari text in Roman letters",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Devanagari text",
				Required:    true,
			},
		},
	},
}

func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.log.InfoContext(ctx, "connected to Discord", "username", r.User.Username)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening Discord connection: %w", err)
	}

	if err := b.registerCommands(ctx); err != nil {
		b.session.Close()
		return fmt.Errorf("registering commands: %w", err)
	}

	go b.limiter.RunCleanup(ctx, 5*time.Minute)

	b.log.InfoContext(ctx, "bot is running, press Ctrl+C to stop")
	<-ctx.Done()
	b.log.Info("shutdown signal received")

	if err := b.session.Close(); err != nil {
		return fmt.Errorf("closing Discord connection: %w", err)
	}
	b.log.Info("shut down complete")
	return nil
}

func (b *Bot) registerCommands(ctx context.Context) error {
	guildID := b.config.GuildID
	if guildID != "" {
		b.log.InfoContext(ctx, "registering commands to guild", "guild_id", guildID)
	} else {
		b.log.InfoContext(ctx, "registering commands globally (may take up to 1 hour to propagate)")
	}

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.GetUserID(), guildID, commands)
	if err != nil {
		return fmt.Errorf("bulk overwrite commands: %w", err)
	}
	b.log.InfoContext(ctx, "registered commands", "count", len(commands))
	return nil
}

func (b *Bot) handleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.config.CommandTimeout)
	defer cancel()

	data := i.ApplicationCommandData()
	log := b.log.With("command", data.Name, "user_id", interactionUserID(i))

	if !b.limiter.Allow(interactionUserID(i)) {
		metrics.RateLimitHits.Inc()
		log.WarnContext(ctx, "rate limited")
		b.respondEphemeral(ctx, i, rateLimitMessage)
		return
	}

	text := strings.TrimSpace(getOption(data.Options, "text"))
	if text == "" {
		b.respondEphemeral(ctx, i, emptyTextMessage)
		return
	}

	switch data.Name {
	case "hindi":
		b.handleHindi(ctx, log, i, text)
	case "romanize":
		b.respond(ctx, i, &discordgo.InteractionResponseData{
			Content: truncate(b.transformer.Romanize(text), 2000),
		})
	}
}

// handleHindi defers the reply first because translation can exceed
// Discord's three second acknowledgement window.
func (b *Bot) handleHindi(ctx context.Context, log Logger, i *discordgo.InteractionCreate, text string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to defer interaction", "error", err)
		return
	}

	metrics.TransformsTotal.WithLabelValues("discord").Inc()
	embed := formatTransformEmbed(text, b.transformer.Transform(ctx, text))

	embeds := []*discordgo.MessageEmbed{embed}
	if _, err := b.session.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds}); err != nil {
		log.ErrorContext(ctx, "failed to edit interaction response", "error", err)
	}
}

func (b *Bot) respond(ctx context.Context, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		b.log.ErrorContext(ctx, "failed to respond to interaction", "error", err)
	}
}

func (b *Bot) respondEphemeral(ctx context.Context, i *discordgo.InteractionCreate, content string) {
	b.respond(ctx, i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// interactionUserID covers guild interactions (Member set) and DMs (User set).
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func getOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := lo.Find(options, func(o *discordgo.ApplicationCommandInteractionDataOption) bool {
		return o.Name == name
	})
	if !ok {
		return ""
	}
	return opt.StringValue()
}

func formatTransformEmbed(input string, res transform.Result) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Hindify",
		Color:       0xFF9933,
		Description: truncate(input, maxFieldLen),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "English in Devanagari", Value: fieldValue(res.Transliteration)},
			{Name: "Hindi in Devanagari", Value: fieldValue(res.Translation)},
			{Name: "Hindi in Roman Script", Value: fieldValue(res.Romanization)},
		},
	}
}

// fieldValue keeps empty values from being rejected by Discord.
func fieldValue(s string) string {
	if strings.TrimSpace(s) == "" {
		return "\u200b"
	}
	return truncate(s, maxFieldLen)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
