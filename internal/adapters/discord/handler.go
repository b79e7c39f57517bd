package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"msgsource/internal/domain"
	"msgsource/internal/ports/input"
	pkgdiscord "msgsource/pkg/discord"
)

// Handler handles Discord interactions using the message resolver.
type Handler struct {
	resolver input.MessageResolver
	logger   *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(resolver input.MessageResolver, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{resolver: resolver, logger: logger}
}

type messageRequest struct {
	key            string
	args           []any
	defaultMessage *string
	locale         language.Tag
}

// HandleMessageCommand answers /message with the resolved text, privately.
func (h *Handler) HandleMessageCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := pkgdiscord.OptionValues(i.ApplicationCommandData().Options)
	respond(s, i.Interaction, h.answer(values, i.Locale))
}

func (h *Handler) answer(values map[string]string, interactionLocale discordgo.Locale) *discordgo.InteractionResponseData {
	userLocale := h.userLocale(interactionLocale)

	req, err := parseMessageRequest(values, userLocale)
	if err != nil {
		return ephemeralText(pkgdiscord.DomainErrorMessage(h.resolver, err, userLocale, values[optionLocale]))
	}

	text, err := h.resolver.Resolve(req.key, req.args, req.defaultMessage, &req.locale)
	if err != nil {
		h.logger.Debug("message lookup failed",
			zap.String("key", req.key), zap.String("locale", req.locale.String()), zap.Error(err))
		return ephemeralText(pkgdiscord.DomainErrorMessage(h.resolver, err, req.locale, req.key))
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildMessageEmbed(req.key, text, h.resolver.Chain(&req.locale))},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

// userLocale is the Discord client language, or the default locale when
// Discord sends none we understand.
func (h *Handler) userLocale(l discordgo.Locale) language.Tag {
	if tag, err := language.Parse(string(l)); err == nil && tag != language.Und {
		return tag
	}
	return h.resolver.DefaultLocale()
}

func parseMessageRequest(values map[string]string, userLocale language.Tag) (messageRequest, error) {
	req := messageRequest{
		key:    strings.TrimSpace(values[optionKey]),
		args:   pkgdiscord.SplitArgs(values[optionArgs]),
		locale: userLocale,
	}
	if req.key == "" {
		return req, domain.ErrEmptyCode
	}
	if v, ok := values[optionDefault]; ok {
		req.defaultMessage = &v
	}
	if raw := strings.TrimSpace(values[optionLocale]); raw != "" {
		tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
		if err != nil {
			return req, domain.ErrInvalidLocale
		}
		req.locale = tag
	}
	return req, nil
}
