package discord

import (
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"

	"msgsource/internal/ports/input"
	pkgdiscord "msgsource/pkg/discord"
)

const (
	commandName   = "message"
	optionKey     = "key"
	optionArgs    = "args"
	optionDefault = "default"
	optionLocale  = "locale"

	// Discord caps command and option descriptions at 100 characters.
	maxDescriptionLen = 100
)

// buildCommands describes the slash commands, with descriptions taken from
// the catalog in the default locale and localized for every Discord locale
// whose text differs.
func buildCommands(r input.MessageResolver) []*discordgo.ApplicationCommand {
	option := func(name, code, fallback string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        name,
			Description: describe(r, code, fallback, nil),
			Required:    required,
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:                     commandName,
			Description:              describe(r, "command.message.description", "Look up a message code", nil),
			DescriptionLocalizations: localizations(r, "command.message.description"),
			Options: []*discordgo.ApplicationCommandOption{
				option(optionKey, "command.message.option.key", "Message code", true),
				option(optionArgs, "command.message.option.args", "Arguments separated by |", false),
				option(optionDefault, "command.message.option.default", "Default message", false),
				option(optionLocale, "command.message.option.locale", "Language tag", false),
			},
		},
	}
}

func describe(r input.MessageResolver, code, fallback string, locale *language.Tag) string {
	text, err := r.Resolve(code, nil, &fallback, locale)
	if err != nil || text == "" {
		text = fallback
	}
	return pkgdiscord.Truncate(text, maxDescriptionLen)
}

func localizations(r input.MessageResolver, code string) *map[discordgo.Locale]string {
	base := describe(r, code, "", nil)
	out := map[discordgo.Locale]string{}
	for locale := range discordgo.Locales {
		tag, err := language.Parse(string(locale))
		if err != nil || tag == language.Und {
			continue
		}
		if text := describe(r, code, "", &tag); text != "" && text != base {
			out[locale] = text
		}
	}
	return &out
}
