package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ArgSeparator splits the positional arguments typed in a single option.
const ArgSeparator = "|"

// OptionValues flattens string options of a slash command by name.
func OptionValues(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	out := make(map[string]string, len(options))
	for _, opt := range options {
		if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		out[opt.Name] = opt.StringValue()
	}
	return out
}

// SplitArgs turns "a|b" into positional arguments. Blank input yields none;
// blank parts are kept so indexes stay stable.
func SplitArgs(raw string) []any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ArgSeparator)
	out := make([]any, len(parts))
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}
	return out
}
