package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
)

const (
	embedColor = 0x5865F2
	// Discord caps embed titles at 256 characters and descriptions at 4096.
	maxTitleLen       = 256
	maxDescriptionLen = 4096
)

// BuildMessageEmbed shows a resolved message with the locale chain that was searched.
func BuildMessageEmbed(code, text string, chain []language.Tag) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       Truncate(code, maxTitleLen),
		Description: Truncate(text, maxDescriptionLen),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: FormatChain(chain)},
	}
}

// FormatChain renders a fallback chain as "ko-KR › ko › base".
func FormatChain(chain []language.Tag) string {
	parts := make([]string, 0, len(chain))
	for _, tag := range chain {
		if tag == language.Und {
			parts = append(parts, "base")
			continue
		}
		parts = append(parts, tag.String())
	}
	return strings.Join(parts, " › ")
}

// Truncate cuts s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
