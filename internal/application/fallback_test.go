package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"msgsource/internal/domain/catalog"
)

func TestResolver_Chain(t *testing.T) {
	koKR := language.MustParse("ko-KR")
	tests := []struct {
		name     string
		opts     Options
		locale   *language.Tag
		expected []string
	}{
		{
			name:     "nil locale uses default",
			opts:     DefaultOptions(koKR),
			locale:   nil,
			expected: []string{"ko-KR", "ko", "und"},
		},
		{
			name:     "language only",
			opts:     DefaultOptions(koKR),
			locale:   tagPtr("en"),
			expected: []string{"en", "ko-KR", "ko", "und"},
		},
		{
			name:     "language and region",
			opts:     DefaultOptions(koKR),
			locale:   tagPtr("en-US"),
			expected: []string{"en-US", "en", "ko-KR", "ko", "und"},
		},
		{
			name:     "script and region",
			opts:     DefaultOptions(language.English),
			locale:   tagPtr("zh-Hant-TW"),
			expected: []string{"zh-Hant-TW", "zh-Hant", "zh-TW", "zh", "en", "und"},
		},
		{
			name:     "requested equals default",
			opts:     DefaultOptions(koKR),
			locale:   tagPtr("ko-KR"),
			expected: []string{"ko-KR", "ko", "und"},
		},
		{
			name:     "without system locale fallback",
			opts:     Options{DefaultLocale: koKR},
			locale:   tagPtr("en-GB"),
			expected: []string{"en-GB", "en", "und"},
		},
		{
			name:     "undetermined locale",
			opts:     DefaultOptions(language.English),
			locale:   tagPtr("und"),
			expected: []string{"en", "und"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(catalog.NewBuilder().Build(), tt.opts)
			assert.Equal(t, tt.expected, tagStrings(r.Chain(tt.locale)))
		})
	}
}

func tagPtr(s string) *language.Tag {
	tag := language.MustParse(s)
	return &tag
}

func tagStrings(tags []language.Tag) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}
