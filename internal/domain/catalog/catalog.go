// Package catalog holds the immutable (locale, code) -> template table that
// every resolution reads from.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"msgsource/internal/domain/entities"
)

// Base is the locale of the unlocalized partition, searched last.
var Base = language.Und

// Catalog is a read-only message table. It is safe for concurrent use.
type Catalog struct {
	messages map[string]map[string]string
	locales  []language.Tag
}

// Builder collects entries before a Catalog is frozen. Later additions for the
// same locale and code replace earlier ones.
type Builder struct {
	messages map[string]map[string]string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{messages: map[string]map[string]string{}}
}

// Add inserts entries for locale. Codes are exact keys; blank codes are ignored.
func (b *Builder) Add(locale language.Tag, entries map[string]string) *Builder {
	key := partitionKey(locale)
	for code, template := range entries {
		if strings.TrimSpace(code) == "" {
			continue
		}
		if b.messages[key] == nil {
			b.messages[key] = map[string]string{}
		}
		b.messages[key][code] = template
	}
	return b
}

// AddMessages inserts messages in order.
func (b *Builder) AddMessages(messages ...entities.Message) *Builder {
	for _, m := range messages {
		b.Add(m.Locale, map[string]string{m.Code: m.Template})
	}
	return b
}

// Build returns a Catalog holding a copy of the collected entries. The Builder
// may keep being used without affecting the returned Catalog.
func (b *Builder) Build() *Catalog {
	c := &Catalog{messages: make(map[string]map[string]string, len(b.messages))}
	for key, entries := range b.messages {
		copied := make(map[string]string, len(entries))
		for code, template := range entries {
			copied[code] = template
		}
		c.messages[key] = copied
		if key != partitionKey(Base) {
			c.locales = append(c.locales, language.Make(key))
		}
	}
	sort.Slice(c.locales, func(i, j int) bool {
		return c.locales[i].String() < c.locales[j].String()
	})
	return c
}

// Lookup returns the template stored for exactly locale and code, without any
// fallback.
func (c *Catalog) Lookup(locale language.Tag, code string) (string, bool) {
	if c == nil {
		return "", false
	}
	template, ok := c.messages[partitionKey(locale)][code]
	return template, ok
}

// Locales lists the localized partitions, sorted, excluding Base.
func (c *Catalog) Locales() []language.Tag {
	if c == nil {
		return nil
	}
	out := make([]language.Tag, len(c.locales))
	copy(out, c.locales)
	return out
}

// Len returns the number of entries across all partitions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, entries := range c.messages {
		n += len(entries)
	}
	return n
}

func partitionKey(locale language.Tag) string {
	return locale.String()
}
