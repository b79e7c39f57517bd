package application

import (
	"golang.org/x/text/language"

	"msgsource/internal/domain/catalog"
)

// Chain lists the partitions searched for locale, most specific first:
// the requested locale and its reductions down to the bare language, then
// the default locale and its reductions, then the base catalog.
// A nil locale is replaced by the default locale.
func (r *Resolver) Chain(locale *language.Tag) []language.Tag {
	requested := r.requested(locale)

	var chain []language.Tag
	seen := map[string]struct{}{}
	add := func(tags ...language.Tag) {
		for _, tag := range tags {
			key := tag.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			chain = append(chain, tag)
		}
	}

	add(reductions(requested)...)
	if r.opts.FallbackToSystemLocale {
		add(reductions(r.opts.DefaultLocale)...)
	}
	add(catalog.Base)
	return chain
}

// reductions returns tag followed by progressively less specific forms.
// zh-Hant-TW yields zh-Hant-TW, zh-Hant, zh-TW, zh.
func reductions(tag language.Tag) []language.Tag {
	if tag == language.Und {
		return nil
	}
	base, script, region := tag.Raw()
	if base.String() == "und" {
		return []language.Tag{tag}
	}
	hasScript := script.String() != "Zzzz"
	hasRegion := region.String() != "ZZ"

	out := []language.Tag{tag}
	if hasScript && hasRegion {
		out = append(out, language.Make(base.String()+"-"+script.String()+"-"+region.String()))
	}
	if hasScript {
		out = append(out, language.Make(base.String()+"-"+script.String()))
	}
	if hasRegion {
		out = append(out, language.Make(base.String()+"-"+region.String()))
	}
	return append(out, language.Make(base.String()))
}
