package application

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"msgsource/internal/domain"
	"msgsource/internal/domain/catalog"
	"msgsource/internal/domain/entities"
	"msgsource/internal/ports/input"
)

var _ input.MessageResolver = (*Resolver)(nil)

// Options tunes resolution.
type Options struct {
	// DefaultLocale replaces a nil locale and, with FallbackToSystemLocale,
	// is searched after the requested locale.
	DefaultLocale language.Tag
	// UseCodeAsDefaultMessage returns the code instead of failing when
	// nothing matches and no default message was given.
	UseCodeAsDefaultMessage bool
	FallbackToSystemLocale  bool
	// AlwaysUseMessageFormat applies quoting rules even without arguments.
	// When false, a template resolved without arguments is returned as is.
	AlwaysUseMessageFormat bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions(defaultLocale language.Tag) Options {
	return Options{
		DefaultLocale:          defaultLocale,
		FallbackToSystemLocale: true,
	}
}

// Resolver looks messages up in an immutable catalog. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	catalog *catalog.Catalog
	opts    Options
}

// NewResolver creates a Resolver over c.
func NewResolver(c *catalog.Catalog, opts Options) *Resolver {
	return &Resolver{catalog: c, opts: opts}
}

// Resolve renders key for locale. See input.MessageResolver.
func (r *Resolver) Resolve(key string, args []any, defaultMessage *string, locale *language.Tag) (string, error) {
	return r.ResolveRequest(entities.Request{
		Codes:          []string{key},
		Args:           args,
		DefaultMessage: defaultMessage,
		Locale:         locale,
	})
}

// ResolveRequest tries every code of req along the fallback chain before
// falling back to the default message. A miss is reported for the last code.
func (r *Resolver) ResolveRequest(req entities.Request) (string, error) {
	tag := r.requested(req.Locale)

	codes := make([]string, 0, len(req.Codes))
	for _, code := range req.Codes {
		if strings.TrimSpace(code) != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		if req.DefaultMessage != nil {
			return *req.DefaultMessage, nil
		}
		return "", domain.ErrEmptyCode
	}

	chain := r.Chain(&tag)
	for _, code := range codes {
		if template, ok := r.lookup(chain, code); ok {
			return r.render(tag, template, req.Args), nil
		}
	}

	if req.DefaultMessage != nil {
		return *req.DefaultMessage, nil
	}
	last := codes[len(codes)-1]
	if r.opts.UseCodeAsDefaultMessage {
		return last, nil
	}
	return "", &domain.MessageNotFoundError{Code: last, Locale: tag.String()}
}

// DefaultLocale returns the locale used for nil requests.
func (r *Resolver) DefaultLocale() language.Tag {
	return r.opts.DefaultLocale
}

// Locales lists the localized catalog partitions.
func (r *Resolver) Locales() []language.Tag {
	return r.catalog.Locales()
}

func (r *Resolver) requested(locale *language.Tag) language.Tag {
	if locale == nil {
		return r.opts.DefaultLocale
	}
	return *locale
}

func (r *Resolver) lookup(chain []language.Tag, code string) (string, bool) {
	for _, tag := range chain {
		if template, ok := r.catalog.Lookup(tag, code); ok {
			return template, true
		}
	}
	return "", false
}

func (r *Resolver) render(tag language.Tag, template string, args []any) string {
	if len(args) == 0 && !r.opts.AlwaysUseMessageFormat {
		return template
	}
	return formatMessage(message.NewPrinter(tag), template, args)
}
