package i18n

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/magiconair/properties"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"msgsource/internal/domain/catalog"
	"msgsource/internal/domain/entities"
	"msgsource/internal/ports/output"
)

//go:embed messages*.properties messages.*.toml
var localeFS embed.FS

// DefaultBasename is the bundle name shipped with the binary.
const DefaultBasename = "messages"

// Ensure BundleSource implements the output.MessageSource port.
var _ output.MessageSource = (*BundleSource)(nil)

// BundleSource reads message bundles from a file system.
//
// For each basename two layouts are understood:
//   - <basename>.properties (base) and <basename>_<lang>[_<REGION>].properties
//   - <basename>.<tag>.toml, decoded by go-i18n
//
// Basenames listed first take precedence over later ones. Within a basename,
// .properties entries override TOML entries for the same locale and code.
// TOML messages without an "other" form are skipped.
type BundleSource struct {
	fsys      fs.FS
	basenames []string
	logger    *zap.Logger
}

// NewBundleSource creates a BundleSource over fsys.
func NewBundleSource(fsys fs.FS, basenames []string, logger *zap.Logger) *BundleSource {
	if len(basenames) == 0 {
		basenames = []string{DefaultBasename}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BundleSource{fsys: fsys, basenames: basenames, logger: logger}
}

// EmbeddedFS exposes the bundles compiled into the binary.
func EmbeddedFS() fs.FS {
	return localeFS
}

// Embedded returns the source for the bundles compiled into the binary.
func Embedded(logger *zap.Logger) *BundleSource {
	return NewBundleSource(localeFS, []string{DefaultBasename}, logger)
}

// Load reads every bundle file of the configured basenames.
func (s *BundleSource) Load(ctx context.Context) ([]entities.Message, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read bundle dir: %w", err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var out []entities.Message
	// Lowest precedence first, so the catalog builder lets earlier basenames win.
	for i := len(s.basenames) - 1; i >= 0; i-- {
		basename := strings.TrimSpace(s.basenames[i])
		if basename == "" {
			continue
		}
		for _, ext := range []string{".toml", ".properties"} {
			for _, entry := range entries {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if entry.IsDir() || path.Ext(entry.Name()) != ext {
					continue
				}
				messages, err := s.loadFile(bundle, basename, entry.Name())
				if err != nil {
					return nil, err
				}
				out = append(out, messages...)
			}
		}
	}
	return out, nil
}

func (s *BundleSource) loadFile(bundle *i18n.Bundle, basename, name string) ([]entities.Message, error) {
	switch path.Ext(name) {
	case ".properties":
		locale, ok := s.propertiesLocale(basename, name)
		if !ok {
			return nil, nil
		}
		return loadProperties(s.fsys, name, locale)
	case ".toml":
		if !s.isTOMLBundle(basename, name) {
			return nil, nil
		}
		return s.loadTOML(bundle, name)
	default:
		return nil, nil
	}
}

// propertiesLocale maps messages.properties to the base catalog and
// messages_ko_KR.properties to ko-KR.
func (s *BundleSource) propertiesLocale(basename, name string) (language.Tag, bool) {
	stem := strings.TrimSuffix(name, ".properties")
	if stem == basename {
		return catalog.Base, true
	}
	suffix, ok := strings.CutPrefix(stem, basename+"_")
	if !ok || suffix == "" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(suffix, "_", "-"))
	if err != nil {
		s.logger.Warn("i18n: skipping bundle with unparsable locale",
			zap.String("file", name), zap.Error(err))
		return language.Und, false
	}
	return tag, true
}

func (s *BundleSource) isTOMLBundle(basename, name string) bool {
	tag, ok := strings.CutPrefix(strings.TrimSuffix(name, ".toml"), basename+".")
	if !ok || tag == "" || strings.Contains(tag, ".") {
		return false
	}
	if _, err := language.Parse(tag); err != nil {
		s.logger.Warn("i18n: skipping bundle with unparsable locale",
			zap.String("file", name), zap.Error(err))
		return false
	}
	return true
}

func loadProperties(fsys fs.FS, name string, locale language.Tag) ([]entities.Message, error) {
	buf, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read bundle %s: %w", name, err)
	}
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("decode bundle %s: %w", name, err)
	}

	keys := props.Keys()
	out := make([]entities.Message, 0, len(keys))
	for _, key := range keys {
		value, _ := props.Get(key)
		out = append(out, entities.Message{Locale: locale, Code: key, Template: value})
	}
	return out, nil
}

func (s *BundleSource) loadTOML(bundle *i18n.Bundle, name string) ([]entities.Message, error) {
	file, err := bundle.LoadMessageFileFS(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("decode bundle %s: %w", name, err)
	}
	out := make([]entities.Message, 0, len(file.Messages))
	for _, m := range file.Messages {
		if m.Other == "" {
			s.logger.Warn("i18n: skipping message without other form",
				zap.String("file", name), zap.String("code", m.ID))
			continue
		}
		out = append(out, entities.Message{Locale: file.Tag, Code: m.ID, Template: m.Other})
	}
	return out, nil
}
