package application

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"msgsource/internal/domain"
	"msgsource/internal/domain/catalog"
	"msgsource/internal/domain/entities"
)

var koKR = language.MustParse("ko-KR")

// newTestCatalog mirrors the shipped messages.properties / messages_en.properties.
func newTestCatalog() *catalog.Catalog {
	return catalog.NewBuilder().
		Add(catalog.Base, map[string]string{
			"hello":      "안녕",
			"hello.name": "안녕 {0}",
			"quoted":     "it''s {0}",
		}).
		Add(language.English, map[string]string{
			"hello":      "hello",
			"hello.name": "hello {0}",
		}).
		Build()
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(newTestCatalog(), DefaultOptions(koKR))
	defaultMessage := "기본 메시지"

	tests := []struct {
		name           string
		key            string
		args           []any
		defaultMessage *string
		locale         *language.Tag
		expected       string
	}{
		{name: "hello with default locale", key: "hello", expected: "안녕"},
		{name: "default message when missing", key: "no_code", defaultMessage: &defaultMessage, expected: "기본 메시지"},
		{name: "default message for english", key: "no_code", defaultMessage: &defaultMessage, locale: tagPtr("en"), expected: "기본 메시지"},
		{name: "argument substitution", key: "hello.name", args: []any{"Spring"}, expected: "안녕 Spring"},
		{name: "korea reads base catalog", key: "hello", locale: &koKR, expected: "안녕"},
		{name: "english reads english catalog", key: "hello", locale: tagPtr("en"), expected: "hello"},
		{name: "english region falls back to english", key: "hello.name", args: []any{"Spring"}, locale: tagPtr("en-US"), expected: "hello Spring"},
		{name: "unknown locale reads base catalog", key: "hello", locale: tagPtr("fr"), expected: "안녕"},
		{name: "found key ignores default message", key: "hello", defaultMessage: &defaultMessage, expected: "안녕"},
		{name: "no args returns template verbatim", key: "quoted", expected: "it''s {0}"},
		{name: "args apply quoting", key: "quoted", args: []any{"me"}, expected: "it's me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.key, tt.args, tt.defaultMessage, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolver_NotFound(t *testing.T) {
	r := NewResolver(newTestCatalog(), DefaultOptions(koKR))

	for _, locale := range []*language.Tag{nil, &koKR, tagPtr("en"), tagPtr("ja-JP")} {
		_, err := r.Resolve("no_code", nil, nil, locale)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMessageNotFound)

		var notFound *domain.MessageNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "no_code", notFound.Code)
	}
}

func TestResolver_NilLocaleEqualsDefaultLocale(t *testing.T) {
	r := NewResolver(newTestCatalog(), DefaultOptions(koKR))

	withNil, err := r.Resolve("hello", nil, nil, nil)
	require.NoError(t, err)
	withDefault, err := r.Resolve("hello", nil, nil, &koKR)
	require.NoError(t, err)

	assert.Equal(t, withDefault, withNil)
	assert.Equal(t, koKR, r.DefaultLocale())
}

func TestResolver_DefaultMessageIsVerbatim(t *testing.T) {
	r := NewResolver(newTestCatalog(), DefaultOptions(koKR))
	defaultMessage := "missing {0}"

	got, err := r.Resolve("no_code", []any{"x"}, &defaultMessage, nil)
	require.NoError(t, err)
	assert.Equal(t, "missing {0}", got)
}

func TestResolver_EmptyDefaultMessageIsStillADefault(t *testing.T) {
	r := NewResolver(newTestCatalog(), DefaultOptions(koKR))
	empty := ""

	got, err := r.Resolve("no_code", nil, &empty, nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestResolver_EmptyCode(t *testing.T) {
	r := NewResolver(newTestCatalog(), DefaultOptions(koKR))

	_, err := r.Resolve("  ", nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCode)
}

func TestResolver_CodeIsNotTrimmed(t *testing.T) {
	r := NewResolver(newTestCatalog(), DefaultOptions(koKR))

	_, err := r.Resolve("hello ", nil, nil, nil)
	var notFound *domain.MessageNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "hello ", notFound.Code)
}

func TestResolver_ResolveRequestTriesCodesInOrder(t *testing.T) {
	r := NewResolver(newTestCatalog(), DefaultOptions(koKR))

	got, err := r.ResolveRequest(entities.Request{
		Codes:  []string{"typeMismatch.item.price", "hello.name"},
		Args:   []any{"Go"},
		Locale: tagPtr("en"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello Go", got)

	_, err = r.ResolveRequest(entities.Request{Codes: []string{"a", "b"}})
	var notFound *domain.MessageNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "b", notFound.Code)
	assert.Equal(t, "ko-KR", notFound.Locale)
}

func TestResolver_UseCodeAsDefaultMessage(t *testing.T) {
	opts := DefaultOptions(koKR)
	opts.UseCodeAsDefaultMessage = true
	r := NewResolver(newTestCatalog(), opts)

	got, err := r.Resolve("no_code", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "no_code", got)
}

func TestResolver_AlwaysUseMessageFormat(t *testing.T) {
	opts := DefaultOptions(koKR)
	opts.AlwaysUseMessageFormat = true
	r := NewResolver(newTestCatalog(), opts)

	got, err := r.Resolve("quoted", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "it's {0}", got)
}

func TestResolver_DefaultLocaleFallback(t *testing.T) {
	c := catalog.NewBuilder().
		Add(catalog.Base, map[string]string{"greeting": "base"}).
		Add(language.Korean, map[string]string{"greeting": "ko"}).
		Build()

	withFallback := NewResolver(c, DefaultOptions(koKR))
	got, err := withFallback.Resolve("greeting", nil, nil, tagPtr("de"))
	require.NoError(t, err)
	assert.Equal(t, "ko", got)

	withoutFallback := NewResolver(c, Options{DefaultLocale: koKR})
	got, err = withoutFallback.Resolve("greeting", nil, nil, tagPtr("de"))
	require.NoError(t, err)
	assert.Equal(t, "base", got)
}

func TestResolver_Locales(t *testing.T) {
	r := NewResolver(newTestCatalog(), DefaultOptions(koKR))
	assert.Equal(t, []string{"en"}, tagStrings(r.Locales()))
}

// Keys only present in the base catalog resolve to the base value whatever
// the requested locale, as long as no partition on the chain overrides them.
func TestResolver_BaseCatalogProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("base-only keys resolve to the base template", prop.ForAll(
		func(key, value, locale string) bool {
			code := "prop." + key
			c := catalog.NewBuilder().
				Add(catalog.Base, map[string]string{code: value}).
				Add(language.English, map[string]string{"hello": "hello"}).
				Build()
			r := NewResolver(c, DefaultOptions(koKR))

			got, err := r.Resolve(code, nil, nil, tagPtr(locale))
			return err == nil && got == value
		},
		gen.Identifier(),
		gen.AlphaString(),
		gen.OneConstOf("en", "en-US", "ko-KR", "ko", "fr", "de-CH", "zh-Hant-TW", "und"),
	))

	properties.Property("unknown keys fail for every locale", prop.ForAll(
		func(locale string) bool {
			r := NewResolver(newTestCatalog(), DefaultOptions(koKR))
			_, err := r.Resolve("no_code", nil, nil, tagPtr(locale))
			return domain.Code(err) == "message_not_found"
		},
		gen.OneConstOf("en", "en-US", "ko-KR", "ko", "fr", "de-CH", "zh-Hant-TW", "und"),
	))

	properties.TestingRun(t)
}
