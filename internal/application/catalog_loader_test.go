package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"msgsource/internal/domain/catalog"
	"msgsource/internal/domain/entities"
)

type staticSource struct {
	messages []entities.Message
	err      error
}

func (s staticSource) Load(context.Context) ([]entities.Message, error) {
	return s.messages, s.err
}

func TestLoadCatalog_LaterSourcesOverride(t *testing.T) {
	embedded := staticSource{messages: []entities.Message{
		{Locale: catalog.Base, Code: "hello", Template: "안녕"},
		{Locale: language.English, Code: "hello", Template: "hello"},
	}}
	overrides := staticSource{messages: []entities.Message{
		{Locale: language.English, Code: "hello", Template: "hi"},
	}}

	c, err := LoadCatalog(context.Background(), embedded, nil, overrides)
	require.NoError(t, err)

	got, ok := c.Lookup(language.English, "hello")
	require.True(t, ok)
	assert.Equal(t, "hi", got)

	got, ok = c.Lookup(catalog.Base, "hello")
	require.True(t, ok)
	assert.Equal(t, "안녕", got)
}

func TestLoadCatalog_PropagatesSourceErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := LoadCatalog(context.Background(), staticSource{}, staticSource{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "load message source 1")
}
