package application

import (
	"context"
	"fmt"

	"msgsource/internal/domain/catalog"
	"msgsource/internal/ports/output"
)

// LoadCatalog drains sources in order into a frozen catalog. Entries from a
// later source override those of an earlier one.
func LoadCatalog(ctx context.Context, sources ...output.MessageSource) (*catalog.Catalog, error) {
	b := catalog.NewBuilder()
	for i, source := range sources {
		if source == nil {
			continue
		}
		messages, err := source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load message source %d: %w", i, err)
		}
		b.AddMessages(messages...)
	}
	return b.Build(), nil
}
