package ports

import (
	"context"

	"sheetlens/domain/catalog"
	"sheetlens/domain/core"
)

// CatalogStore persists dataset catalog entries. The in-memory adapter is the
// default; the postgres adapter is used when DATABASE_URL is configured.
type CatalogStore interface {
	Save(ctx context.Context, entry *catalog.Entry) error
	Get(ctx context.Context, id core.DatasetID) (*catalog.Entry, error)
	List(ctx context.Context) ([]*catalog.Entry, error)
	Delete(ctx context.Context, id core.DatasetID) error
}
