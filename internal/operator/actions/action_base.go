package actions

import (
	"context"

	"github.com/nordbooks/backoffice-server/internal/storage"
)

// IAction is a unit of work performed inside one storage transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
