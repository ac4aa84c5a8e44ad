package source

import (
	"context"
)

// Source abstracts where a VIN comes from.
// It hands the decoder a plain VIN string and does no decoding itself.
type Source interface {
	Name() string
	ReadVIN(ctx context.Context) (string, error)
}
