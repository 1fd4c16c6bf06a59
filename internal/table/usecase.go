package table

import "context"

type UseCase interface {
	// ResetTable puts the table back to Available regardless of its current
	// status. Resetting an Available table is a no-op by construction.
	ResetTable(ctx context.Context, id int64) error
}
