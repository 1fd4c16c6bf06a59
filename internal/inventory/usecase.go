package inventory

import "context"

type UseCase interface {
	Restock(ctx context.Context, id int64, amount float64) error
}
