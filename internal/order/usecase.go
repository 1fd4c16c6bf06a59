package order

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
)

type UseCase interface {
	PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (int64, error)

	// SettlePayment marks every Unpaid order on the table Paid, then moves
	// the table to Cleaning.
	SettlePayment(ctx context.Context, tableNo int64) error

	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
	Report(ctx context.Context) ([]model.ReportRow, error)
}
