package order

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
)

type Repository interface {
	// PlaceOrder runs the whole placement as one transaction: the order row,
	// its item snapshots, the recipe-driven inventory deductions (clamped at
	// zero) and the table flip to Occupied. Any failure rolls everything
	// back; no partial state survives.
	PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (int64, error)

	// FindVisible returns orders still shown to staff: not yet Completed, or
	// Completed but still owing money. Newest first.
	FindVisible(ctx context.Context) ([]model.Order, error)
	FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// MarkTablePaid flips every Unpaid order on the table to Paid. Already
	// Paid orders are untouched, so repeated settlement is a no-op.
	MarkTablePaid(ctx context.Context, tableNo int64) error
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error

	Revenue(ctx context.Context) (float64, error)
	CountAll(ctx context.Context) (int, error)
	UnpaidTotalsByTable(ctx context.Context) (map[int64]float64, error)
	PaidReport(ctx context.Context) ([]model.ReportRow, error)
}
