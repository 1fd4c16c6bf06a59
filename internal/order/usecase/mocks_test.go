package usecase

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
)

type mockOrderRepo struct {
	placeInput    *dto.PlaceOrderInput
	placeID       int64
	placeErr      error
	paidTable     int64
	markPaidErr   error
	statusID      int64
	statusValue   model.OrderStatus
	report        []model.ReportRow
	reportErr     error
	markPaidCalls int
}

func (m *mockOrderRepo) PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (int64, error) {
	m.placeInput = input
	return m.placeID, m.placeErr
}

func (m *mockOrderRepo) FindVisible(ctx context.Context) ([]model.Order, error) { return nil, nil }
func (m *mockOrderRepo) FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return nil, nil
}

func (m *mockOrderRepo) MarkTablePaid(ctx context.Context, tableNo int64) error {
	m.paidTable = tableNo
	m.markPaidCalls++
	return m.markPaidErr
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	m.statusID = id
	m.statusValue = status
	return nil
}

func (m *mockOrderRepo) Revenue(ctx context.Context) (float64, error) { return 0, nil }
func (m *mockOrderRepo) CountAll(ctx context.Context) (int, error)    { return 0, nil }
func (m *mockOrderRepo) UnpaidTotalsByTable(ctx context.Context) (map[int64]float64, error) {
	return nil, nil
}

func (m *mockOrderRepo) PaidReport(ctx context.Context) ([]model.ReportRow, error) {
	return m.report, m.reportErr
}

type mockTableRepo struct {
	statusID    int64
	statusValue model.TableStatus
	statusCalls int
	err         error
}

func (m *mockTableRepo) FindAll(ctx context.Context) ([]model.Table, error) { return nil, nil }

func (m *mockTableRepo) SetStatus(ctx context.Context, id int64, status model.TableStatus) error {
	m.statusID = id
	m.statusValue = status
	m.statusCalls++
	return m.err
}
