package usecase

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
)

type mockMenuRepo struct {
	items []model.MenuItem
	err   error
}

func (m *mockMenuRepo) FindAllSorted(ctx context.Context) ([]model.MenuItem, error) {
	return m.items, m.err
}
func (m *mockMenuRepo) Create(ctx context.Context, item *model.MenuItem) error { return nil }
func (m *mockMenuRepo) DeleteWithRecipes(ctx context.Context, id int64) error  { return nil }

type mockInventoryRepo struct {
	items []model.InventoryItem
	err   error
}

func (m *mockInventoryRepo) FindAll(ctx context.Context) ([]model.InventoryItem, error) {
	return m.items, m.err
}
func (m *mockInventoryRepo) Restock(ctx context.Context, id int64, amount float64) error {
	return nil
}

type mockTableRepo struct {
	tables []model.Table
	err    error
}

func (m *mockTableRepo) FindAll(ctx context.Context) ([]model.Table, error) {
	return m.tables, m.err
}
func (m *mockTableRepo) SetStatus(ctx context.Context, id int64, status model.TableStatus) error {
	return nil
}

type mockOrderRepo struct {
	visible      []model.Order
	itemsByOrder map[int64][]model.OrderItem
	revenue      float64
	count        int
	unpaid       map[int64]float64
	err          error
}

func (m *mockOrderRepo) PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (int64, error) {
	return 0, nil
}

func (m *mockOrderRepo) FindVisible(ctx context.Context) ([]model.Order, error) {
	return m.visible, m.err
}

func (m *mockOrderRepo) FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return m.itemsByOrder[orderID], nil
}

func (m *mockOrderRepo) MarkTablePaid(ctx context.Context, tableNo int64) error { return nil }
func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return nil
}

func (m *mockOrderRepo) Revenue(ctx context.Context) (float64, error) { return m.revenue, nil }
func (m *mockOrderRepo) CountAll(ctx context.Context) (int, error)    { return m.count, nil }

func (m *mockOrderRepo) UnpaidTotalsByTable(ctx context.Context) (map[int64]float64, error) {
	return m.unpaid, nil
}

func (m *mockOrderRepo) PaidReport(ctx context.Context) ([]model.ReportRow, error) {
	return nil, nil
}
