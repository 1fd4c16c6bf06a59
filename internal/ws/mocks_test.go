package ws

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/auth"
	menudto "github.com/fekuna/omnipos-restaurant-service/internal/menu/dto"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	orderdto "github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
)

type mockStateUC struct {
	snapshot *model.Snapshot
	err      error
	builds   int
}

func (m *mockStateUC) BuildSnapshot(ctx context.Context) (*model.Snapshot, error) {
	m.builds++
	if m.err != nil {
		return nil, m.err
	}
	if m.snapshot != nil {
		return m.snapshot, nil
	}
	return &model.Snapshot{TableBills: map[int64]float64{}}, nil
}

type mockAuthUC struct {
	user *model.User
	err  error
}

func (m *mockAuthUC) Login(ctx context.Context, username, password string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil {
		return nil, auth.ErrInvalidCredentials
	}
	return m.user, nil
}

type mockMenuUC struct {
	created *menudto.CreateMenuItemInput
	deleted int64
	err     error
}

func (m *mockMenuUC) CreateItem(ctx context.Context, input *menudto.CreateMenuItemInput) error {
	m.created = input
	return m.err
}

func (m *mockMenuUC) DeleteItem(ctx context.Context, id int64) error {
	m.deleted = id
	return m.err
}

type mockInventoryUC struct {
	id     int64
	amount float64
	err    error
}

func (m *mockInventoryUC) Restock(ctx context.Context, id int64, amount float64) error {
	m.id = id
	m.amount = amount
	return m.err
}

type mockOrderUC struct {
	placed      *orderdto.PlaceOrderInput
	placeErr    error
	settled     int64
	settleErr   error
	statusID    int64
	statusValue model.OrderStatus
	report      []model.ReportRow
	reportErr   error
}

func (m *mockOrderUC) PlaceOrder(ctx context.Context, input *orderdto.PlaceOrderInput) (int64, error) {
	m.placed = input
	return 1, m.placeErr
}

func (m *mockOrderUC) SettlePayment(ctx context.Context, tableNo int64) error {
	m.settled = tableNo
	return m.settleErr
}

func (m *mockOrderUC) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	m.statusID = id
	m.statusValue = status
	return nil
}

func (m *mockOrderUC) Report(ctx context.Context) ([]model.ReportRow, error) {
	return m.report, m.reportErr
}

type mockTableUC struct {
	reset int64
	err   error
}

func (m *mockTableUC) ResetTable(ctx context.Context, id int64) error {
	m.reset = id
	return m.err
}
