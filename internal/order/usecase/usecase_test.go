package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

func validInput() *dto.PlaceOrderInput {
	return &dto.PlaceOrderInput{
		TableNo: 5,
		Total:   21.00,
		Items: []dto.OrderItemInput{
			{MenuItemID: 1, Name: "Margherita", Price: 12.50},
			{MenuItemID: 2, Name: "Cola", Price: 8.50},
		},
	}
}

func TestPlaceOrder_Valid(t *testing.T) {
	repo := &mockOrderRepo{placeID: 42}
	uc := NewOrderUseCase(repo, &mockTableRepo{}, logger.NewNop())

	id, err := uc.PlaceOrder(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	require.NotNil(t, repo.placeInput)
	assert.Equal(t, int64(5), repo.placeInput.TableNo)
}

func TestPlaceOrder_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.PlaceOrderInput)
	}{
		{"zeroTable", func(in *dto.PlaceOrderInput) { in.TableNo = 0 }},
		{"noItems", func(in *dto.PlaceOrderInput) { in.Items = nil }},
		{"emptyItemName", func(in *dto.PlaceOrderInput) { in.Items[0].Name = "" }},
		{"negativePrice", func(in *dto.PlaceOrderInput) { in.Items[1].Price = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockOrderRepo{}
			uc := NewOrderUseCase(repo, &mockTableRepo{}, logger.NewNop())

			in := validInput()
			tt.mutate(in)

			_, err := uc.PlaceOrder(context.Background(), in)
			require.Error(t, err)
			// The repository must never see an invalid order.
			assert.Nil(t, repo.placeInput)
		})
	}
}

func TestPlaceOrder_DeclaredTotalTrusted(t *testing.T) {
	repo := &mockOrderRepo{placeID: 1}
	uc := NewOrderUseCase(repo, &mockTableRepo{}, logger.NewNop())

	in := validInput()
	in.Total = 3.00 // does not match item prices; terminals may discount

	_, err := uc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 3.00, repo.placeInput.Total)
}

func TestPlaceOrder_RepoErrorPropagates(t *testing.T) {
	repo := &mockOrderRepo{placeErr: errors.New("deadlock detected")}
	uc := NewOrderUseCase(repo, &mockTableRepo{}, logger.NewNop())

	_, err := uc.PlaceOrder(context.Background(), validInput())
	require.Error(t, err)
}

func TestSettlePayment_MarksPaidThenCleaning(t *testing.T) {
	repo := &mockOrderRepo{}
	tableRepo := &mockTableRepo{}
	uc := NewOrderUseCase(repo, tableRepo, logger.NewNop())

	require.NoError(t, uc.SettlePayment(context.Background(), 5))

	assert.Equal(t, int64(5), repo.paidTable)
	assert.Equal(t, int64(5), tableRepo.statusID)
	assert.Equal(t, model.TableCleaning, tableRepo.statusValue)
}

func TestSettlePayment_PaymentFailureSkipsTable(t *testing.T) {
	repo := &mockOrderRepo{markPaidErr: errors.New("connection lost")}
	tableRepo := &mockTableRepo{}
	uc := NewOrderUseCase(repo, tableRepo, logger.NewNop())

	require.Error(t, uc.SettlePayment(context.Background(), 5))
	assert.Zero(t, tableRepo.statusCalls)
}

func TestSettlePayment_Repeatable(t *testing.T) {
	// Settling an already-settled table touches nothing Unpaid; the
	// operation stays safe to repeat.
	repo := &mockOrderRepo{}
	tableRepo := &mockTableRepo{}
	uc := NewOrderUseCase(repo, tableRepo, logger.NewNop())

	require.NoError(t, uc.SettlePayment(context.Background(), 5))
	require.NoError(t, uc.SettlePayment(context.Background(), 5))
	assert.Equal(t, 2, repo.markPaidCalls)
	assert.Equal(t, model.TableCleaning, tableRepo.statusValue)
}

func TestUpdateStatus(t *testing.T) {
	repo := &mockOrderRepo{}
	uc := NewOrderUseCase(repo, &mockTableRepo{}, logger.NewNop())

	require.NoError(t, uc.UpdateStatus(context.Background(), 7, model.OrderReady))
	assert.Equal(t, int64(7), repo.statusID)
	assert.Equal(t, model.OrderReady, repo.statusValue)

	err := uc.UpdateStatus(context.Background(), 7, model.OrderStatus("Burnt"))
	require.Error(t, err)

	err = uc.UpdateStatus(context.Background(), 0, model.OrderReady)
	require.Error(t, err)
}

func TestReport(t *testing.T) {
	repo := &mockOrderRepo{report: []model.ReportRow{{ID: 3, TableNo: 1, TotalAmount: 15.0}}}
	uc := NewOrderUseCase(repo, &mockTableRepo{}, logger.NewNop())

	rows, err := uc.Report(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].ID)
}
