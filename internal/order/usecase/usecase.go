package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
	"github.com/fekuna/omnipos-restaurant-service/internal/table"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
	"go.uber.org/zap"
)

type orderUseCase struct {
	repo      order.Repository
	tableRepo table.Repository
	logger    logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, tableRepo table.Repository, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		tableRepo: tableRepo,
		logger:    log,
	}
}

func (uc *orderUseCase) PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (int64, error) {
	if input.TableNo <= 0 {
		return 0, errors.New("invalid table number")
	}
	if len(input.Items) == 0 {
		return 0, errors.New("at least one item is required")
	}
	for _, item := range input.Items {
		if item.Name == "" {
			return 0, errors.New("order item name is required")
		}
		if item.Price < 0 {
			return 0, fmt.Errorf("invalid price for item %s", item.Name)
		}
	}
	// The declared total is trusted as sent; terminals may apply discounts.

	orderID, err := uc.repo.PlaceOrder(ctx, input)
	if err != nil {
		return 0, err
	}

	uc.logger.Info("order placed",
		zap.Int64("order_id", orderID),
		zap.Int64("table", input.TableNo),
		zap.Int("items", len(input.Items)),
		zap.Float64("total", input.Total),
	)
	return orderID, nil
}

func (uc *orderUseCase) SettlePayment(ctx context.Context, tableNo int64) error {
	if tableNo <= 0 {
		return errors.New("invalid table number")
	}

	if err := uc.repo.MarkTablePaid(ctx, tableNo); err != nil {
		return err
	}
	// Table moves to Cleaning only once payment has gone through.
	if err := uc.tableRepo.SetStatus(ctx, tableNo, model.TableCleaning); err != nil {
		return err
	}

	uc.logger.Info("table settled", zap.Int64("table", tableNo))
	return nil
}

func (uc *orderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if id <= 0 {
		return errors.New("invalid order id")
	}
	if !status.Valid() {
		return fmt.Errorf("unknown order status %q", status)
	}
	return uc.repo.UpdateStatus(ctx, id, status)
}

func (uc *orderUseCase) Report(ctx context.Context) ([]model.ReportRow, error) {
	return uc.repo.PaidReport(ctx)
}
