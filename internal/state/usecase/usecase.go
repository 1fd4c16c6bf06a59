package usecase

import (
	"context"

	"github.com/fekuna/omnipos-restaurant-service/internal/inventory"
	"github.com/fekuna/omnipos-restaurant-service/internal/menu"
	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order"
	"github.com/fekuna/omnipos-restaurant-service/internal/state"
	"github.com/fekuna/omnipos-restaurant-service/internal/table"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"
)

const orderTimeLayout = "15:04:05"

type stateUseCase struct {
	menuRepo  menu.Repository
	invRepo   inventory.Repository
	tableRepo table.Repository
	orderRepo order.Repository
	logger    logger.ZapLogger
}

func NewStateUseCase(
	menuRepo menu.Repository,
	invRepo inventory.Repository,
	tableRepo table.Repository,
	orderRepo order.Repository,
	log logger.ZapLogger,
) state.UseCase {
	return &stateUseCase{
		menuRepo:  menuRepo,
		invRepo:   invRepo,
		tableRepo: tableRepo,
		orderRepo: orderRepo,
		logger:    log,
	}
}

// BuildSnapshot issues its queries independently, without an enclosing
// transaction. A snapshot assembled while a mutation is in flight may show a
// torn view; the broadcast triggered by that mutation's completion converges
// everyone within one round trip.
func (uc *stateUseCase) BuildSnapshot(ctx context.Context) (*model.Snapshot, error) {
	menuItems, err := uc.menuRepo.FindAllSorted(ctx)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tables, err := uc.tableRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orderRepo.FindVisible(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		items, err := uc.orderRepo.FindItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
		orders[i].Time = orders[i].CreatedAt.Local().Format(orderTimeLayout)
	}

	revenue, err := uc.orderRepo.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := uc.orderRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	// Every known table gets a bill entry, zero by default, so terminals
	// never have to special-case a missing key.
	unpaid, err := uc.orderRepo.UnpaidTotalsByTable(ctx)
	if err != nil {
		return nil, err
	}
	bills := make(map[int64]float64, len(tables))
	for _, t := range tables {
		bills[t.ID] = 0
	}
	for tableNo, bill := range unpaid {
		bills[tableNo] = bill
	}

	return &model.Snapshot{
		Menu:        menuItems,
		Inventory:   inv,
		Tables:      tables,
		Orders:      orders,
		Revenue:     revenue,
		TotalOrders: totalOrders,
		TableBills:  bills,
	}, nil
}
