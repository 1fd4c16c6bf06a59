package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-restaurant-service/internal/model"
	"github.com/fekuna/omnipos-restaurant-service/internal/order/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) PlaceOrder(ctx context.Context, input *dto.PlaceOrderInput) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Order row. The declared total is recorded as sent by the terminal.
	var orderID int64
	err = tx.QueryRowxContext(ctx, `
        INSERT INTO orders (table_no, total_amount, status, payment_status)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, input.TableNo, input.Total, model.OrderPending, model.PaymentUnpaid).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range input.Items {
		// 2. Name/price snapshot; historical orders survive menu edits.
		_, err = tx.ExecContext(ctx, `
            INSERT INTO order_items (order_id, item_name, price)
            VALUES ($1, $2, $3)
        `, orderID, item.Name, item.Price)
		if err != nil {
			return 0, fmt.Errorf("failed to insert order item %s: %w", item.Name, err)
		}

		// 3. Recipe-linked deductions. The GREATEST clamp keeps stock at
		// zero instead of failing the order; the UPDATE's row lock is what
		// serializes two concurrent orders draining the same ingredient.
		recipes := []model.Recipe{}
		err = tx.SelectContext(ctx, &recipes, `
            SELECT menu_item_id, inventory_item_id, quantity_needed
            FROM recipes WHERE menu_item_id = $1
        `, item.MenuItemID)
		if err != nil {
			return 0, fmt.Errorf("failed to fetch recipes for menu item %d: %w", item.MenuItemID, err)
		}
		for _, rc := range recipes {
			_, err = tx.ExecContext(ctx, `
                UPDATE inventory
                SET quantity_on_hand = GREATEST(0, quantity_on_hand - $1)
                WHERE id = $2
            `, rc.QuantityNeeded, rc.InventoryItemID)
			if err != nil {
				return 0, fmt.Errorf("failed to deduct inventory item %d: %w", rc.InventoryItemID, err)
			}
		}
	}

	// 4. Table occupancy is set explicitly, never inferred from orders.
	_, err = tx.ExecContext(ctx, `
        UPDATE restaurant_tables SET status = $1 WHERE id = $2
    `, model.TableOccupied, input.TableNo)
	if err != nil {
		return 0, fmt.Errorf("failed to occupy table %d: %w", input.TableNo, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit order: %w", err)
	}
	return orderID, nil
}

func (r *PGRepository) FindVisible(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	query := `
        SELECT id, table_no, status, payment_status, total_amount, created_at
        FROM orders
        WHERE status != $1 OR payment_status = $2
        ORDER BY id DESC
    `
	if err := r.DB.SelectContext(ctx, &orders, query, model.OrderCompleted, model.PaymentUnpaid); err != nil {
		return nil, fmt.Errorf("failed to fetch visible orders: %w", err)
	}
	return orders, nil
}

func (r *PGRepository) FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	// Rows come back in insertion order; order_items carries no
	// ordering column of its own.
	items := []model.OrderItem{}
	query := `
        SELECT order_id, item_name, price FROM order_items
        WHERE order_id = $1
    `
	if err := r.DB.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, fmt.Errorf("failed to fetch items for order %d: %w", orderID, err)
	}
	return items, nil
}

func (r *PGRepository) MarkTablePaid(ctx context.Context, tableNo int64) error {
	query := `UPDATE orders SET payment_status = $1 WHERE table_no = $2 AND payment_status = $3`
	if _, err := r.DB.ExecContext(ctx, query, model.PaymentPaid, tableNo, model.PaymentUnpaid); err != nil {
		return fmt.Errorf("failed to settle table %d: %w", tableNo, err)
	}
	return nil
}

func (r *PGRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`
	if _, err := r.DB.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("failed to update order %d status: %w", id, err)
	}
	return nil
}

func (r *PGRepository) Revenue(ctx context.Context) (float64, error) {
	var revenue float64
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE payment_status = $1`
	if err := r.DB.GetContext(ctx, &revenue, query, model.PaymentPaid); err != nil {
		return 0, fmt.Errorf("failed to compute revenue: %w", err)
	}
	return revenue, nil
}

func (r *PGRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders`); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *PGRepository) UnpaidTotalsByTable(ctx context.Context) (map[int64]float64, error) {
	rows := []struct {
		TableNo int64   `db:"table_no"`
		Bill    float64 `db:"bill"`
	}{}
	query := `
        SELECT table_no, SUM(total_amount) AS bill
        FROM orders
        WHERE payment_status = $1
        GROUP BY table_no
    `
	if err := r.DB.SelectContext(ctx, &rows, query, model.PaymentUnpaid); err != nil {
		return nil, fmt.Errorf("failed to fetch outstanding bills: %w", err)
	}

	bills := make(map[int64]float64, len(rows))
	for _, row := range rows {
		bills[row.TableNo] = row.Bill
	}
	return bills, nil
}

func (r *PGRepository) PaidReport(ctx context.Context) ([]model.ReportRow, error) {
	report := []model.ReportRow{}
	query := `
        SELECT id, table_no, total_amount, created_at
        FROM orders
        WHERE payment_status = $1
        ORDER BY created_at DESC
    `
	if err := r.DB.SelectContext(ctx, &report, query, model.PaymentPaid); err != nil {
		return nil, fmt.Errorf("failed to fetch paid report: %w", err)
	}
	return report, nil
}
