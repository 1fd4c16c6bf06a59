package model

import "time"

// Order rows are never deleted; Completed+Paid orders stay for reporting and
// simply drop out of the visible set.
type Order struct {
	ID            int64         `db:"id" json:"id"`
	TableNo       int64         `db:"table_no" json:"table"`
	Status        OrderStatus   `db:"status" json:"status"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"payment_status"`
	TotalAmount   float64       `db:"total_amount" json:"total"`
	CreatedAt     time.Time     `db:"created_at" json:"-"`

	// Time is the human-readable creation time sent to terminals.
	Time string `db:"-" json:"time"`
	// Items are attached by the snapshot builder, insertion order preserved.
	Items []OrderItem `db:"-" json:"items"`
}

// OrderItem snapshots the menu item's name and price at order time so that
// later menu edits or deletes never rewrite historical orders. Write-once.
type OrderItem struct {
	OrderID  int64   `db:"order_id" json:"-"`
	ItemName string  `db:"item_name" json:"name"`
	Price    float64 `db:"price" json:"price"`
}

// ReportRow is one line of the paid-orders report.
type ReportRow struct {
	ID          int64     `db:"id" json:"id"`
	TableNo     int64     `db:"table_no" json:"table_no"`
	TotalAmount float64   `db:"total_amount" json:"total_amount"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
