package model

type Table struct {
	ID     int64       `db:"id" json:"id"`
	Status TableStatus `db:"status" json:"status"`
}
