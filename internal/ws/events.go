package ws

import "encoding/json"

// Every frame in both directions is one envelope: {"event": ..., "data": ...}.
const (
	// server -> client
	EventInitData     = "init_data"
	EventSyncState    = "sync_state"
	EventLoginSuccess = "login_success"
	EventLoginError   = "login_error"
	EventReportData   = "report_data"
	EventError        = "error"

	// client -> server
	EventLoginAttempt   = "login_attempt"
	EventAddMenuItem    = "add_menu_item"
	EventDeleteMenuItem = "delete_menu_item"
	EventPlaceOrder     = "place_order"
	EventPayBill        = "pay_bill"
	EventResetTable     = "reset_table"
	EventUpdateStatus   = "update_status"
	EventRestockItem    = "restock_item"
	EventGenerateReport = "generate_report"
)

type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type loginAttempt struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginSuccess struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

type updateStatusPayload struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type restockPayload struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
}
