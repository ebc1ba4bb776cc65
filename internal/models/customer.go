package models

// Customer is read-only reference data shown on the admin dashboard. The
// commerce core never mutates these rows.
type Customer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Joined string `json:"joined"`
	Orders int    `json:"orders"`
	Spent  int64  `json:"spent"`
}
