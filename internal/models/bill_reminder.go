package models

// BillReminder is a scheduled payment reminder. The core only stores these;
// delivery is the notification collaborator's concern, keyed by ID.
type BillReminder struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	DueDate Date    `json:"dueDate"`
}
