package employee

import "time"

type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Division    string    `json:"division"`
	Position    string    `json:"position,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	BankAccount string    `json:"bankAccount,omitempty"`
	JoinDate    time.Time `json:"joinDate"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
