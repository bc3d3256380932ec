package employee

import (
	"time"
)

type Employee struct {
	ID         string
	EmployeeID string
	Name       string
	Email      string
	Department string
	Position   string
	IsActive   bool
	CreatedAt  time.Time
}
