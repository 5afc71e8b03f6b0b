package domain

import "time"

// Transaction Model
type Transaction struct {
	ID     uint    `gorm:"primaryKey" json:"id"`     // Primary key
	UserID uint    `gorm:"index;not null" json:"user_id"` // Foreign key to the owning User
	Type   string  `json:"type"`                     // Transaction type: credit, debit, ...
	Amount float64 `json:"amount"`                   // Amount of the transaction
	// Set by the database when the caller does not supply one
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
}
