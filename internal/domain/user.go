package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	Username string `gorm:"uniqueIndex;not null" json:"username"`  // Unique username
	// Transactions owned by this user, referenced by id only (no back-pointer)
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions"`
}
