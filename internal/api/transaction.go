package api

import (
	"errors"   // Error taxonomy checks
	"net/http" // HTTP status codes
	"time"     // Optional caller-supplied timestamp

	"ledger_system/internal/store" // Data-access layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AddTransactionRequest represents a transaction creation request
type AddTransactionRequest struct {
	UserID uint    `json:"user_id" binding:"required"` // Owning user must be provided
	Type   string  `json:"type" binding:"required"`    // Transaction type must be provided
	Amount float64 `json:"amount"`                     // Amount, sign and range unconstrained
	// Optional; the database assigns the creation time when absent
	Timestamp *time.Time `json:"timestamp"`
}

// AddTransactionHandler records a transaction for an existing user
func AddTransactionHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		t, err := st.AddTransaction(c.Request.Context(), req.UserID, req.Type, req.Amount, req.Timestamp)
		if err != nil {
			// An unknown user is a not-found, not a server failure
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,  // Owning user ID
				"type":    req.Type,    // Transaction type
				"amount":  req.Amount,  // Transaction amount
				"error":   err.Error(), // Error message
			}).Error("Failed to add transaction") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding transaction"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"transaction_id": t.ID,     // New transaction ID
			"user_id":        t.UserID, // Owning user ID
			"type":           t.Type,   // Transaction type
			"amount":         t.Amount, // Transaction amount
		}).Info("Transaction added") // Log transaction creation
		c.JSON(http.StatusCreated, t) // Return the created transaction
	}
}
