package api

import (
	"errors"   // Error taxonomy checks
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"ledger_system/internal/store" // Data-access layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
}

// CreateUserHandler creates a new user and returns its id
func CreateUserHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := st.CreateUser(c.Request.Context(), req.Username)
		if err != nil {
			// Duplicate usernames surface as a conflict, not a generic failure
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Requested username
				"error":    err.Error(),  // Error message
			}).Error("Failed to create user") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user ID
			"username": user.Username, // Username
		}).Info("User created") // Log user creation
		c.JSON(http.StatusCreated, gin.H{"id": user.ID}) // Return the new id
	}
}

// GetUserHandler returns a user with its transactions
func GetUserHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id")) // Parse the id path parameter
		if err != nil {
			// If the id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		user, err := st.GetUser(c.Request.Context(), id)
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
			return
		}
		// Absence is a nil record, not an error
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user) // Return the user with transactions
	}
}

// ListUsersHandler returns all users with their transactions
func ListUsersHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.ListUsers(c.Request.Context())
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
			return
		}
		c.JSON(http.StatusOK, users) // Return the full listing
	}
}

// parseID converts a path parameter into a user/transaction id
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
