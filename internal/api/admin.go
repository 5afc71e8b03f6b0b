package api

import (
	"encoding/json" // Chart series serialization for the template
	"errors"        // Error taxonomy checks
	"html/template" // template.JS for the pre-marshaled series
	"net/http"      // HTTP status codes

	"ledger_system/internal/report" // Dashboard aggregation
	"ledger_system/internal/store"  // Data-access layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AdminDashboardHandler renders the dashboard with user and transaction totals
func AdminDashboardHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.ListUsers(c.Request.Context()) // Fetch every user with transactions
		if err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
			return
		}
		dash := report.Build(users)              // Aggregate counts, sums and chart series
		chartJSON, err := json.Marshal(dash.Chart) // Serialize the series for the chart script
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error rendering dashboard"})
			return
		}
		c.HTML(http.StatusOK, "list_users.html", gin.H{
			"users":             dash.Users,               // Per-user summary rows
			"totalTransactions": dash.TotalTransactions,   // Total transaction count
			"totalAmount":       dash.TotalAmount,         // Total amount across all users
			"chartJSON":         template.JS(chartJSON),   // Chart series for the template script
		})
	}
}

// EditUserFormHandler renders the edit form for one user
func EditUserFormHandler(st store.Store) gin.HandlerFunc {
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
		c.HTML(http.StatusOK, "edit_user.html", gin.H{"user": user}) // Render the form
	}
}

// UpdateUserHandler renames a user from the edit form and redirects back
func UpdateUserHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id")) // Parse the id path parameter
		if err != nil {
			// If the id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		username := c.PostForm("username") // New username from the form
		if username == "" {
			// Reject an empty rename
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be provided"})
			return
		}
		user, err := st.UpdateUsername(c.Request.Context(), id, username)
		if err != nil {
			// Duplicate usernames surface as a conflict, not a generic failure
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id":  id,          // User ID
				"username": username,    // Requested username
				"error":    err.Error(), // Error message
			}).Error("Failed to update user") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user"})
			return
		}
		// Absence is a nil record, not an error; never upsert
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		// Log successful rename
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // User ID
			"username": user.Username, // New username
		}).Info("User updated") // Log user update
		c.Redirect(http.StatusFound, "/admin/") // Back to the dashboard
	}
}

// DeleteUserHandler removes a user and its transactions, then redirects back
func DeleteUserHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id")) // Parse the id path parameter
		if err != nil {
			// If the id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		removed, err := st.DeleteUser(c.Request.Context(), id)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": id,          // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to delete user") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting user"})
			return
		}
		// Log the outcome; a missing id deletes zero rows and still redirects
		logrus.WithFields(logrus.Fields{
			"user_id": id,      // User ID
			"removed": removed, // User rows removed (0 or 1)
		}).Info("User deleted") // Log user deletion
		c.Redirect(http.StatusFound, "/admin/") // Back to the dashboard
	}
}
