package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mesa-pos/models"
	"mesa-pos/orders"
	"mesa-pos/statemachine"
	"mesa-pos/tables"

	"github.com/gin-gonic/gin"
)

func tableNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table number"})
		return 0, false
	}
	return n, true
}

// ListTables returns every table with its status, ordered by number
func ListTables(c *gin.Context) {
	all, err := tables.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(all), "tables": all})
}

// TableStatusMap returns the pool as a number → status mapping
func TableStatusMap(c *gin.Context) {
	m, err := tables.StatusMap()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": m})
}

// GetTableOrders returns the open orders for one table
func GetTableOrders(c *gin.Context) {
	number, ok := tableNumber(c)
	if !ok {
		return
	}
	if _, err := tables.GetStatus(number); err != nil {
		if errors.Is(err, tables.ErrTableNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load table"})
		return
	}
	list, err := orders.ForTable(number)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": number, "count": len(list), "orders": list})
}

// GetStateMachineInfo returns the table status machine for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To, "trigger": t.Trigger})
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses":    []models.TableStatus{models.StatusFree, models.StatusOccupied, models.StatusClosing},
		"transitions": info,
		"note":        "Daily settlement resets every table to free unconditionally",
	})
}

// CloseTable marks a table as closing. The bill is pending but the
// table has not been cleared yet
func CloseTable(c *gin.Context) {
	number, ok := tableNumber(c)
	if !ok {
		return
	}
	status, err := tables.GetStatus(number)
	if err != nil {
		if errors.Is(err, tables.ErrTableNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load table"})
		return
	}

	if err := statemachine.CanTransition(status, models.StatusClosing); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    status,
			"requested":         models.StatusClosing,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(status),
		})
		return
	}

	if err := tables.SetStatus(number, models.StatusClosing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table closing, bill pending", "table": number})
}

// PayTable settles one table: purges its orders and frees it
func PayTable(c *gin.Context) {
	number, ok := tableNumber(c)
	if !ok {
		return
	}
	if _, err := tables.GetStatus(number); err != nil {
		if errors.Is(err, tables.ErrTableNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load table"})
		return
	}
	if err := orders.ClearTable(number); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear table"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table paid and freed", "table": number})
}
