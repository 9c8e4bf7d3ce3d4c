package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mesa-pos/orders"
	"mesa-pos/tables"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AddOrderRequest struct {
	Product  string          `json:"product" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	Price    decimal.Decimal `json:"price"`
	Note     string          `json:"note"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// AddOrder creates a line item on a table and marks the table occupied
func AddOrder(c *gin.Context) {
	number, ok := tableNumber(c)
	if !ok {
		return
	}

	var req AddOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	order, err := orders.Add(number, req.Product, req.Quantity, req.Price.Round(2), req.Note)
	if err != nil {
		if errors.Is(err, tables.ErrTableNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order added",
		"order":   order,
	})
}

// UpdateOrderQuantity changes the quantity of one line item
func UpdateOrderQuantity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.UpdateQuantity(uint(id), req.Quantity)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantity updated",
		"order":   order,
	})
}

// RemoveOrder deletes one line item
func RemoveOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	if err := orders.Remove(uint(id)); err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order removed"})
}
