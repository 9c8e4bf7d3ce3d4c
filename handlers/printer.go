package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PrintOrder is a stub: there is no printer driver, the payload is
// only logged so the till software can be exercised end to end
func PrintOrder(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("🖨️ Print order: %v", payload)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PrintReceipt is the same stub for the full table receipt
func PrintReceipt(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("🖨️ Print receipt: %v", payload)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
