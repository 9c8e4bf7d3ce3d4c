package handlers

import (
	"errors"
	"net/http"

	"mesa-pos/settlement"

	"github.com/gin-gonic/gin"
)

// SettleDay closes the business day: one report over all open orders,
// then every ledger cleared and every table freed
func SettleDay(c *gin.Context) {
	report, err := settlement.CloseDay()
	if err != nil {
		if errors.Is(err, settlement.ErrNothingToSettle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No orders to settle"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle day"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Day settled",
		"gross_total":    report.GrossTotal,
		"service_charge": report.ServiceCharge,
		"final_total":    report.FinalTotal,
		"report":         report,
	})
}

// ListReports returns all historical settlement records, newest first
func ListReports(c *gin.Context) {
	all, err := settlement.Reports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}

	out := make([]gin.H, 0, len(all))
	for _, r := range all {
		out = append(out, gin.H{
			"id":             r.ID,
			"date":           r.ReportDate.Format("02/01/2006"),
			"closed_at":      r.CreatedAt.Format("15:04:05"),
			"gross_total":    r.GrossTotal,
			"service_charge": r.ServiceCharge,
			"final_total":    r.FinalTotal,
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "reports": out})
}
