package handlers

import (
	"fmt"
	"net/http"

	"splitledger/middleware"
	"splitledger/utils"

	"github.com/gin-gonic/gin"
)

// ExportGroup handles GET /groups/:id/export and streams an Excel workbook
func (h *Handlers) ExportGroup(c *gin.Context) {
	excelFile, filename, err := h.ExcelService.ExportGroupToExcel(c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}
}
