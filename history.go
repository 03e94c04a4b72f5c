package main

import (
	"fmt"
	"net/http"

	"bitbucket.org/dpalog/ativos_backend/config"
	"bitbucket.org/dpalog/ativos_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// GET /api/historico
// Combined cycle timeline plus drill-down detail per source.
func historicoHandler(c *gin.Context) {
	report, err := models.BuildHistorico(c.Request.Context())
	if err != nil {
		config.LogError(config.GetLogger(), "history", "historicoHandler", "BuildHistorico", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao montar o histórico"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// POST /api/historico/export
// Spreadsheet download of the combined timeline.
func exportHistoricoHandler(c *gin.Context) {
	report, err := models.BuildHistorico(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao montar o histórico"})
		return
	}

	f := excelize.NewFile()
	if _, err := f.NewSheet("Sheet1"); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao gerar a planilha"})
		return
	}

	// Add headers
	f.SetCellValue("Sheet1", "A1", "CodInventario")
	f.SetCellValue("Sheet1", "B1", "DataInicio")
	f.SetCellValue("Sheet1", "C1", "DataFim")
	f.SetCellValue("Sheet1", "D1", "ContagemLojas")
	f.SetCellValue("Sheet1", "E1", "ContagemInventarioHB")
	f.SetCellValue("Sheet1", "F1", "ContagemTransito")

	// Add data
	for i, entry := range report.Historico {
		f.SetCellValue("Sheet1", "A"+fmt.Sprint(i+2), entry.CodInventario)
		f.SetCellValue("Sheet1", "B"+fmt.Sprint(i+2), entry.DataInicio)
		f.SetCellValue("Sheet1", "C"+fmt.Sprint(i+2), entry.DataFim)
		f.SetCellValue("Sheet1", "D"+fmt.Sprint(i+2), entry.ContagemLojas)
		f.SetCellValue("Sheet1", "E"+fmt.Sprint(i+2), entry.ContagemInventarioHB)
		f.SetCellValue("Sheet1", "F"+fmt.Sprint(i+2), entry.ContagemTransito)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=historico.xlsx")
	if err := f.Write(c.Writer); err != nil {
		c.Error(err)
	}
}
