package main

import (
	"net/http"

	"bitbucket.org/dpalog/ativos_backend/models"
	"github.com/gin-gonic/gin"
)

// GET /api/inventario
// Current-cycle snapshot of every source plus diffs against each source's
// previous cycle.
func inventarioHandler(c *gin.Context) {
	snapshot, err := models.BuildInventarioSnapshot(c.Request.Context())
	if err != nil {
		if models.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao montar o inventário"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GET /api/calc-dash?mode=inventariohb
// Summary card: registry-wide counting progress and the comparison of the two
// latest finalized results. Mode defaults to HB.
func calcDashHandler(c *gin.Context) {
	modeParam := c.DefaultQuery("mode", string(models.ModeInventarioHB))
	mode, err := models.ParseInventoryMode(modeParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dash, err := models.BuildCalcDash(c.Request.Context(), mode)
	if err != nil {
		if models.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao montar o painel"})
		return
	}
	c.JSON(http.StatusOK, dash)
}
