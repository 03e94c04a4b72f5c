package main

import (
	"net/http"

	"bitbucket.org/dpalog/ativos_backend/models"
	"github.com/gin-gonic/gin"
)

// GET /api/acompanhamento
// Counting progress per regional: which registered stores still have no count
// row in the current cycle.
func acompanhamentoHandler(c *gin.Context) {
	report, err := models.BuildAcompanhamento(c.Request.Context())
	if err != nil {
		if models.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao montar o acompanhamento"})
		return
	}
	c.JSON(http.StatusOK, report)
}
