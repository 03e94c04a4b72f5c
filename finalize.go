package main

import (
	"errors"
	"net/http"

	"bitbucket.org/dpalog/ativos_backend/config"
	"bitbucket.org/dpalog/ativos_backend/models"
	"bitbucket.org/dpalog/ativos_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type finalizarRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// POST /api/finalizar-inventario
// One-shot finalization of the current cycle for a mode. Finalizing an already
// finalized cycle is a client error, not a server fault.
func finalizarInventarioHandler(c *gin.Context) {
	var req finalizarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parâmetro 'mode' é obrigatório"})
		return
	}
	mode, err := models.ParseInventoryMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, span := tracer.Start(c.Request.Context(), "FinalizarInventario")
	span.SetAttributes(attribute.String("mode", string(mode)))
	defer span.End()

	result, breakdown, err := models.FinalizarInventario(ctx, mode)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrorAlreadyFinalized):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case models.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			cid, _ := utils.GetCorrelationIdFromContext(ctx)
			config.GetLogger().WithFields(logrus.Fields{
				"field":          "FinalizarInventario",
				"mode":           mode,
				"correlation_id": cid,
			}).Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao finalizar o inventário"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"resultado": result,
		"detalhes":  breakdown,
	})
}
