package main

import (
	"net/http"

	"bitbucket.org/dpalog/ativos_backend/models"
	"bitbucket.org/dpalog/ativos_backend/utils"
	"github.com/gin-gonic/gin"
)

type insercaoAtivosRequest struct {
	Tabela     string `json:"tabela" binding:"required"`
	Ativo      string `json:"ativo" binding:"required"`
	Setor      string `json:"setor" binding:"required"`
	Quantidade *int   `json:"quantidade" binding:"required"`
}

// POST /api/insercao-ativos
// Appends one count row to one of the three count-like tables. The target is a
// closed enum; anything outside it is rejected here, not at the database.
func insercaoAtivosHandler(c *gin.Context) {
	var req insercaoAtivosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ProcessValidationErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parâmetros inválidos", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}

	source, err := models.ParseSourceTable(req.Tabela)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tabela inválida"})
		return
	}

	ctx := c.Request.Context()
	switch source {
	case models.SourceContagemLojas, models.SourceInventarioCD:
		asset, ok := models.AssetTypeFromShortName(req.Ativo)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ativo inválido para a tabela informada"})
			return
		}
		row, err := models.InsertCount(ctx, source, req.Setor, asset, *req.Quantidade)
		if err != nil {
			insertionError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
	case models.SourceDadosTransito:
		row, err := models.InsertTransito(ctx, req.Setor, req.Ativo, *req.Quantidade)
		if err != nil {
			insertionError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "tabela não suportada"})
	}
}

type fornecedorRequest struct {
	Fornecedor string `json:"fornecedor" binding:"required"`
	Ativo      string `json:"ativo" binding:"required"`
	Quantidade *int   `json:"quantidade" binding:"required"`
}

// POST /api/fornecedores
// Appends one supplier count, anchored to the CD source's current cycle.
func fornecedoresHandler(c *gin.Context) {
	var req fornecedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ProcessValidationErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parâmetros inválidos", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}

	allowed := false
	for _, f := range models.AllowedFornecedores() {
		if f == req.Fornecedor {
			allowed = true
			break
		}
	}
	if !allowed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fornecedor inválido"})
		return
	}

	asset, ok := models.AssetTypeFromTransitLabel(req.Ativo)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ativo inválido"})
		return
	}

	row, err := models.InsertFornecedor(c.Request.Context(), req.Fornecedor, asset, *req.Quantidade)
	if err != nil {
		insertionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": row})
}

func insertionError(c *gin.Context, err error) {
	if models.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao inserir o registro"})
}
