package main

import (
	"net/http"

	"bitbucket.org/dpalog/ativos_backend/middlewares"
	"bitbucket.org/dpalog/ativos_backend/models"
	"bitbucket.org/dpalog/ativos_backend/utils"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/login
func loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ProcessValidationErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parâmetros inválidos", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}

	info, err := models.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// GET /api/me
// Profile of the authenticated user.
func meHandler(c *gin.Context) {
	claim := middlewares.CtxValue(c.Request.Context())
	user, err := models.GetUser(c.Request.Context(), claim.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "usuário não encontrado"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/configuracao?table=ativo_contagemlojas
// Dumps every row of one allow-listed raw table.
func getConfiguracaoHandler(c *gin.Context) {
	table, err := models.ParseConfigTable(c.Query("table"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := models.DumpTable(c.Request.Context(), table)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao consultar a tabela"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

type patchConfiguracaoRequest struct {
	Table string                 `json:"table" binding:"required"`
	Match map[string]interface{} `json:"match" binding:"required"`
	Data  map[string]interface{} `json:"data" binding:"required"`
}

// PATCH /api/configuracao
// Update-by-match on one allow-listed raw table. Admin only.
func patchConfiguracaoHandler(c *gin.Context) {
	var req patchConfiguracaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ProcessValidationErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parâmetros inválidos", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}

	table, err := models.ParseConfigTable(req.Table)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := models.UpdateTableByMatch(c.Request.Context(), table, req.Match, req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rows_affected": affected})
}
