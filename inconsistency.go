package main

import (
	"bytes"
	"encoding/base64"
	"image/jpeg"
	"net/http"
	"strings"

	"bitbucket.org/dpalog/ativos_backend/config"
	"bitbucket.org/dpalog/ativos_backend/models"
	"bitbucket.org/dpalog/ativos_backend/utils"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const thumbnailWidth = 320

type inconsistenciaRequest struct {
	Setor      string `json:"setor" binding:"required"`
	Ativo      string `json:"ativo" binding:"required"`
	Quantidade *int   `json:"quantidade" binding:"required"`
	Foto       string `json:"foto" binding:"required"`
	Obs        string `json:"obs"`
}

// POST /api/inconsistencia
// Registers a discrepancy report. The photo arrives as a base64 data URL and
// is stored in the bucket alongside a generated thumbnail; the row keeps the
// full-size public URL.
func registrarInconsistenciaHandler(c *gin.Context) {
	var req inconsistenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := utils.ProcessValidationErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parâmetros inválidos", "fields": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido"})
		return
	}

	asset, ok := models.AssetTypeFromTransitLabel(req.Ativo)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ativo inválido"})
		return
	}

	imageBytes, err := decodePhotoDataURL(req.Foto)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foto inválida; envie um data URL base64"})
		return
	}

	ctx := c.Request.Context()
	logger := config.GetLogger()

	name := uuid.NewString()
	objectName := "inconsistencias/" + name + ".jpg"
	if err := utils.UploadBytesToGCS(ctx, objectName, imageBytes, "image/jpeg"); err != nil {
		cid, _ := utils.GetCorrelationIdFromContext(ctx)
		logger.WithFields(logrus.Fields{
			"field":          "RegistrarInconsistencia",
			"correlation_id": cid,
		}).Error("photo upload failed: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro no upload da foto"})
		return
	}

	// Thumbnail is best-effort; the report goes through without one.
	thumbURL := ""
	if thumbBytes, err := makeThumbnail(imageBytes); err == nil {
		thumbObject := "inconsistencias/thumbs/" + name + ".jpg"
		if err := utils.UploadBytesToGCS(ctx, thumbObject, thumbBytes, "image/jpeg"); err == nil {
			thumbURL = utils.PublicObjectURL(thumbObject)
		}
	}

	row, err := models.RegistrarInconsistencia(ctx, req.Setor, asset, *req.Quantidade, utils.PublicObjectURL(objectName), req.Obs)
	if err != nil {
		insertionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": row, "thumbnail": thumbURL})
}

// GET /api/inconsistencia
func listInconsistenciasHandler(c *gin.Context) {
	rows, err := models.ListInconsistencias(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao listar inconsistências"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inconsistencias": rows})
}

// decodePhotoDataURL strips an optional "data:image/...;base64," prefix and
// decodes the payload.
func decodePhotoDataURL(foto string) ([]byte, error) {
	payload := foto
	if idx := strings.Index(payload, ";base64,"); idx >= 0 && strings.HasPrefix(payload, "data:image/") {
		payload = payload[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(payload)
}

func makeThumbnail(imageBytes []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
