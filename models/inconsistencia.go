package models

import (
	"context"
	"time"

	"bitbucket.org/dpalog/ativos_backend/config"
)

// Inconsistencia is one reported count discrepancy, optionally with a photo
// stored in the bucket. Rows anchor on the CD source's current cycle at
// insertion time.
type Inconsistencia struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	CodInventario int       `gorm:"column:cod_inventario;index" json:"cod_inventario"`
	Setor         string    `gorm:"column:setor" json:"setor"`
	Ativo         string    `gorm:"column:ativo" json:"ativo"`
	Quantidade    int       `gorm:"column:quantidade" json:"quantidade"`
	Foto          string    `gorm:"column:foto" json:"foto"`
	Obs           string    `gorm:"column:obs" json:"obs"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Inconsistencia) TableName() string {
	return "ativos_inconsistencia"
}

// RegistrarInconsistencia records one discrepancy against the current cycle.
// fotoURL may be empty when no photo was attached.
func RegistrarInconsistencia(ctx context.Context, setor string, ativo AssetType, quantidade int, fotoURL string, obs string) (*Inconsistencia, error) {
	cod, err := MaxCodInventario(ctx, SourceInventarioCD)
	if err != nil {
		return nil, err
	}
	row := Inconsistencia{
		CodInventario: cod,
		Setor:         setor,
		Ativo:         string(ativo),
		Quantidade:    quantidade,
		Foto:          fotoURL,
		Obs:           obs,
		CreatedAt:     time.Now().UTC(),
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListInconsistencias returns every reported discrepancy, newest first.
func ListInconsistencias(ctx context.Context) ([]Inconsistencia, error) {
	db := config.GetDB()
	var rows []Inconsistencia
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
