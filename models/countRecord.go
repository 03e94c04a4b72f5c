package models

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/dpalog/ativos_backend/config"
	"bitbucket.org/dpalog/ativos_backend/utils"
)

// CountColumns are the six per-asset quantity columns carried by the
// store-count and CD-count tables. NULLs read back as zero; sums never
// propagate nulls.
type CountColumns struct {
	CaixaHb623     int `gorm:"column:caixa_hb_623" json:"caixa_hb_623"`
	CaixaHb618     int `gorm:"column:caixa_hb_618" json:"caixa_hb_618"`
	CaixaHntG      int `gorm:"column:caixa_hnt_g" json:"caixa_hnt_g"`
	CaixaHntP      int `gorm:"column:caixa_hnt_p" json:"caixa_hnt_p"`
	CaixaChocolate int `gorm:"column:caixa_chocolate" json:"caixa_chocolate"`
	CaixaBin       int `gorm:"column:caixa_bin" json:"caixa_bin"`
}

// QuantityFor returns the quantity for one asset type.
func (c *CountColumns) QuantityFor(a AssetType) int {
	switch a {
	case AssetHB623:
		return c.CaixaHb623
	case AssetHB618:
		return c.CaixaHb618
	case AssetHNTG:
		return c.CaixaHntG
	case AssetHNTP:
		return c.CaixaHntP
	case AssetBasculhante:
		return c.CaixaChocolate
	case AssetBin:
		return c.CaixaBin
	}
	return 0
}

// SetQuantity writes the quantity for one asset type.
func (c *CountColumns) SetQuantity(a AssetType, qty int) {
	switch a {
	case AssetHB623:
		c.CaixaHb623 = qty
	case AssetHB618:
		c.CaixaHb618 = qty
	case AssetHNTG:
		c.CaixaHntG = qty
	case AssetHNTP:
		c.CaixaHntP = qty
	case AssetBasculhante:
		c.CaixaChocolate = qty
	case AssetBin:
		c.CaixaBin = qty
	}
}

// TotalAll sums every asset column of the row.
func (c *CountColumns) TotalAll() int {
	return c.CaixaHb623 + c.CaixaHb618 + c.CaixaHntG + c.CaixaHntP + c.CaixaChocolate + c.CaixaBin
}

// CountRecord is one raw count row. The same shape backs both count-like
// tables (ativo_contagemlojas and ativo_inventario_hb); queries pick the table
// through the SourceTable enum.
type CountRecord struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	CodInventario int       `gorm:"column:cod_inventario;index" json:"cod_inventario"`
	Setor         string    `gorm:"column:setor" json:"setor"`
	Data          time.Time `gorm:"column:data" json:"data"`
	CountColumns  `gorm:"embedded"`
}

// DadoTransito is one in-transit count row; exactly one asset type per row,
// labeled via tipo_caixa (note the CHOCOLATE spelling for BASCULHANTE).
type DadoTransito struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	CodInventario int       `gorm:"column:cod_inventario;index" json:"cod_inventario"`
	Setor         string    `gorm:"column:setor" json:"setor"`
	Data          time.Time `gorm:"column:data" json:"data"`
	TipoCaixa     string    `gorm:"column:tipo_caixa" json:"tipo_caixa"`
	Quantidade    int       `gorm:"column:quantidade" json:"quantidade"`
}

func (DadoTransito) TableName() string {
	return string(SourceDadosTransito)
}

// FornecedorRecord is one supplier-reported count row; one asset type per row.
type FornecedorRecord struct {
	ID            int    `gorm:"primaryKey" json:"id"`
	CodInventario int    `gorm:"column:cod_inventario;index" json:"cod_inventario"`
	Fornecedor    string `gorm:"column:fornecedor" json:"fornecedor"`
	Ativo         string `gorm:"column:ativo" json:"ativo"`
	Quantidade    int    `gorm:"column:quantidade" json:"quantidade"`
}

func (FornecedorRecord) TableName() string {
	return string(SourceFornecedores)
}

// MaxCodInventario resolves the current inventory cycle of one source: the
// highest cod_inventario present. Cycle ids are totally ordered but not
// assumed contiguous. Errors with ErrorRecordNotFound when the table is empty.
func MaxCodInventario(ctx context.Context, source SourceTable) (int, error) {
	db := config.GetDB()
	var cods []int
	err := db.WithContext(ctx).
		Table(string(source)).
		Distinct().
		Order("cod_inventario DESC").
		Limit(1).
		Pluck("cod_inventario", &cods).Error
	if err != nil {
		return 0, err
	}
	if len(cods) == 0 {
		return 0, fmt.Errorf("sem registros em %s: %w", source, utils.ErrorRecordNotFound)
	}
	return cods[0], nil
}

// PenultimoCodInventario resolves the previous cycle of one source: the
// second-highest distinct cod_inventario. Returns nil when fewer than two
// distinct cycles exist.
func PenultimoCodInventario(ctx context.Context, source SourceTable) (*int, error) {
	db := config.GetDB()
	var cods []int
	err := db.WithContext(ctx).
		Table(string(source)).
		Distinct().
		Order("cod_inventario DESC").
		Offset(1).
		Limit(1).
		Pluck("cod_inventario", &cods).Error
	if err != nil {
		return nil, err
	}
	if len(cods) == 0 {
		return nil, nil
	}
	return &cods[0], nil
}

// FetchCounts loads every count row of one cycle from a count-like table.
// Sector filtering happens in memory on the returned slice.
func FetchCounts(ctx context.Context, source SourceTable, codInventario int) ([]CountRecord, error) {
	if !source.IsCountTable() {
		return nil, fmt.Errorf("%w: %s não é tabela de contagem", ErrInvalidTable, source)
	}
	db := config.GetDB()
	var rows []CountRecord
	err := db.WithContext(ctx).
		Table(string(source)).
		Where("cod_inventario = ?", codInventario).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchTransito loads every transit row of one cycle.
func FetchTransito(ctx context.Context, codInventario int) ([]DadoTransito, error) {
	db := config.GetDB()
	var rows []DadoTransito
	err := db.WithContext(ctx).
		Where("cod_inventario = ?", codInventario).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FetchFornecedores loads every supplier row of one cycle.
func FetchFornecedores(ctx context.Context, codInventario int) ([]FornecedorRecord, error) {
	db := config.GetDB()
	var rows []FornecedorRecord
	err := db.WithContext(ctx).
		Where("cod_inventario = ?", codInventario).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func fetchAllCounts(ctx context.Context, source SourceTable) ([]CountRecord, error) {
	if !source.IsCountTable() {
		return nil, fmt.Errorf("%w: %s não é tabela de contagem", ErrInvalidTable, source)
	}
	db := config.GetDB()
	var rows []CountRecord
	err := db.WithContext(ctx).
		Table(string(source)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func fetchAllTransito(ctx context.Context) ([]DadoTransito, error) {
	db := config.GetDB()
	var rows []DadoTransito
	err := db.WithContext(ctx).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// InsertCount appends one count row to a count-like table, anchored to that
// table's current cycle.
func InsertCount(ctx context.Context, source SourceTable, setor string, asset AssetType, quantidade int) (*CountRecord, error) {
	if !source.IsCountTable() {
		return nil, fmt.Errorf("%w: %s não aceita contagem por coluna", ErrInvalidTable, source)
	}
	cod, err := MaxCodInventario(ctx, source)
	if err != nil {
		return nil, err
	}
	row := CountRecord{
		CodInventario: cod,
		Setor:         setor,
		Data:          time.Now(),
	}
	row.SetQuantity(asset, quantidade)

	db := config.GetDB()
	if err := db.WithContext(ctx).Table(string(source)).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// InsertTransito appends one transit row anchored to the transit table's
// current cycle. The tipo_caixa label is stored as provided by data entry
// (transit spelling, CHOCOLATE included).
func InsertTransito(ctx context.Context, setor string, tipoCaixa string, quantidade int) (*DadoTransito, error) {
	cod, err := MaxCodInventario(ctx, SourceDadosTransito)
	if err != nil {
		return nil, err
	}
	row := DadoTransito{
		CodInventario: cod,
		Setor:         setor,
		Data:          time.Now(),
		TipoCaixa:     tipoCaixa,
		Quantidade:    quantidade,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// InsertFornecedor appends one supplier row. Supplier entries anchor on the CD
// source's current cycle, not on the supplier table's own maximum.
func InsertFornecedor(ctx context.Context, fornecedor string, ativo AssetType, quantidade int) (*FornecedorRecord, error) {
	cod, err := MaxCodInventario(ctx, SourceInventarioCD)
	if err != nil {
		return nil, err
	}
	row := FornecedorRecord{
		CodInventario: cod,
		Fornecedor:    fornecedor,
		Ativo:         string(ativo),
		Quantidade:    quantidade,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
