package models

import "errors"

// AssetType is the closed set of reusable crate types tracked by the system.
// The string value is the display name used by the supplier table ("ativo"
// column) and by dashboard payloads.
type AssetType string

const (
	AssetHB623       AssetType = "CAIXA HB 623"
	AssetHB618       AssetType = "CAIXA HB 618"
	AssetHNTG        AssetType = "CAIXA HNT G"
	AssetHNTP        AssetType = "CAIXA HNT P"
	AssetBasculhante AssetType = "CAIXA BASCULHANTE"
	AssetBin         AssetType = "CAIXA BIN"
)

func AllAssetTypes() []AssetType {
	return []AssetType{AssetHB623, AssetHB618, AssetHNTG, AssetHNTP, AssetBasculhante, AssetBin}
}

// Column returns the quantity column that holds this asset type on the
// store-count and CD-count tables. BASCULHANTE historically lives in the
// caixa_chocolate column.
func (a AssetType) Column() string {
	switch a {
	case AssetHB623:
		return "caixa_hb_623"
	case AssetHB618:
		return "caixa_hb_618"
	case AssetHNTG:
		return "caixa_hnt_g"
	case AssetHNTP:
		return "caixa_hnt_p"
	case AssetBasculhante:
		return "caixa_chocolate"
	case AssetBin:
		return "caixa_bin"
	}
	return ""
}

// TransitLabel returns the tipo_caixa spelling used by the transit table.
// The transit source writes "CAIXA CHOCOLATE" where every other source says
// "CAIXA BASCULHANTE"; cross-source lookups must go through this mapping.
func (a AssetType) TransitLabel() string {
	if a == AssetBasculhante {
		return "CAIXA CHOCOLATE"
	}
	return string(a)
}

// AssetTypeFromTransitLabel maps a transit tipo_caixa value back to the asset
// enum, honoring the CHOCOLATE spelling.
func AssetTypeFromTransitLabel(label string) (AssetType, bool) {
	if label == "CAIXA CHOCOLATE" {
		return AssetBasculhante, true
	}
	for _, a := range AllAssetTypes() {
		if string(a) == label {
			return a, true
		}
	}
	return "", false
}

// AssetTypeFromShortName maps the short names used by the data-entry payloads
// ("HB 623", "BASCULHANTE", ...) to the enum.
func AssetTypeFromShortName(name string) (AssetType, bool) {
	switch name {
	case "HB 623":
		return AssetHB623, true
	case "HB 618":
		return AssetHB618, true
	case "HNT G":
		return AssetHNTG, true
	case "HNT P":
		return AssetHNTP, true
	case "BASCULHANTE":
		return AssetBasculhante, true
	case "BIN":
		return AssetBin, true
	}
	return "", false
}

// InventoryMode selects which pair of asset types a finalization run targets.
type InventoryMode string

const (
	ModeInventarioHB  InventoryMode = "inventariohb"
	ModeInventarioHNT InventoryMode = "inventariohnt"
)

var ErrInvalidMode = errors.New("parâmetro 'mode' inválido; use 'inventariohb' ou 'inventariohnt'")

func ParseInventoryMode(s string) (InventoryMode, error) {
	switch InventoryMode(s) {
	case ModeInventarioHB:
		return ModeInventarioHB, nil
	case ModeInventarioHNT:
		return ModeInventarioHNT, nil
	}
	return "", ErrInvalidMode
}

// AssetPair returns the two asset fields a finalization run of this mode
// aggregates. Every mode processes exactly two fields.
func (m InventoryMode) AssetPair() (AssetType, AssetType) {
	if m == ModeInventarioHNT {
		return AssetHNTG, AssetHNTP
	}
	return AssetHB623, AssetHB618
}

// SourceTable is the closed set of tables the engine reads. Anything outside
// this enumeration is rejected at the boundary; there is no string-keyed
// dynamic dispatch.
type SourceTable string

const (
	SourceContagemLojas  SourceTable = "ativo_contagemlojas"
	SourceInventarioCD   SourceTable = "ativo_inventario_hb"
	SourceDadosTransito  SourceTable = "ativo_dadostransito"
	SourceFornecedores   SourceTable = "ativo_fornecedores"
	SourceDadosCadastral SourceTable = "ativo_dadoscadastral"
)

var ErrInvalidTable = errors.New("tabela inválida")

func ParseSourceTable(s string) (SourceTable, error) {
	switch SourceTable(s) {
	case SourceContagemLojas, SourceInventarioCD, SourceDadosTransito, SourceFornecedores, SourceDadosCadastral:
		return SourceTable(s), nil
	}
	return "", ErrInvalidTable
}

// IsCountTable reports whether the table carries the six per-asset quantity
// columns (store counts and CD counts).
func (s SourceTable) IsCountTable() bool {
	return s == SourceContagemLojas || s == SourceInventarioCD
}

// Region is one of the three fixed distribution regions. Setor is the label
// used by the count and transit tables, Fornecedor the supplier-group label.
type Region struct {
	Nome       string
	Setor      string
	Fornecedor string
}

func Regions() []Region {
	return []Region{
		{Nome: "ES", Setor: "CD ES", Fornecedor: "FORNECEDORES ES"},
		{Nome: "SP", Setor: "CD SP", Fornecedor: "FORNECEDORES SP"},
		{Nome: "RJ", Setor: "CD PAVUNA", Fornecedor: "FORNECEDORES RJ"},
	}
}

// RegionalSetores lists the sector labels that identify regional distribution
// centers inside the store-count table. Store-level rollups exclude them.
func RegionalSetores() []string {
	regions := Regions()
	setores := make([]string, 0, len(regions))
	for _, r := range regions {
		setores = append(setores, r.Setor)
	}
	return setores
}

func AllowedFornecedores() []string {
	regions := Regions()
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		out = append(out, r.Fornecedor)
	}
	return out
}
