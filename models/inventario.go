package models

import (
	"context"
	"errors"

	"bitbucket.org/dpalog/ativos_backend/utils"
)

// Dashboard snapshot of the current cycle per source, with differences against
// each source's previous cycle. Every call recomputes from raw rows; there is
// no caching of aggregates between requests.

// TransitSectorTotals is one expected transit sector with its per-type totals,
// zero-filled over the expected box-type labels.
type TransitSectorTotals struct {
	Setor  string         `json:"setor"`
	Ativos []TransitTotal `json:"ativos"`
}

type TransitTotal struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type InventarioDiferenca struct {
	Lojas    map[AssetType]int         `json:"lojas"`
	CD       map[AssetType]int         `json:"cd"`
	Transito map[string]map[string]int `json:"transito"`
}

type InventarioSnapshot struct {
	DadosLojas        map[AssetType]int     `json:"dadosLojas"`
	DadosCD           map[AssetType]int     `json:"dadosCD"`
	DadosTransito     []TransitSectorTotals `json:"dadosTransito"`
	DadosFornecedores map[AssetType]int     `json:"dadosFornecedores"`
	Diferenca         InventarioDiferenca   `json:"diferenca"`
}

// Transit dashboards only break out the two corridor sectors; PAVUNA transit
// is part of finalization rollups but not of this view.
func expectedTransitSetores() []string {
	return []string{"CD SP", "CD ES"}
}

func expectedTransitTipos() []string {
	tipos := make([]string, 0, 6)
	for _, a := range AllAssetTypes() {
		tipos = append(tipos, a.TransitLabel())
	}
	return tipos
}

// BuildInventarioSnapshot assembles the dashboard: per-asset totals of the
// current cycle of each source, transit grouped by sector/type, supplier
// totals, and diffs against each source's previous cycle (sentinel-filled when
// a source has no baseline).
func BuildInventarioSnapshot(ctx context.Context) (*InventarioSnapshot, error) {
	dadosLojas, err := currentCountsByAsset(ctx, SourceContagemLojas)
	if err != nil {
		return nil, err
	}
	dadosCD, err := currentCountsByAsset(ctx, SourceInventarioCD)
	if err != nil {
		return nil, err
	}

	maxCodTransito, err := MaxCodInventario(ctx, SourceDadosTransito)
	if err != nil {
		return nil, err
	}
	transitoRows, err := FetchTransito(ctx, maxCodTransito)
	if err != nil {
		return nil, err
	}
	transitoGrouped := GroupTransitoBySetorTipo(transitoRows)

	maxCodFornecedores, err := MaxCodInventario(ctx, SourceFornecedores)
	if err != nil {
		return nil, err
	}
	fornecedorRows, err := FetchFornecedores(ctx, maxCodFornecedores)
	if err != nil {
		return nil, err
	}

	snapshot := &InventarioSnapshot{
		DadosLojas:        dadosLojas,
		DadosCD:           dadosCD,
		DadosTransito:     transitSectorView(transitoGrouped),
		DadosFornecedores: SumFornecedoresByAsset(fornecedorRows),
	}

	snapshot.Diferenca.Lojas, err = diffAgainstPrevious(ctx, SourceContagemLojas, dadosLojas)
	if err != nil {
		return nil, err
	}
	snapshot.Diferenca.CD, err = diffAgainstPrevious(ctx, SourceInventarioCD, dadosCD)
	if err != nil {
		return nil, err
	}
	snapshot.Diferenca.Transito, err = diffTransitoAgainstPrevious(ctx, transitoGrouped)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func currentCountsByAsset(ctx context.Context, source SourceTable) (map[AssetType]int, error) {
	maxCod, err := MaxCodInventario(ctx, source)
	if err != nil {
		return nil, err
	}
	rows, err := FetchCounts(ctx, source, maxCod)
	if err != nil {
		return nil, err
	}
	return SumCountsByAsset(rows), nil
}

func diffAgainstPrevious(ctx context.Context, source SourceTable, current map[AssetType]int) (map[AssetType]int, error) {
	prevCod, err := PenultimoCodInventario(ctx, source)
	if err != nil {
		return nil, err
	}
	if prevCod == nil {
		return NoBaselineByAsset(), nil
	}
	prevRows, err := FetchCounts(ctx, source, *prevCod)
	if err != nil {
		return nil, err
	}
	return DiffByAsset(current, SumCountsByAsset(prevRows)), nil
}

func diffTransitoAgainstPrevious(ctx context.Context, current map[string]map[string]int) (map[string]map[string]int, error) {
	prevCod, err := PenultimoCodInventario(ctx, SourceDadosTransito)
	if err != nil {
		return nil, err
	}
	setores := expectedTransitSetores()
	tipos := expectedTransitTipos()
	if prevCod == nil {
		return NoBaselineTransito(setores, tipos), nil
	}
	prevRows, err := FetchTransito(ctx, *prevCod)
	if err != nil {
		return nil, err
	}
	return DiffTransito(current, GroupTransitoBySetorTipo(prevRows), setores, tipos), nil
}

func transitSectorView(grouped map[string]map[string]int) []TransitSectorTotals {
	tipos := expectedTransitTipos()
	view := make([]TransitSectorTotals, 0, 2)
	for _, setor := range expectedTransitSetores() {
		totals := make([]TransitTotal, 0, len(tipos))
		for _, tipo := range tipos {
			totals = append(totals, TransitTotal{Name: tipo, Total: grouped[setor][tipo]})
		}
		view = append(view, TransitSectorTotals{Setor: setor, Ativos: totals})
	}
	return view
}

// IsNotFound reports whether an error is the empty-source condition.
func IsNotFound(err error) bool {
	return errors.Is(err, utils.ErrorRecordNotFound)
}
