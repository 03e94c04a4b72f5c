package models

import (
	"context"
	"math"
	"sort"

	"bitbucket.org/dpalog/ativos_backend/config"
	"bitbucket.org/dpalog/ativos_backend/utils"
)

// DadoCadastral is the store registry: every store that is expected to submit
// a count each cycle, tagged with its distribution regional.
type DadoCadastral struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Loja     string `gorm:"column:loja" json:"loja"`
	Regional string `gorm:"column:regional" json:"regional"`
}

func (DadoCadastral) TableName() string {
	return string(SourceDadosCadastral)
}

// FetchCadastro loads the full store registry.
func FetchCadastro(ctx context.Context) ([]DadoCadastral, error) {
	db := config.GetDB()
	var rows []DadoCadastral
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// RegionalProgress is one regional's counting progress for the current cycle.
// Percentual is rounded to two decimals.
type RegionalProgress struct {
	Regional       string   `json:"regional"`
	TotalLojas     int      `json:"totalLojas"`
	LojasContadas  int      `json:"lojasContadas"`
	LojasPendentes []string `json:"lojasPendentes"`
	Percentual     float64  `json:"percentual"`
}

// AcompanhamentoReport is the tracking view: per-regional progress against the
// store registry.
type AcompanhamentoReport struct {
	CodInventario int                `json:"cod_inventario"`
	Regionais     []RegionalProgress `json:"regionais"`
}

// countedSetores returns the normalized set of sector labels present in one
// cycle of the store-count table.
func countedSetores(rows []CountRecord) map[string]bool {
	counted := make(map[string]bool, len(rows))
	for i := range rows {
		counted[utils.NormalizeName(rows[i].Setor)] = true
	}
	return counted
}

// ComputeAcompanhamento matches the registry against the cycle's count rows.
// Store names compare accent-insensitively and case-insensitively; a registry
// entry with no matching count row is pending.
func ComputeAcompanhamento(codInventario int, cadastro []DadoCadastral, counts []CountRecord) *AcompanhamentoReport {
	counted := countedSetores(counts)

	byRegional := make(map[string][]DadoCadastral)
	for i := range cadastro {
		byRegional[cadastro[i].Regional] = append(byRegional[cadastro[i].Regional], cadastro[i])
	}

	regionais := make([]RegionalProgress, 0, len(byRegional))
	for regional, lojas := range byRegional {
		progress := RegionalProgress{
			Regional:       regional,
			TotalLojas:     len(lojas),
			LojasPendentes: []string{},
		}
		for _, loja := range lojas {
			if counted[utils.NormalizeName(loja.Loja)] {
				progress.LojasContadas++
			} else {
				progress.LojasPendentes = append(progress.LojasPendentes, loja.Loja)
			}
		}
		sort.Strings(progress.LojasPendentes)
		if progress.TotalLojas > 0 {
			pct := float64(progress.LojasContadas) / float64(progress.TotalLojas) * 100
			progress.Percentual = math.Round(pct*100) / 100
		}
		regionais = append(regionais, progress)
	}
	sort.Slice(regionais, func(i, j int) bool {
		return regionais[i].Regional < regionais[j].Regional
	})

	return &AcompanhamentoReport{CodInventario: codInventario, Regionais: regionais}
}

// BuildAcompanhamento reads the registry and the current store-count cycle and
// assembles the tracking report.
func BuildAcompanhamento(ctx context.Context) (*AcompanhamentoReport, error) {
	cod, err := MaxCodInventario(ctx, SourceContagemLojas)
	if err != nil {
		return nil, err
	}
	counts, err := FetchCounts(ctx, SourceContagemLojas, cod)
	if err != nil {
		return nil, err
	}
	cadastro, err := FetchCadastro(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeAcompanhamento(cod, cadastro, counts), nil
}

// ResultadoComparativo is the delta between the two most recent finalized
// results of one mode.
type ResultadoComparativo struct {
	Atual    ModePair `json:"atual"`
	Anterior ModePair `json:"anterior"`
	Delta    ModePair `json:"delta"`
}

// CalcDash is the summary card payload: global counting progress plus the
// comparison of the two latest finalized results.
type CalcDash struct {
	CodInventario   int                   `json:"cod_inventario"`
	TotalLojas      int                   `json:"totalLojas"`
	LojasContadas   int                   `json:"lojasContadas"`
	LojasPendentes  []string              `json:"lojasPendentes"`
	PercentualGeral float64               `json:"percentualGeral"`
	Comparativo     *ResultadoComparativo `json:"comparativo"`
}

// BuildCalcDash assembles the summary card: registry-wide progress for the
// current store-count cycle and, when at least two finalized results exist for
// the mode, the comparison between them.
func BuildCalcDash(ctx context.Context, mode InventoryMode) (*CalcDash, error) {
	cod, err := MaxCodInventario(ctx, SourceContagemLojas)
	if err != nil {
		return nil, err
	}
	counts, err := FetchCounts(ctx, SourceContagemLojas, cod)
	if err != nil {
		return nil, err
	}
	cadastro, err := FetchCadastro(ctx)
	if err != nil {
		return nil, err
	}

	counted := countedSetores(counts)
	dash := &CalcDash{
		CodInventario:  cod,
		TotalLojas:     len(cadastro),
		LojasPendentes: []string{},
	}
	for i := range cadastro {
		if counted[utils.NormalizeName(cadastro[i].Loja)] {
			dash.LojasContadas++
		} else {
			dash.LojasPendentes = append(dash.LojasPendentes, cadastro[i].Loja)
		}
	}
	sort.Strings(dash.LojasPendentes)
	if dash.TotalLojas > 0 {
		pct := float64(dash.LojasContadas) / float64(dash.TotalLojas) * 100
		dash.PercentualGeral = math.Round(pct*100) / 100
	}

	results, err := LatestResultados(ctx, mode, 2)
	if err != nil {
		return nil, err
	}
	if len(results) == 2 {
		atual := results[0].Totais()
		anterior := results[1].Totais()
		dash.Comparativo = &ResultadoComparativo{
			Atual:    atual,
			Anterior: anterior,
			Delta: ModePair{
				Valor1: atual.Valor1 - anterior.Valor1,
				Valor2: atual.Valor2 - anterior.Valor2,
			},
		}
	}

	return dash, nil
}
