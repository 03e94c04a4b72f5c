package models

import (
	"context"
	"sort"
	"time"
)

// History combiner: read-only longitudinal report merging the three count-like
// sources into a unified timeline of cycles. No state transitions.

const dateLayout = "2006-01-02"

// CycleWindow is one source's view of one cycle: observed date range plus a
// running total.
type CycleWindow struct {
	MinDate time.Time
	MaxDate time.Time
	Total   int
}

func (w *CycleWindow) observe(date time.Time, qty int) {
	if w.Total == 0 && w.MinDate.IsZero() {
		w.MinDate, w.MaxDate = date, date
	} else {
		if date.Before(w.MinDate) {
			w.MinDate = date
		}
		if date.After(w.MaxDate) {
			w.MaxDate = date
		}
	}
	w.Total += qty
}

// GroupCountsByCycle folds count rows by cycle, summing all six asset columns
// and tracking the min/max recorded date.
func GroupCountsByCycle(rows []CountRecord) map[int]CycleWindow {
	grouped := make(map[int]CycleWindow)
	for i := range rows {
		w := grouped[rows[i].CodInventario]
		w.observe(rows[i].Data, rows[i].TotalAll())
		grouped[rows[i].CodInventario] = w
	}
	return grouped
}

// GroupTransitoByCycle folds transit rows by cycle, summing quantities.
func GroupTransitoByCycle(rows []DadoTransito) map[int]CycleWindow {
	grouped := make(map[int]CycleWindow)
	for i := range rows {
		w := grouped[rows[i].CodInventario]
		w.observe(rows[i].Data, rows[i].Quantidade)
		grouped[rows[i].CodInventario] = w
	}
	return grouped
}

// HistoryEntry is one cycle of the combined timeline. Dates span the earliest
// and latest record observed in any source for the cycle.
type HistoryEntry struct {
	CodInventario        int    `json:"cod_inventario"`
	DataInicio           string `json:"dataInicio"`
	DataFim              string `json:"dataFim"`
	ContagemLojas        int    `json:"contagemLojas"`
	ContagemInventarioHB int    `json:"contagemInventarioHB"`
	ContagemTransito     int    `json:"contagemTransito"`
}

// CombineHistory merges the per-source cycle windows over the union of cycle
// ids, sorted by cycle descending. A source without rows for a cycle
// contributes zero.
func CombineHistory(lojas, cd, transito map[int]CycleWindow) []HistoryEntry {
	cods := make(map[int]bool)
	for cod := range lojas {
		cods[cod] = true
	}
	for cod := range cd {
		cods[cod] = true
	}
	for cod := range transito {
		cods[cod] = true
	}

	entries := make([]HistoryEntry, 0, len(cods))
	for cod := range cods {
		var start, end time.Time
		for _, w := range []CycleWindow{lojas[cod], cd[cod], transito[cod]} {
			if w.MinDate.IsZero() {
				continue
			}
			if start.IsZero() || w.MinDate.Before(start) {
				start = w.MinDate
			}
			if end.IsZero() || w.MaxDate.After(end) {
				end = w.MaxDate
			}
		}
		entry := HistoryEntry{
			CodInventario:        cod,
			ContagemLojas:        lojas[cod].Total,
			ContagemInventarioHB: cd[cod].Total,
			ContagemTransito:     transito[cod].Total,
		}
		if !start.IsZero() {
			entry.DataInicio = start.Format(dateLayout)
			entry.DataFim = end.Format(dateLayout)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CodInventario > entries[j].CodInventario
	})
	return entries
}

// SetorDetail is one cycle's per-sector breakdown (sum of all asset columns
// per sector) for drill-down views.
type SetorDetail struct {
	Detalhes map[string]int `json:"detalhes"`
	MinDate  string         `json:"minDate"`
	MaxDate  string         `json:"maxDate"`
	Total    int            `json:"total"`
}

// GroupCountsBySetorDetail groups count rows by cycle, then by sector.
func GroupCountsBySetorDetail(rows []CountRecord) map[int]SetorDetail {
	windows := make(map[int]CycleWindow)
	details := make(map[int]map[string]int)
	for i := range rows {
		cod := rows[i].CodInventario
		setor := rows[i].Setor
		if setor == "" {
			setor = "Sem setor"
		}
		total := rows[i].TotalAll()

		w := windows[cod]
		w.observe(rows[i].Data, total)
		windows[cod] = w

		if details[cod] == nil {
			details[cod] = make(map[string]int)
		}
		details[cod][setor] += total
	}
	return assembleSetorDetails(windows, details)
}

func assembleSetorDetails(windows map[int]CycleWindow, details map[int]map[string]int) map[int]SetorDetail {
	out := make(map[int]SetorDetail, len(windows))
	for cod, w := range windows {
		out[cod] = SetorDetail{
			Detalhes: details[cod],
			MinDate:  w.MinDate.Format(dateLayout),
			MaxDate:  w.MaxDate.Format(dateLayout),
			Total:    w.Total,
		}
	}
	return out
}

// TransitoDetail is one cycle's transit breakdown by sector and box type.
type TransitoDetail struct {
	Detalhes map[string]map[string]int `json:"detalhes"`
	MinDate  string                    `json:"minDate"`
	MaxDate  string                    `json:"maxDate"`
	Total    int                       `json:"total"`
}

// GroupTransitoDetail groups transit rows by cycle, then sector, then
// tipo_caixa.
func GroupTransitoDetail(rows []DadoTransito) map[int]TransitoDetail {
	windows := make(map[int]CycleWindow)
	details := make(map[int]map[string]map[string]int)
	for i := range rows {
		cod := rows[i].CodInventario
		setor := rows[i].Setor
		if setor == "" {
			setor = "Sem setor"
		}

		w := windows[cod]
		w.observe(rows[i].Data, rows[i].Quantidade)
		windows[cod] = w

		if details[cod] == nil {
			details[cod] = make(map[string]map[string]int)
		}
		if details[cod][setor] == nil {
			details[cod][setor] = make(map[string]int)
		}
		details[cod][setor][rows[i].TipoCaixa] += rows[i].Quantidade
	}

	out := make(map[int]TransitoDetail, len(windows))
	for cod, w := range windows {
		out[cod] = TransitoDetail{
			Detalhes: details[cod],
			MinDate:  w.MinDate.Format(dateLayout),
			MaxDate:  w.MaxDate.Format(dateLayout),
			Total:    w.Total,
		}
	}
	return out
}

// AtivoDetail is one cycle's per-sector, per-asset breakdown.
type AtivoDetail struct {
	Detalhes map[string]map[AssetType]int `json:"detalhes"`
	MinDate  string                       `json:"minDate"`
	MaxDate  string                       `json:"maxDate"`
}

// GroupCountsByAtivoDetail groups count rows by cycle, then sector, splitting
// each asset type out individually.
func GroupCountsByAtivoDetail(rows []CountRecord) map[int]AtivoDetail {
	windows := make(map[int]CycleWindow)
	details := make(map[int]map[string]map[AssetType]int)
	for i := range rows {
		cod := rows[i].CodInventario
		setor := rows[i].Setor
		if setor == "" {
			setor = "Sem setor"
		}

		w := windows[cod]
		w.observe(rows[i].Data, 0)
		windows[cod] = w

		if details[cod] == nil {
			details[cod] = make(map[string]map[AssetType]int)
		}
		if details[cod][setor] == nil {
			details[cod][setor] = make(map[AssetType]int, 6)
			for _, a := range AllAssetTypes() {
				details[cod][setor][a] = 0
			}
		}
		for _, a := range AllAssetTypes() {
			details[cod][setor][a] += rows[i].QuantityFor(a)
		}
	}

	out := make(map[int]AtivoDetail, len(windows))
	for cod, w := range windows {
		out[cod] = AtivoDetail{
			Detalhes: details[cod],
			MinDate:  w.MinDate.Format(dateLayout),
			MaxDate:  w.MaxDate.Format(dateLayout),
		}
	}
	return out
}

// HistoricoReport is the full history payload: the combined timeline plus the
// per-sector and per-asset drill-downs.
type HistoricoReport struct {
	Historico []HistoryEntry `json:"historico"`
	Detalhes  struct {
		ContagemLojas map[int]SetorDetail    `json:"ativo_contagemlojas"`
		InventarioCD  map[int]SetorDetail    `json:"ativo_inventario_hb"`
		Transito      map[int]TransitoDetail `json:"ativo_dadostransito"`
	} `json:"detalhes"`
	PorAtivo struct {
		ContagemLojas map[int]AtivoDetail `json:"ativo_contagemlojas"`
		InventarioCD  map[int]AtivoDetail `json:"ativo_inventario_hb"`
	} `json:"por_ativo"`
}

// BuildHistorico reads all rows of the three count-like sources and assembles
// the combined report.
func BuildHistorico(ctx context.Context) (*HistoricoReport, error) {
	lojasRows, err := fetchAllCounts(ctx, SourceContagemLojas)
	if err != nil {
		return nil, err
	}
	cdRows, err := fetchAllCounts(ctx, SourceInventarioCD)
	if err != nil {
		return nil, err
	}
	transitoRows, err := fetchAllTransito(ctx)
	if err != nil {
		return nil, err
	}

	report := &HistoricoReport{
		Historico: CombineHistory(
			GroupCountsByCycle(lojasRows),
			GroupCountsByCycle(cdRows),
			GroupTransitoByCycle(transitoRows),
		),
	}
	report.Detalhes.ContagemLojas = GroupCountsBySetorDetail(lojasRows)
	report.Detalhes.InventarioCD = GroupCountsBySetorDetail(cdRows)
	report.Detalhes.Transito = GroupTransitoDetail(transitoRows)
	report.PorAtivo.ContagemLojas = GroupCountsByAtivoDetail(lojasRows)
	report.PorAtivo.InventarioCD = GroupCountsByAtivoDetail(cdRows)
	return report, nil
}
