package models

// Pure aggregation over already-fetched rows. Every function here tolerates an
// empty input and sums it to zero; aggregation never errors.

// ModePair carries the two totals a finalization mode tracks (HB: 623/618,
// HNT: G/P).
type ModePair struct {
	Valor1 int `json:"valor1"`
	Valor2 int `json:"valor2"`
}

func (p ModePair) Add(o ModePair) ModePair {
	return ModePair{Valor1: p.Valor1 + o.Valor1, Valor2: p.Valor2 + o.Valor2}
}

// SumCountsByAsset sums each quantity column independently across rows,
// returning a zero-filled mapping for every asset type.
func SumCountsByAsset(rows []CountRecord) map[AssetType]int {
	totals := make(map[AssetType]int, 6)
	for _, a := range AllAssetTypes() {
		totals[a] = 0
	}
	for i := range rows {
		for _, a := range AllAssetTypes() {
			totals[a] += rows[i].QuantityFor(a)
		}
	}
	return totals
}

// SumCountsPair sums a mode's two asset fields across rows.
func SumCountsPair(rows []CountRecord, mode InventoryMode) ModePair {
	a1, a2 := mode.AssetPair()
	var pair ModePair
	for i := range rows {
		pair.Valor1 += rows[i].QuantityFor(a1)
		pair.Valor2 += rows[i].QuantityFor(a2)
	}
	return pair
}

// GroupCountsBySetor groups rows by sector, summing the mode's two asset
// fields per group.
func GroupCountsBySetor(rows []CountRecord, mode InventoryMode) map[string]ModePair {
	a1, a2 := mode.AssetPair()
	grouped := make(map[string]ModePair)
	for i := range rows {
		pair := grouped[rows[i].Setor]
		pair.Valor1 += rows[i].QuantityFor(a1)
		pair.Valor2 += rows[i].QuantityFor(a2)
		grouped[rows[i].Setor] = pair
	}
	return grouped
}

// FilterCountsBySetor keeps only rows with an exact sector match.
func FilterCountsBySetor(rows []CountRecord, setor string) []CountRecord {
	out := make([]CountRecord, 0, len(rows))
	for i := range rows {
		if rows[i].Setor == setor {
			out = append(out, rows[i])
		}
	}
	return out
}

// ExcludeCountsBySetor drops rows whose sector is in the exclusion set.
func ExcludeCountsBySetor(rows []CountRecord, setores []string) []CountRecord {
	excluded := make(map[string]bool, len(setores))
	for _, s := range setores {
		excluded[s] = true
	}
	out := make([]CountRecord, 0, len(rows))
	for i := range rows {
		if !excluded[rows[i].Setor] {
			out = append(out, rows[i])
		}
	}
	return out
}

// SumTransito sums transit quantities for one (setor, tipo_caixa) pair.
func SumTransito(rows []DadoTransito, setor string, tipoCaixa string) int {
	sum := 0
	for i := range rows {
		if rows[i].Setor == setor && rows[i].TipoCaixa == tipoCaixa {
			sum += rows[i].Quantidade
		}
	}
	return sum
}

// GroupTransitoBySetorTipo groups transit quantities by sector and box-type
// label (transit spelling preserved).
func GroupTransitoBySetorTipo(rows []DadoTransito) map[string]map[string]int {
	grouped := make(map[string]map[string]int)
	for i := range rows {
		setor := rows[i].Setor
		if grouped[setor] == nil {
			grouped[setor] = make(map[string]int)
		}
		grouped[setor][rows[i].TipoCaixa] += rows[i].Quantidade
	}
	return grouped
}

// SumFornecedor sums supplier quantities for one (fornecedor, ativo) pair.
func SumFornecedor(rows []FornecedorRecord, fornecedor string, ativo AssetType) int {
	sum := 0
	for i := range rows {
		if rows[i].Fornecedor == fornecedor && rows[i].Ativo == string(ativo) {
			sum += rows[i].Quantidade
		}
	}
	return sum
}

// SumFornecedoresByAsset sums supplier quantities per asset type across all
// supplier groups. Rows with a label outside the closed asset set are ignored.
func SumFornecedoresByAsset(rows []FornecedorRecord) map[AssetType]int {
	totals := make(map[AssetType]int, 6)
	for _, a := range AllAssetTypes() {
		totals[a] = 0
	}
	for i := range rows {
		if a, ok := AssetTypeFromTransitLabel(rows[i].Ativo); ok {
			totals[a] += rows[i].Quantidade
		}
	}
	return totals
}
