package models

// RegionalRollup combines on-site count, in-transit count and supplier-reported
// count for one distribution region, over a mode's two asset fields.
// Invariant: Total == Contagem + Transito + Fornecedor, component-wise.
type RegionalRollup struct {
	Contagem   ModePair `json:"contagem"`
	Transito   ModePair `json:"transito"`
	Fornecedor ModePair `json:"fornecedor"`
	Total      ModePair `json:"total"`
}

// FinalizationBreakdown is the full per-store / per-region detail of one
// finalization run. Only the grand totals are persisted; the breakdown is
// returned to the caller and then discarded.
type FinalizationBreakdown struct {
	ResultadoLojas map[string]ModePair       `json:"resultado_lojas"`
	TotalLojas     ModePair                  `json:"total_lojas"`
	Regionais      map[string]RegionalRollup `json:"regionais"`
	TotalFinal     ModePair                  `json:"total_final"`
}

// ComputeRegionalRollup builds one region's rollup from the cycle's rows:
// store-count rows with the region's sector label, transit rows for the mode's
// two transit labels, supplier rows for the region's supplier group.
func ComputeRegionalRollup(region Region, mode InventoryMode, counts []CountRecord, transito []DadoTransito, fornecedores []FornecedorRecord) RegionalRollup {
	a1, a2 := mode.AssetPair()

	contagem := SumCountsPair(FilterCountsBySetor(counts, region.Setor), mode)
	transitoPair := ModePair{
		Valor1: SumTransito(transito, region.Setor, a1.TransitLabel()),
		Valor2: SumTransito(transito, region.Setor, a2.TransitLabel()),
	}
	fornecedorPair := ModePair{
		Valor1: SumFornecedor(fornecedores, region.Fornecedor, a1),
		Valor2: SumFornecedor(fornecedores, region.Fornecedor, a2),
	}

	return RegionalRollup{
		Contagem:   contagem,
		Transito:   transitoPair,
		Fornecedor: fornecedorPair,
		Total:      contagem.Add(transitoPair).Add(fornecedorPair),
	}
}

// ComputeFinalization aggregates one cycle's rows into the finalization
// breakdown for a mode: per-store totals excluding the three regional sectors,
// one rollup per region, and the grand totals
// (non-regional stores + every region's total).
func ComputeFinalization(mode InventoryMode, counts []CountRecord, transito []DadoTransito, fornecedores []FornecedorRecord) FinalizationBreakdown {
	lojas := GroupCountsBySetor(ExcludeCountsBySetor(counts, RegionalSetores()), mode)

	var totalLojas ModePair
	for _, pair := range lojas {
		totalLojas = totalLojas.Add(pair)
	}

	regionais := make(map[string]RegionalRollup, 3)
	totalFinal := totalLojas
	for _, region := range Regions() {
		rollup := ComputeRegionalRollup(region, mode, counts, transito, fornecedores)
		regionais[region.Setor] = rollup
		totalFinal = totalFinal.Add(rollup.Total)
	}

	return FinalizationBreakdown{
		ResultadoLojas: lojas,
		TotalLojas:     totalLojas,
		Regionais:      regionais,
		TotalFinal:     totalFinal,
	}
}
