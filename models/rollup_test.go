package models_test

import (
	"testing"

	"bitbucket.org/dpalog/ativos_backend/models"
)

func TestRegionalRollupTotalInvariant(t *testing.T) {
	counts := []models.CountRecord{
		countRow("CD ES", 10, 8, 0, 0, 0, 0),
		countRow("LOJA A", 99, 99, 0, 0, 0, 0),
	}
	transito := []models.DadoTransito{
		{Setor: "CD ES", TipoCaixa: "CAIXA HB 623", Quantidade: 5},
		{Setor: "CD ES", TipoCaixa: "CAIXA HB 618", Quantidade: 3},
		{Setor: "CD SP", TipoCaixa: "CAIXA HB 623", Quantidade: 77},
	}
	fornecedores := []models.FornecedorRecord{
		{Fornecedor: "FORNECEDORES ES", Ativo: "CAIXA HB 623", Quantidade: 2},
		{Fornecedor: "FORNECEDORES SP", Ativo: "CAIXA HB 623", Quantidade: 88},
	}

	var regionES models.Region
	for _, r := range models.Regions() {
		if r.Nome == "ES" {
			regionES = r
		}
	}

	rollup := models.ComputeRegionalRollup(regionES, models.ModeInventarioHB, counts, transito, fornecedores)
	if rollup.Contagem.Valor1 != 10 || rollup.Contagem.Valor2 != 8 {
		t.Errorf("contagem = %+v, want {10 8}", rollup.Contagem)
	}
	if rollup.Transito.Valor1 != 5 || rollup.Transito.Valor2 != 3 {
		t.Errorf("transito = %+v, want {5 3}", rollup.Transito)
	}
	if rollup.Fornecedor.Valor1 != 2 || rollup.Fornecedor.Valor2 != 0 {
		t.Errorf("fornecedor = %+v, want {2 0}", rollup.Fornecedor)
	}

	wantV1 := rollup.Contagem.Valor1 + rollup.Transito.Valor1 + rollup.Fornecedor.Valor1
	wantV2 := rollup.Contagem.Valor2 + rollup.Transito.Valor2 + rollup.Fornecedor.Valor2
	if rollup.Total.Valor1 != wantV1 || rollup.Total.Valor2 != wantV2 {
		t.Errorf("total = %+v, want {%d %d}", rollup.Total, wantV1, wantV2)
	}
}

func TestComputeFinalizationGrandTotal(t *testing.T) {
	// Two non-regional stores summing HB623=100; region ES contributes
	// contagem=10, transito=5, fornecedor=0; SP and RJ contribute nothing.
	counts := []models.CountRecord{
		countRow("LOJA A", 60, 0, 0, 0, 0, 0),
		countRow("LOJA B", 40, 0, 0, 0, 0, 0),
		countRow("CD ES", 10, 0, 0, 0, 0, 0),
	}
	transito := []models.DadoTransito{
		{Setor: "CD ES", TipoCaixa: "CAIXA HB 623", Quantidade: 5},
	}
	var fornecedores []models.FornecedorRecord

	breakdown := models.ComputeFinalization(models.ModeInventarioHB, counts, transito, fornecedores)

	if breakdown.TotalLojas.Valor1 != 100 {
		t.Errorf("store total = %d, want 100", breakdown.TotalLojas.Valor1)
	}
	if _, ok := breakdown.ResultadoLojas["CD ES"]; ok {
		t.Error("regional sectors must not appear in the per-store breakdown")
	}
	if len(breakdown.Regionais) != 3 {
		t.Fatalf("expected 3 regional rollups, got %d", len(breakdown.Regionais))
	}
	if got := breakdown.Regionais["CD ES"].Total.Valor1; got != 15 {
		t.Errorf("ES total = %d, want 15", got)
	}
	if got := breakdown.Regionais["CD SP"].Total.Valor1; got != 0 {
		t.Errorf("SP total = %d, want 0", got)
	}

	// 100 stores + 15 ES + 0 SP + 0 RJ.
	if breakdown.TotalFinal.Valor1 != 115 {
		t.Errorf("grand total = %d, want 115", breakdown.TotalFinal.Valor1)
	}

	sum := breakdown.TotalLojas
	for _, rollup := range breakdown.Regionais {
		sum = sum.Add(rollup.Total)
	}
	if breakdown.TotalFinal != sum {
		t.Errorf("grand total %+v != stores+regions %+v", breakdown.TotalFinal, sum)
	}
}

func TestComputeFinalizationEmptyCycle(t *testing.T) {
	breakdown := models.ComputeFinalization(models.ModeInventarioHNT, nil, nil, nil)
	if breakdown.TotalFinal.Valor1 != 0 || breakdown.TotalFinal.Valor2 != 0 {
		t.Errorf("empty cycle grand total = %+v, want zeros", breakdown.TotalFinal)
	}
	if len(breakdown.ResultadoLojas) != 0 {
		t.Errorf("empty cycle store breakdown = %v, want empty", breakdown.ResultadoLojas)
	}
}
