package models_test

import (
	"testing"

	"bitbucket.org/dpalog/ativos_backend/models"
)

func countRow(setor string, hb623, hb618, hntG, hntP, chocolate, bin int) models.CountRecord {
	row := models.CountRecord{Setor: setor}
	row.CaixaHb623 = hb623
	row.CaixaHb618 = hb618
	row.CaixaHntG = hntG
	row.CaixaHntP = hntP
	row.CaixaChocolate = chocolate
	row.CaixaBin = bin
	return row
}

func TestSumCountsByAssetEmptyIsZeroFilled(t *testing.T) {
	totals := models.SumCountsByAsset(nil)
	if len(totals) != 6 {
		t.Fatalf("expected 6 asset types, got %d", len(totals))
	}
	for a, v := range totals {
		if v != 0 {
			t.Errorf("empty input should sum %s to 0, got %d", a, v)
		}
	}
}

func TestSumCountsByAsset(t *testing.T) {
	rows := []models.CountRecord{
		countRow("LOJA A", 10, 5, 0, 0, 2, 1),
		countRow("LOJA B", 3, 0, 7, 4, 0, 0),
	}
	totals := models.SumCountsByAsset(rows)
	if totals[models.AssetHB623] != 13 {
		t.Errorf("HB623 = %d, want 13", totals[models.AssetHB623])
	}
	if totals[models.AssetHNTP] != 4 {
		t.Errorf("HNTP = %d, want 4", totals[models.AssetHNTP])
	}
	if totals[models.AssetBasculhante] != 2 {
		t.Errorf("BASCULHANTE = %d, want 2", totals[models.AssetBasculhante])
	}
}

func TestSumCountsPairPerMode(t *testing.T) {
	rows := []models.CountRecord{
		countRow("LOJA A", 10, 5, 1, 2, 0, 0),
		countRow("LOJA B", 4, 1, 3, 4, 0, 0),
	}
	hb := models.SumCountsPair(rows, models.ModeInventarioHB)
	if hb.Valor1 != 14 || hb.Valor2 != 6 {
		t.Errorf("HB pair = %+v, want {14 6}", hb)
	}
	hnt := models.SumCountsPair(rows, models.ModeInventarioHNT)
	if hnt.Valor1 != 4 || hnt.Valor2 != 6 {
		t.Errorf("HNT pair = %+v, want {4 6}", hnt)
	}
}

func TestGroupCountsBySetorAccumulates(t *testing.T) {
	rows := []models.CountRecord{
		countRow("LOJA A", 1, 2, 0, 0, 0, 0),
		countRow("LOJA A", 3, 4, 0, 0, 0, 0),
		countRow("LOJA B", 5, 0, 0, 0, 0, 0),
	}
	grouped := models.GroupCountsBySetor(rows, models.ModeInventarioHB)
	if got := grouped["LOJA A"]; got.Valor1 != 4 || got.Valor2 != 6 {
		t.Errorf("LOJA A = %+v, want {4 6}", got)
	}
	if got := grouped["LOJA B"]; got.Valor1 != 5 || got.Valor2 != 0 {
		t.Errorf("LOJA B = %+v, want {5 0}", got)
	}
}

func TestExcludeCountsBySetor(t *testing.T) {
	rows := []models.CountRecord{
		countRow("LOJA A", 1, 0, 0, 0, 0, 0),
		countRow("CD SP", 100, 0, 0, 0, 0, 0),
		countRow("CD ES", 100, 0, 0, 0, 0, 0),
	}
	out := models.ExcludeCountsBySetor(rows, models.RegionalSetores())
	if len(out) != 1 || out[0].Setor != "LOJA A" {
		t.Fatalf("expected only LOJA A, got %v", out)
	}
}

func TestSumTransitoMatchesExactSetorAndTipo(t *testing.T) {
	rows := []models.DadoTransito{
		{Setor: "CD SP", TipoCaixa: "CAIXA HB 623", Quantidade: 10},
		{Setor: "CD SP", TipoCaixa: "CAIXA HB 623", Quantidade: 5},
		{Setor: "CD ES", TipoCaixa: "CAIXA HB 623", Quantidade: 99},
		{Setor: "CD SP", TipoCaixa: "CAIXA CHOCOLATE", Quantidade: 7},
	}
	if got := models.SumTransito(rows, "CD SP", "CAIXA HB 623"); got != 15 {
		t.Errorf("sum = %d, want 15", got)
	}
	if got := models.SumTransito(rows, "CD SP", "CAIXA CHOCOLATE"); got != 7 {
		t.Errorf("chocolate sum = %d, want 7", got)
	}
	if got := models.SumTransito(rows, "CD PAVUNA", "CAIXA HB 623"); got != 0 {
		t.Errorf("missing setor should sum to 0, got %d", got)
	}
}

func TestSumFornecedoresByAssetHonorsChocolateSpelling(t *testing.T) {
	rows := []models.FornecedorRecord{
		{Fornecedor: "FORNECEDORES SP", Ativo: "CAIXA HB 623", Quantidade: 10},
		{Fornecedor: "FORNECEDORES ES", Ativo: "CAIXA CHOCOLATE", Quantidade: 4},
		{Fornecedor: "FORNECEDORES RJ", Ativo: "CAIXA BASCULHANTE", Quantidade: 6},
		{Fornecedor: "FORNECEDORES RJ", Ativo: "CAIXA DESCONHECIDA", Quantidade: 99},
	}
	totals := models.SumFornecedoresByAsset(rows)
	if totals[models.AssetHB623] != 10 {
		t.Errorf("HB623 = %d, want 10", totals[models.AssetHB623])
	}
	// Both spellings accumulate into the same asset; unknown labels are dropped.
	if totals[models.AssetBasculhante] != 10 {
		t.Errorf("BASCULHANTE = %d, want 10", totals[models.AssetBasculhante])
	}
}
