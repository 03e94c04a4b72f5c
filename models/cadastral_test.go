package models_test

import (
	"testing"

	"bitbucket.org/dpalog/ativos_backend/models"
)

func TestComputeAcompanhamentoNormalizedMatching(t *testing.T) {
	cadastro := []models.DadoCadastral{
		{Loja: "São Gonçalo", Regional: "RJ"},
		{Loja: "Niterói", Regional: "RJ"},
		{Loja: "Vitória", Regional: "ES"},
	}
	// The count row spells the store without accents and in uppercase.
	counts := []models.CountRecord{
		countRow("SAO GONCALO", 1, 0, 0, 0, 0, 0),
	}

	report := models.ComputeAcompanhamento(12, cadastro, counts)
	if report.CodInventario != 12 {
		t.Errorf("cod = %d, want 12", report.CodInventario)
	}
	if len(report.Regionais) != 2 {
		t.Fatalf("expected 2 regionais, got %d", len(report.Regionais))
	}

	byName := make(map[string]models.RegionalProgress)
	for _, r := range report.Regionais {
		byName[r.Regional] = r
	}

	rj := byName["RJ"]
	if rj.LojasContadas != 1 || rj.TotalLojas != 2 {
		t.Errorf("RJ = %d/%d, want 1/2", rj.LojasContadas, rj.TotalLojas)
	}
	if len(rj.LojasPendentes) != 1 || rj.LojasPendentes[0] != "Niterói" {
		t.Errorf("RJ pendentes = %v, want [Niterói]", rj.LojasPendentes)
	}
	if rj.Percentual != 50.0 {
		t.Errorf("RJ percentual = %v, want 50", rj.Percentual)
	}

	es := byName["ES"]
	if es.LojasContadas != 0 || es.Percentual != 0 {
		t.Errorf("ES = %d counted, %v%%, want 0/0", es.LojasContadas, es.Percentual)
	}
}

func TestComputeAcompanhamentoPercentualRounding(t *testing.T) {
	cadastro := []models.DadoCadastral{
		{Loja: "A", Regional: "SP"},
		{Loja: "B", Regional: "SP"},
		{Loja: "C", Regional: "SP"},
	}
	counts := []models.CountRecord{
		countRow("A", 1, 0, 0, 0, 0, 0),
	}
	report := models.ComputeAcompanhamento(1, cadastro, counts)
	if got := report.Regionais[0].Percentual; got != 33.33 {
		t.Errorf("percentual = %v, want 33.33", got)
	}
}

func TestComputeAcompanhamentoEmptyRegistry(t *testing.T) {
	report := models.ComputeAcompanhamento(1, nil, nil)
	if len(report.Regionais) != 0 {
		t.Errorf("empty registry should yield no regionais, got %v", report.Regionais)
	}
}
