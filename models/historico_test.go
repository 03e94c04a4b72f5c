package models_test

import (
	"testing"
	"time"

	"bitbucket.org/dpalog/ativos_backend/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCombineHistoryCycleWithPartialSources(t *testing.T) {
	// Cycle 5: store rows on Jan 1 and Jan 3 summing to 50, no CD rows, one
	// transit row on Jan 2 summing to 10.
	lojaA := countRow("LOJA A", 30, 0, 0, 0, 0, 0)
	lojaA.CodInventario = 5
	lojaA.Data = day("2024-01-01")
	lojaB := countRow("LOJA B", 20, 0, 0, 0, 0, 0)
	lojaB.CodInventario = 5
	lojaB.Data = day("2024-01-03")

	transito := []models.DadoTransito{
		{CodInventario: 5, Setor: "CD SP", Data: day("2024-01-02"), TipoCaixa: "CAIXA HB 623", Quantidade: 10},
	}

	entries := models.CombineHistory(
		models.GroupCountsByCycle([]models.CountRecord{lojaA, lojaB}),
		models.GroupCountsByCycle(nil),
		models.GroupTransitoByCycle(transito),
	)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.CodInventario != 5 {
		t.Errorf("cod = %d, want 5", e.CodInventario)
	}
	if e.DataInicio != "2024-01-01" || e.DataFim != "2024-01-03" {
		t.Errorf("window = %s..%s, want 2024-01-01..2024-01-03", e.DataInicio, e.DataFim)
	}
	if e.ContagemLojas != 50 {
		t.Errorf("contagemLojas = %d, want 50", e.ContagemLojas)
	}
	if e.ContagemInventarioHB != 0 {
		t.Errorf("contagemInventarioHB = %d, want 0", e.ContagemInventarioHB)
	}
	if e.ContagemTransito != 10 {
		t.Errorf("contagemTransito = %d, want 10", e.ContagemTransito)
	}
}

func TestCombineHistorySortsDescendingOverUnion(t *testing.T) {
	c3 := countRow("LOJA A", 1, 0, 0, 0, 0, 0)
	c3.CodInventario = 3
	c3.Data = day("2024-03-01")
	c1 := countRow("LOJA A", 2, 0, 0, 0, 0, 0)
	c1.CodInventario = 1
	c1.Data = day("2024-01-01")

	transito := []models.DadoTransito{
		{CodInventario: 2, Setor: "CD ES", Data: day("2024-02-01"), TipoCaixa: "CAIXA BIN", Quantidade: 9},
	}

	entries := models.CombineHistory(
		models.GroupCountsByCycle([]models.CountRecord{c3, c1}),
		models.GroupCountsByCycle(nil),
		models.GroupTransitoByCycle(transito),
	)

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries over the union of cycles, got %d", len(entries))
	}
	for i, want := range []int{3, 2, 1} {
		if entries[i].CodInventario != want {
			t.Errorf("entries[%d].CodInventario = %d, want %d", i, entries[i].CodInventario, want)
		}
	}
	// Cycle 2 exists only in transit.
	if entries[1].ContagemTransito != 9 || entries[1].ContagemLojas != 0 {
		t.Errorf("cycle 2 = %+v, want transito=9 lojas=0", entries[1])
	}
}

func TestGroupCountsBySetorDetail(t *testing.T) {
	a1 := countRow("LOJA A", 3, 0, 0, 0, 0, 0)
	a1.CodInventario = 7
	a1.Data = day("2024-05-02")
	a2 := countRow("LOJA A", 4, 0, 0, 0, 0, 0)
	a2.CodInventario = 7
	a2.Data = day("2024-05-04")
	b := countRow("", 5, 0, 0, 0, 0, 0)
	b.CodInventario = 7
	b.Data = day("2024-05-03")

	details := models.GroupCountsBySetorDetail([]models.CountRecord{a1, a2, b})
	d, ok := details[7]
	if !ok {
		t.Fatal("expected detail for cycle 7")
	}
	if d.Detalhes["LOJA A"] != 7 {
		t.Errorf("LOJA A = %d, want 7", d.Detalhes["LOJA A"])
	}
	if d.Detalhes["Sem setor"] != 5 {
		t.Errorf("blank sector = %d, want 5 under 'Sem setor'", d.Detalhes["Sem setor"])
	}
	if d.MinDate != "2024-05-02" || d.MaxDate != "2024-05-04" {
		t.Errorf("window = %s..%s", d.MinDate, d.MaxDate)
	}
	if d.Total != 12 {
		t.Errorf("total = %d, want 12", d.Total)
	}
}

func TestGroupTransitoDetail(t *testing.T) {
	rows := []models.DadoTransito{
		{CodInventario: 2, Setor: "CD SP", Data: day("2024-02-01"), TipoCaixa: "CAIXA HB 623", Quantidade: 4},
		{CodInventario: 2, Setor: "CD SP", Data: day("2024-02-02"), TipoCaixa: "CAIXA HB 623", Quantidade: 6},
		{CodInventario: 2, Setor: "CD ES", Data: day("2024-02-03"), TipoCaixa: "CAIXA CHOCOLATE", Quantidade: 1},
	}
	details := models.GroupTransitoDetail(rows)
	d := details[2]
	if d.Detalhes["CD SP"]["CAIXA HB 623"] != 10 {
		t.Errorf("CD SP HB623 = %d, want 10", d.Detalhes["CD SP"]["CAIXA HB 623"])
	}
	if d.Detalhes["CD ES"]["CAIXA CHOCOLATE"] != 1 {
		t.Errorf("CD ES CHOCOLATE = %d, want 1", d.Detalhes["CD ES"]["CAIXA CHOCOLATE"])
	}
	if d.Total != 11 {
		t.Errorf("total = %d, want 11", d.Total)
	}
}
