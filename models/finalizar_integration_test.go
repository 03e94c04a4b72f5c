package models_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"bitbucket.org/dpalog/ativos_backend/config"
	"bitbucket.org/dpalog/ativos_backend/models"
	"bitbucket.org/dpalog/ativos_backend/utils"
)

// Exercises the one-shot finalization guard against a real MySQL instance.
// Point DB_* env vars at a disposable database before running.
func TestFinalizarInventarioIdempotencyGuard(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires MySQL via DB_* env vars)")
	}

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	models.MigrateTable()
	db := config.GetDB()

	for _, table := range []string{
		"ativo_contagemlojas", "ativo_inventario_hb", "ativo_dadostransito",
		"ativo_fornecedores", "ativo_resultado_inv",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to reset %s: %v", table, err)
		}
	}

	seedCount := func(table string, cod int, setor string, hb623 int) {
		row := models.CountRecord{CodInventario: cod, Setor: setor, Data: time.Now()}
		row.SetQuantity(models.AssetHB623, hb623)
		if err := db.Table(table).Create(&row).Error; err != nil {
			t.Fatalf("seed %s: %v", table, err)
		}
	}

	// Cycle 10: 100 across two non-regional stores, ES contagem 10.
	seedCount("ativo_inventario_hb", 10, "CD GERAL", 0)
	seedCount("ativo_contagemlojas", 10, "LOJA A", 60)
	seedCount("ativo_contagemlojas", 10, "LOJA B", 40)
	seedCount("ativo_contagemlojas", 10, "CD ES", 10)
	transito := models.DadoTransito{
		CodInventario: 10, Setor: "CD ES", Data: time.Now(),
		TipoCaixa: "CAIXA HB 623", Quantidade: 5,
	}
	if err := db.Create(&transito).Error; err != nil {
		t.Fatalf("seed transito: %v", err)
	}

	// Prior result for cycle 9 with HB623=100; the new run should diff +15.
	prevTotal := 100
	prev := models.ResultadoInventario{
		CodInventario: 9,
		Mode:          models.ModeInventarioHB,
		CreatedAt:     time.Now().UTC(),
		CaixaHb623:    &prevTotal,
	}
	if err := db.Create(&prev).Error; err != nil {
		t.Fatalf("seed previous result: %v", err)
	}

	result, breakdown, err := models.FinalizarInventario(ctx, models.ModeInventarioHB)
	if err != nil {
		t.Fatalf("first finalize failed: %v", err)
	}
	if result.CodInventario != 10 {
		t.Errorf("cod = %d, want 10", result.CodInventario)
	}
	if result.CaixaHb623 == nil || *result.CaixaHb623 != 115 {
		t.Errorf("caixa_hb_623 = %v, want 115", result.CaixaHb623)
	}
	if result.DiffCaixaHb623 == nil || *result.DiffCaixaHb623 != 15 {
		t.Errorf("diff_caixa_hb_623 = %v, want 15", result.DiffCaixaHb623)
	}
	if breakdown.TotalFinal.Valor1 != 115 {
		t.Errorf("breakdown grand total = %d, want 115", breakdown.TotalFinal.Valor1)
	}

	// Second call must fail without inserting a second row.
	_, _, err = models.FinalizarInventario(ctx, models.ModeInventarioHB)
	if !errors.Is(err, utils.ErrorAlreadyFinalized) {
		t.Fatalf("second finalize err = %v, want ErrorAlreadyFinalized", err)
	}

	var count int64
	if err := db.Model(&models.ResultadoInventario{}).
		Where("cod_inventario = ? AND mode = ?", 10, models.ModeInventarioHB).
		Count(&count).Error; err != nil {
		t.Fatalf("count results: %v", err)
	}
	if count != 1 {
		t.Errorf("result rows for (10, HB) = %d, want exactly 1", count)
	}

	// The HNT mode of the same cycle is still finalizable, with null diffs
	// since no prior HNT result exists.
	hntResult, _, err := models.FinalizarInventario(ctx, models.ModeInventarioHNT)
	if err != nil {
		t.Fatalf("HNT finalize failed: %v", err)
	}
	if hntResult.DiffCaixaHntG != nil {
		t.Errorf("HNT diff should be null without a prior HNT result, got %v", *hntResult.DiffCaixaHntG)
	}
}
