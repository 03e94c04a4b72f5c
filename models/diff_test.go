package models_test

import (
	"testing"

	"bitbucket.org/dpalog/ativos_backend/models"
)

func TestDiffByAssetSigns(t *testing.T) {
	current := map[models.AssetType]int{
		models.AssetHB623: 10,
		models.AssetHB618: 5,
		models.AssetHNTG:  3,
	}
	previous := map[models.AssetType]int{
		models.AssetHB623: 7,
		models.AssetHB618: 9,
		models.AssetHNTG:  3,
	}
	diff := models.DiffByAsset(current, previous)
	if diff[models.AssetHB623] != 3 {
		t.Errorf("surplus = %d, want 3", diff[models.AssetHB623])
	}
	if diff[models.AssetHB618] != -4 {
		t.Errorf("shortage = %d, want -4", diff[models.AssetHB618])
	}
	if diff[models.AssetHNTG] != 0 {
		t.Errorf("exact match = %d, want 0", diff[models.AssetHNTG])
	}
	// Assets missing on both sides diff to zero, not to the sentinel.
	if diff[models.AssetBin] != 0 {
		t.Errorf("missing asset = %d, want 0", diff[models.AssetBin])
	}
}

func TestNoBaselineByAssetFillsSentinel(t *testing.T) {
	diff := models.NoBaselineByAsset()
	if len(diff) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(diff))
	}
	for a, v := range diff {
		if v != models.NoBaselineDiff {
			t.Errorf("%s = %d, want sentinel %d", a, v, models.NoBaselineDiff)
		}
	}
}

func TestDiffTransitoMissingCellsCountAsZero(t *testing.T) {
	setores := []string{"CD SP", "CD ES"}
	tipos := []string{"CAIXA HB 623", "CAIXA CHOCOLATE"}

	current := map[string]map[string]int{
		"CD SP": {"CAIXA HB 623": 10},
	}
	previous := map[string]map[string]int{
		"CD SP": {"CAIXA HB 623": 4, "CAIXA CHOCOLATE": 2},
		"CD ES": {"CAIXA HB 623": 1},
	}
	diff := models.DiffTransito(current, previous, setores, tipos)
	if diff["CD SP"]["CAIXA HB 623"] != 6 {
		t.Errorf("CD SP HB623 = %d, want 6", diff["CD SP"]["CAIXA HB 623"])
	}
	if diff["CD SP"]["CAIXA CHOCOLATE"] != -2 {
		t.Errorf("CD SP CHOCOLATE = %d, want -2", diff["CD SP"]["CAIXA CHOCOLATE"])
	}
	if diff["CD ES"]["CAIXA HB 623"] != -1 {
		t.Errorf("CD ES HB623 = %d, want -1", diff["CD ES"]["CAIXA HB 623"])
	}
	if diff["CD ES"]["CAIXA CHOCOLATE"] != 0 {
		t.Errorf("empty cell on both sides = %d, want 0", diff["CD ES"]["CAIXA CHOCOLATE"])
	}
}

func TestNoBaselineTransitoFillsGrid(t *testing.T) {
	setores := []string{"CD SP", "CD ES"}
	tipos := []string{"CAIXA HB 623", "CAIXA HB 618"}
	diff := models.NoBaselineTransito(setores, tipos)
	for _, setor := range setores {
		for _, tipo := range tipos {
			if diff[setor][tipo] != models.NoBaselineDiff {
				t.Errorf("%s/%s = %d, want sentinel", setor, tipo, diff[setor][tipo])
			}
		}
	}
}
