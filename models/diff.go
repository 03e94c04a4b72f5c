package models

// NoBaselineDiff is the reserved sentinel meaning "no prior cycle to compare
// against". It is not a numeric delta; display layers must render it as
// missing data, never as arithmetic.
const NoBaselineDiff = 9999

// DiffByAsset computes current − previous per asset type. Negative means
// shortage, positive surplus, zero an exact match.
func DiffByAsset(current, previous map[AssetType]int) map[AssetType]int {
	diff := make(map[AssetType]int, len(current))
	for _, a := range AllAssetTypes() {
		diff[a] = current[a] - previous[a]
	}
	return diff
}

// NoBaselineByAsset fills every asset type with the sentinel.
func NoBaselineByAsset() map[AssetType]int {
	diff := make(map[AssetType]int, 6)
	for _, a := range AllAssetTypes() {
		diff[a] = NoBaselineDiff
	}
	return diff
}

// DiffTransito computes current − previous per (setor, tipo_caixa) over the
// expected sector/type grid. Missing cells count as zero on either side.
func DiffTransito(current, previous map[string]map[string]int, setores []string, tipos []string) map[string]map[string]int {
	diff := make(map[string]map[string]int, len(setores))
	for _, setor := range setores {
		diff[setor] = make(map[string]int, len(tipos))
		for _, tipo := range tipos {
			diff[setor][tipo] = current[setor][tipo] - previous[setor][tipo]
		}
	}
	return diff
}

// NoBaselineTransito fills the expected transit grid with the sentinel.
func NoBaselineTransito(setores []string, tipos []string) map[string]map[string]int {
	diff := make(map[string]map[string]int, len(setores))
	for _, setor := range setores {
		diff[setor] = make(map[string]int, len(tipos))
		for _, tipo := range tipos {
			diff[setor][tipo] = NoBaselineDiff
		}
	}
	return diff
}
