package utils_test

import (
	"testing"

	"bitbucket.org/dpalog/ativos_backend/utils"
)

func TestNormalizeNameStripsAccentsAndUppercases(t *testing.T) {
	cases := map[string]string{
		"São Paulo":      "SAO PAULO",
		"cd pavuna":      "CD PAVUNA",
		"Vitória":        "VITORIA",
		"LOJA JARDIM":    "LOJA JARDIM",
		"Niterói Centro": "NITEROI CENTRO",
		"":               "",
	}
	for in, want := range cases {
		if got := utils.NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{"São Paulo", "Brasília", "CD ES", "açaí ôç"}
	for _, in := range inputs {
		once := utils.NormalizeName(in)
		twice := utils.NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
