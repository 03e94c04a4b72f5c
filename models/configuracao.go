package models

import (
	"context"
	"errors"
	"fmt"

	"bitbucket.org/dpalog/ativos_backend/config"
)

// Maintenance surface: dump and patch rows of the raw data tables. Writes go
// through update-by-match only; there is no row delete.

// ConfigTables lists the tables exposed through the maintenance surface. The
// result tables stay out on purpose: finalization rows are immutable.
func ConfigTables() []SourceTable {
	return []SourceTable{
		SourceContagemLojas,
		SourceDadosTransito,
		SourceInventarioCD,
		SourceDadosCadastral,
	}
}

func ParseConfigTable(s string) (SourceTable, error) {
	for _, t := range ConfigTables() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w; permitidas: %v", ErrInvalidTable, ConfigTables())
}

// DumpTable returns every row of an allow-listed table as raw column maps.
func DumpTable(ctx context.Context, table SourceTable) ([]map[string]interface{}, error) {
	db := config.GetDB()
	var rows []map[string]interface{}
	err := db.WithContext(ctx).
		Table(string(table)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateTableByMatch applies column updates to every row of an allow-listed
// table matching the filter. Both maps must be non-empty; an empty match would
// rewrite the whole table.
func UpdateTableByMatch(ctx context.Context, table SourceTable, match map[string]interface{}, data map[string]interface{}) (int64, error) {
	if len(match) == 0 {
		return 0, errors.New("parâmetro 'match' é obrigatório")
	}
	if len(data) == 0 {
		return 0, errors.New("parâmetro 'data' é obrigatório")
	}
	db := config.GetDB()
	result := db.WithContext(ctx).
		Table(string(table)).
		Where(match).
		Updates(data)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
