package models

import (
	"log"

	"bitbucket.org/dpalog/ativos_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	// The two count-like tables share CountRecord; AutoMigrate needs a scoped
	// call per table since the struct carries no TableName.
	for _, source := range []SourceTable{SourceContagemLojas, SourceInventarioCD} {
		if err := db.Table(string(source)).AutoMigrate(&CountRecord{}); err != nil {
			log.Fatal(err)
		}
	}

	err := db.AutoMigrate(
		&DadoTransito{}, &FornecedorRecord{},
		&ResultadoInventario{},
		&Inconsistencia{},
		&DadoCadastral{},
		&User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
