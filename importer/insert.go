package importer

import (
	"fmt"
	"strings"

	"github.com/GrainArc/InfraoMap/mappings"
	"gorm.io/gorm"
)

// BuildInsert assembles one multi-row INSERT for an entity type. Geometry
// parameters arrive as EWKB and are forced to three dimensions on the way
// in; everything else binds as-is.
func BuildInsert(e mappings.EntityType, records []Record) (string, []any) {
	columns := e.Columns()
	geoms := make(map[string]bool)
	for _, m := range e.GeomMappings() {
		geoms[m.Column] = true
	}

	cells := make([]string, len(columns))
	for i, col := range columns {
		if geoms[col] {
			cells[i] = "ST_Force3D(ST_GeomFromEWKB(?))"
		} else {
			cells[i] = "?"
		}
	}
	rowTemplate := "(" + strings.Join(cells, ", ") + ")"

	rows := make([]string, len(records))
	args := make([]any, 0, len(records)*len(columns))
	for i, rec := range records {
		rows[i] = rowTemplate
		for _, col := range columns {
			args = append(args, rec[col])
		}
	}

	sql := fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES %s",
		e.Schema, e.Table, strings.Join(columns, ", "), strings.Join(rows, ", "))
	return sql, args
}

// BatchInsert writes every record of one pass in a single statement.
func BatchInsert(db *gorm.DB, e mappings.EntityType, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	sql, args := BuildInsert(e, records)
	if err := db.Exec(sql, args...).Error; err != nil {
		return fmt.Errorf("inserting into %s.%s: %w", e.Schema, e.Table, err)
	}
	return nil
}
