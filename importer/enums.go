package importer

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// EnumResolver turns an enumeration label into its koodistot code.
type EnumResolver interface {
	Resolve(column string, table string, label string) int
}

type enumRow struct {
	Selite string
	Cid    int
}

// dbEnumResolver loads each lookup table at most once per run and keeps it
// in memory for every later label of the same column.
type dbEnumResolver struct {
	db     *gorm.DB
	tables map[string]map[string]int
}

func NewEnumResolver(db *gorm.DB) EnumResolver {
	return &dbEnumResolver{db: db, tables: make(map[string]map[string]int)}
}

func (r *dbEnumResolver) Resolve(column string, table string, label string) int {
	codes, ok := r.tables[column]
	if !ok {
		codes = r.load(table)
		r.tables[column] = codes
	}
	if code, ok := codes[label]; ok {
		return code
	}
	return -1
}

func (r *dbEnumResolver) load(table string) map[string]int {
	var rows []enumRow
	sql := fmt.Sprintf("SELECT selite, cid FROM koodistot.%s", table)
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		log.Printf("Failed to load enumeration table koodistot.%s: %v", table, err)
		return map[string]int{}
	}
	codes := make(map[string]int, len(rows))
	for _, row := range rows {
		codes[row.Selite] = row.Cid
	}
	return codes
}
