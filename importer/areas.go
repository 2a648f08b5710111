package importer

import (
	"fmt"

	"github.com/GrainArc/InfraoMap/mappings"
	"gorm.io/gorm"
)

// AreaIndex maps natural identifiers of area features to their generated
// primary keys.
type AreaIndex interface {
	Fid(table string, identifier string) (int64, bool)
}

type areaIndex struct {
	fids map[string]map[string]int64
}

func (a *areaIndex) Fid(table string, identifier string) (int64, bool) {
	codes, ok := a.fids[table]
	if !ok {
		return 0, false
	}
	fid, ok := codes[identifier]
	return fid, ok
}

type areaRow struct {
	Fid        int64
	Identifier string
}

// LoadAreaIndex reads fid and identifier from every area table. It runs
// again after each import pass that inserts area features, so later passes
// see the generated keys.
func LoadAreaIndex(db *gorm.DB) (AreaIndex, error) {
	idx := &areaIndex{fids: make(map[string]map[string]int64)}
	for _, table := range mappings.AreaIndexTables {
		e, ok := mappings.ByTable[table]
		if !ok {
			continue
		}
		var rows []areaRow
		sql := fmt.Sprintf("SELECT fid, identifier FROM %s.%s", e.Schema, e.Table)
		if err := db.Raw(sql).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("loading area identifiers from %s.%s: %w", e.Schema, e.Table, err)
		}
		codes := make(map[string]int64, len(rows))
		for _, row := range rows {
			codes[row.Identifier] = row.Fid
		}
		idx.fids[table] = codes
	}
	return idx, nil
}
