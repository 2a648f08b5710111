package exporter

import (
	"fmt"
	"strings"

	"github.com/GrainArc/InfraoMap/mappings"
	"gorm.io/gorm"
)

// Feature is one fetched row: geometry columns hold GML strings, cid_*
// columns hold their resolved labels.
type Feature struct {
	Fid     int64
	Values  map[string]any
	HasMeta bool
}

// legacyNullToken is the placeholder older database revisions stored in
// place of null text values; it is read as null and never written back.
const legacyNullToken = "Tyhjä"

// fetchSQL builds the per-table SELECT. Geometry columns come back as GML
// through ST_AsGML and enumeration keys come back as labels through inner
// joins on their koodistot tables.
func fetchSQL(e mappings.EntityType) string {
	selects := []string{fmt.Sprintf("%s.fid AS fid", e.Table)}
	var joins []string
	seen := map[string]bool{"fid": true}
	for _, m := range e.Tags {
		if m.Column == "" || seen[m.Column] {
			continue
		}
		seen[m.Column] = true
		switch {
		case m.IsGeom():
			selects = append(selects, fmt.Sprintf("ST_AsGML(3, %s.%s, options=>4) AS %s", e.Table, m.Column, m.Column))
		case m.Kind == mappings.KindEnum, m.Kind == mappings.KindOrdinalCreation, m.Kind == mappings.KindOrdinalUncertainty:
			selects = append(selects, fmt.Sprintf("%s.selite AS %s", m.Ref, m.Column))
			joins = append(joins, fmt.Sprintf("INNER JOIN koodistot.%s ON %s.%s = %s.cid", m.Ref, e.Table, m.Column, m.Ref))
		default:
			selects = append(selects, fmt.Sprintf("%s.%s AS %s", e.Table, m.Column, m.Column))
		}
	}
	sql := fmt.Sprintf("SELECT %s FROM %s.%s", strings.Join(selects, ", "), e.Schema, e.Table)
	if len(joins) > 0 {
		sql += " " + strings.Join(joins, " ")
	}
	return sql
}

// FetchFeatures reads every row of one entity table and derives the
// metadata flag from the meta_* columns.
func FetchFeatures(db *gorm.DB, e mappings.EntityType) ([]Feature, error) {
	rows, err := db.Raw(fetchSQL(e)).Rows()
	if err != nil {
		return nil, fmt.Errorf("fetching %s.%s: %w", e.Schema, e.Table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var features []Feature
	for rows.Next() {
		cells := make([]any, len(columns))
		refs := make([]any, len(columns))
		for i := range cells {
			refs[i] = &cells[i]
		}
		if err := rows.Scan(refs...); err != nil {
			return nil, fmt.Errorf("scanning %s.%s: %w", e.Schema, e.Table, err)
		}

		f := Feature{Values: make(map[string]any, len(columns))}
		for i, col := range columns {
			value := normalize(cells[i])
			if col == "fid" {
				if fid, ok := value.(int64); ok {
					f.Fid = fid
				}
				continue
			}
			f.Values[col] = value
			if value != nil && strings.HasPrefix(col, "meta_") {
				f.HasMeta = true
			}
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

func normalize(v any) any {
	switch value := v.(type) {
	case []byte:
		s := string(value)
		if s == legacyNullToken {
			return nil
		}
		return s
	case string:
		if value == legacyNullToken {
			return nil
		}
		return value
	}
	return v
}
