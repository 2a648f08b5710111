package exporter

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/GrainArc/InfraoMap/mappings"
	"gorm.io/gorm"
)

// Decree is one linkit.paatos row with its attachments resolved.
type Decree struct {
	Kuvaus      any
	Paivamaara  any
	Attachments []map[string]any
}

// PlanLink is one linkit.suunnitelmalinkki row with its attachment row.
type PlanLink struct {
	SuunnitelmakohdeID any
	Attachment         map[string]any
}

func queryMaps(db *gorm.DB, sql string, args ...any) ([]map[string]any, error) {
	rows, err := db.Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	for rows.Next() {
		cells := make([]any, len(columns))
		refs := make([]any, len(columns))
		for i := range cells {
			refs[i] = &cells[i]
		}
		if err := rows.Scan(refs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = normalize(cells[i])
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func toInt64(v any) (int64, bool) {
	switch value := v.(type) {
	case int64:
		return value, true
	case int32:
		return int64(value), true
	case int:
		return int64(value), true
	case float64:
		return int64(value), true
	case string:
		n, err := strconv.ParseInt(value, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// FetchDecrees loads every decree keyed by the street area part it
// belongs to, attachments grouped in.
func FetchDecrees(db *gorm.DB) (map[int64][]Decree, error) {
	attachmentRows, err := queryMaps(db,
		"SELECT kuvaus, linkkiliitteeseen, muokkaushetki, versionumero, id_paatos FROM linkit.liite")
	if err != nil {
		return nil, fmt.Errorf("fetching attachments: %w", err)
	}
	byDecree := make(map[int64][]map[string]any)
	for _, row := range attachmentRows {
		id, ok := toInt64(row["id_paatos"])
		if !ok {
			continue
		}
		delete(row, "id_paatos")
		byDecree[id] = append(byDecree[id], row)
	}

	decreeRows, err := queryMaps(db,
		"SELECT id, kuvaus, paivamaarapvm, fid_katualueenosa FROM linkit.paatos")
	if err != nil {
		return nil, fmt.Errorf("fetching decrees: %w", err)
	}
	out := make(map[int64][]Decree)
	for _, row := range decreeRows {
		fid, ok := toInt64(row["fid_katualueenosa"])
		if !ok {
			continue
		}
		id, _ := toInt64(row["id"])
		out[fid] = append(out[fid], Decree{
			Kuvaus:      row["kuvaus"],
			Paivamaara:  row["paivamaarapvm"],
			Attachments: byDecree[id],
		})
	}
	return out, nil
}

// FetchPlanLinks loads plan links per target table keyed by the target
// row fid. A table whose discriminator column is missing is skipped.
func FetchPlanLinks(db *gorm.DB) map[string]map[int64][]PlanLink {
	out := make(map[string]map[int64][]PlanLink)
	for _, table := range mappings.PlanLinkTables {
		sql := fmt.Sprintf(
			"SELECT sl.suunnitelmakohdeid, sl.fid_%s, l.kuvaus, l.linkkiliitteeseen, l.muokkaushetki, l.versionumero FROM linkit.suunnitelmalinkki sl JOIN linkit.liite l ON sl.fid_liite = l.fid",
			table)
		rows, err := queryMaps(db, sql)
		if err != nil {
			log.Printf("plan links for %s unavailable: %v", table, err)
			continue
		}
		for _, row := range rows {
			fid, ok := toInt64(row["fid_"+table])
			if !ok {
				continue
			}
			if out[table] == nil {
				out[table] = make(map[int64][]PlanLink)
			}
			out[table][fid] = append(out[table][fid], PlanLink{
				SuunnitelmakohdeID: row["suunnitelmakohdeid"],
				Attachment: map[string]any{
					"kuvaus":            row["kuvaus"],
					"linkkiliitteeseen": row["linkkiliitteeseen"],
					"muokkaushetki":     row["muokkaushetki"],
					"versionumero":      row["versionumero"],
				},
			})
		}
	}
	return out
}

// FetchAddress reads the address row one feature points at, geometry
// columns as GML.
func FetchAddress(db *gorm.DB, e mappings.EntityType, fid any) (map[string]any, error) {
	var selects []string
	for _, m := range mappings.OsoiteTags {
		if m.IsGeom() {
			selects = append(selects, fmt.Sprintf("ST_AsGML(3, os.%s, options=>4) AS %s", m.Column, m.Column))
		} else {
			selects = append(selects, fmt.Sprintf("os.%s AS %s", m.Column, m.Column))
		}
	}
	sql := fmt.Sprintf(
		"SELECT %s FROM osoite.osoite AS os JOIN %s.%s tb ON tb.fid_osoite = os.fid WHERE tb.fid_osoite = ?",
		strings.Join(selects, ", "), e.Schema, e.Table)
	rows, err := queryMaps(db, sql, fid)
	if err != nil {
		return nil, fmt.Errorf("fetching address for %s.%s: %w", e.Schema, e.Table, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
