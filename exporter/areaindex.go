package exporter

import (
	"fmt"

	"github.com/GrainArc/InfraoMap/mappings"
	"gorm.io/gorm"
)

// Index holds area containment both ways: which identifiers each area
// contains per member table, and which area each member sits in.
type Index struct {
	members    map[string][]string
	containers map[string]string
}

func memberKey(areaIdent, memberTable string) string {
	return areaIdent + "|" + memberTable
}

func containerKey(areaTable, memberTable, memberIdent string) string {
	return areaTable + "|" + memberTable + "|" + memberIdent
}

// Members returns the member identifiers of one area for one member table.
func (ix *Index) Members(areaIdent, memberTable string) []string {
	return ix.members[memberKey(areaIdent, memberTable)]
}

// Container returns the identifier of the area a member belongs to.
func (ix *Index) Container(areaTable, memberTable, memberIdent string) (string, bool) {
	ident, ok := ix.containers[containerKey(areaTable, memberTable, memberIdent)]
	return ident, ok
}

// LoadIndex joins every area table against its member tables on the
// fid_<area> back-reference and records the identifier pairs.
func LoadIndex(db *gorm.DB) (*Index, error) {
	ix := &Index{
		members:    make(map[string][]string),
		containers: make(map[string]string),
	}
	for _, areaTable := range mappings.AreaIndexTables {
		area := mappings.ByTable[areaTable]
		for _, member := range mappings.MemberTables(areaTable) {
			sql := fmt.Sprintf(
				"SELECT a.identifier AS area_identifier, m.identifier AS member_identifier FROM %s.%s a JOIN %s.%s m ON m.fid_%s = a.fid",
				area.Schema, area.Table, member.Schema, member.Table, area.Table)
			rows, err := db.Raw(sql).Rows()
			if err != nil {
				return nil, fmt.Errorf("indexing %s members of %s: %w", member.Table, areaTable, err)
			}
			for rows.Next() {
				var areaIdent, memberIdent string
				if err := rows.Scan(&areaIdent, &memberIdent); err != nil {
					rows.Close()
					return nil, err
				}
				key := memberKey(areaIdent, member.Table)
				ix.members[key] = append(ix.members[key], memberIdent)
				ix.containers[containerKey(areaTable, member.Table, memberIdent)] = areaIdent
			}
			if err := rows.Err(); err != nil {
				rows.Close()
				return nil, err
			}
			rows.Close()
		}
	}
	return ix, nil
}
