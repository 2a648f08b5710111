package importer

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/GrainArc/InfraoMap/exporter"
	"github.com/GrainArc/InfraoMap/mappings"
	"github.com/beevik/etree"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The insert statements call the PostGIS geometry constructors. The test
// driver registers them as passthroughs so the statements run unchanged
// against sqlite.
const geometryDriver = "sqlite3_with_geometry"

func init() {
	passthrough := func(b []byte) []byte { return b }
	sql.Register(geometryDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if err := conn.RegisterFunc("ST_GeomFromEWKB", passthrough, true); err != nil {
				return err
			}
			return conn.RegisterFunc("ST_Force3D", passthrough, true)
		},
	})
}

// openAreaDB attaches every schema the area passes touch. The four area
// tables get their full column set so whole passes can insert into them;
// every member table gets its identifier and back-reference columns so the
// containment indexes can join against it.
func openAreaDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(&sqlite.Dialector{DriverName: geometryDriver, DSN: ":memory:"}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or the attached databases vanish between statements
	sqlDB.SetMaxOpenConns(1)

	columns := make(map[string]map[string]bool)
	ensure := func(e mappings.EntityType) map[string]bool {
		key := e.Schema + "." + e.Table
		if columns[key] == nil {
			columns[key] = make(map[string]bool)
		}
		return columns[key]
	}
	schemas := make(map[string]bool)
	for _, table := range mappings.AreaIndexTables {
		area := mappings.ByTable[table]
		schemas[area.Schema] = true
		cols := ensure(area)
		for _, col := range area.Columns() {
			cols[col] = true
		}
		for _, member := range mappings.MemberTables(table) {
			schemas[member.Schema] = true
			cols := ensure(member)
			cols["identifier"] = true
			cols["fid_"+area.Table] = true
		}
	}
	for schema := range schemas {
		require.NoError(t, db.Exec(fmt.Sprintf("ATTACH DATABASE ':memory:' AS %s", schema)).Error)
	}
	for key, cols := range columns {
		names := make([]string, 0, len(cols))
		for col := range cols {
			names = append(names, col)
		}
		sort.Strings(names)
		stmt := fmt.Sprintf("CREATE TABLE %s (fid INTEGER PRIMARY KEY AUTOINCREMENT, %s)", key, strings.Join(names, ", "))
		require.NoError(t, db.Exec(stmt).Error, stmt)
	}
	return db
}

const streetAreaDocument = `<?xml version="1.0" encoding="UTF-8"?>
<infrao:InfraoKohteet xmlns:infrao="www.infra-o.fi/infrao" xmlns:gml="http://www.opengis.net/gml/3.2" xmlns:xlink="http://www.w3.org/1999/xlink">
	<gml:featureMembers>
		<infrao:Katualue>
			<infrao:yksilointitieto>K1</infrao:yksilointitieto>
			<infrao:nimi>Esimerkkikatu</infrao:nimi>
		</infrao:Katualue>
		<infrao:KatualueenOsa>
			<infrao:yksilointitieto>KO1</infrao:yksilointitieto>
			<infrao:omistaja>Kaupunki</infrao:omistaja>
			<infrao:kuuluuKatualueeseen xlink:type="simple" xlink:href="#Katualue.K1"/>
		</infrao:KatualueenOsa>
	</gml:featureMembers>
</infrao:InfraoKohteet>`

func TestRunImportsAreasBeforeParts(t *testing.T) {
	db := openAreaDB(t)
	count, err := Run(db, readDocument(t, streetAreaDocument))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var partRef, areaFid sql.NullInt64
	row := db.Raw(`SELECT ko.fid_katualue, k.fid FROM katualue.katualueenosa ko, katualue.katualue k WHERE ko.identifier = 'KO1' AND k.identifier = 'K1'`).Row()
	require.NoError(t, row.Scan(&partRef, &areaFid))
	require.True(t, partRef.Valid)
	assert.Equal(t, areaFid.Int64, partRef.Int64)
}

func TestPartPassBeforeAreaPassLeavesReferenceNull(t *testing.T) {
	db := openAreaDB(t)
	doc := readDocument(t, streetAreaDocument)

	ex := &Extractor{Enums: NewEnumResolver(db)}
	var err error
	ex.Areas, err = LoadAreaIndex(db)
	require.NoError(t, err)

	// parts first: the index above was loaded before any area row existed,
	// so the kuuluu reference cannot resolve
	_, err = runPass(db, doc, ex, mappings.AreaPartTables)
	require.NoError(t, err)
	_, err = runPass(db, doc, ex, mappings.AreaTables)
	require.NoError(t, err)

	var partRef sql.NullInt64
	row := db.Raw(`SELECT fid_katualue FROM katualue.katualueenosa WHERE identifier = 'KO1'`).Row()
	require.NoError(t, row.Scan(&partRef))
	assert.False(t, partRef.Valid)
}

func TestLoadAreaIndexReadsEveryAreaTable(t *testing.T) {
	db := openAreaDB(t)
	require.NoError(t, db.Exec(`INSERT INTO katualue.katualue (identifier) VALUES ('K1')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO viheralue.viheralue (identifier) VALUES ('V1')`).Error)

	idx, err := LoadAreaIndex(db)
	require.NoError(t, err)

	fid, ok := idx.Fid("katualue", "K1")
	require.True(t, ok)
	assert.Equal(t, int64(1), fid)
	_, ok = idx.Fid("viheralue", "V1")
	assert.True(t, ok)
	_, ok = idx.Fid("katualue", "V1")
	assert.False(t, ok)
	_, ok = idx.Fid("katualueenosa", "K1")
	assert.False(t, ok)
}

// The containment written by an import must come back out as cross-refs:
// the part points at its street area and the street area lists the part.
func TestImportedContainmentFeedsExportIndex(t *testing.T) {
	db := openAreaDB(t)
	_, err := Run(db, readDocument(t, streetAreaDocument))
	require.NoError(t, err)

	ix, err := exporter.LoadIndex(db)
	require.NoError(t, err)

	ident, ok := ix.Container("katualue", "katualueenosa", "KO1")
	require.True(t, ok)
	assert.Equal(t, "K1", ident)
	assert.Equal(t, []string{"KO1"}, ix.Members("K1", "katualueenosa"))

	b := &exporter.Builder{Index: ix}
	doc := etree.NewDocument()
	members := doc.CreateElement("infrao:InfraoKohteet").CreateElement("gml:featureMembers")
	b.BuildFeature(members, mappings.KatualueenOsa, exporter.Feature{
		Fid:    1,
		Values: map[string]any{"identifier": "KO1", "omistaja": "Kaupunki"},
	})
	b.BuildFeature(members, mappings.Katualue, exporter.Feature{
		Fid:    1,
		Values: map[string]any{"identifier": "K1", "nimi": "Esimerkkikatu"},
	})

	ref := members.FindElement("infrao:KatualueenOsa/infrao:kuuluuKatualueeseen")
	require.NotNil(t, ref)
	assert.Equal(t, "#Katualue.K1", ref.SelectAttrValue("xlink:href", ""))
	back := members.FindElement("infrao:Katualue/infrao:sisaltaaKatualueenOsan")
	require.NotNil(t, back)
	assert.Equal(t, "#KatualueenOsa.KO1", back.SelectAttrValue("xlink:href", ""))
}
