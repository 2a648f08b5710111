package exporter

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/GrainArc/InfraoMap/mappings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openIndexDB recreates the containment tables under their Postgres schema
// names: every area table plus each member table with its identifier and
// back-reference columns.
func openIndexDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
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
			columns[key] = map[string]bool{"identifier": true}
		}
		return columns[key]
	}
	schemas := make(map[string]bool)
	for _, table := range mappings.AreaIndexTables {
		area := mappings.ByTable[table]
		schemas[area.Schema] = true
		ensure(area)
		for _, member := range mappings.MemberTables(table) {
			schemas[member.Schema] = true
			ensure(member)["fid_"+area.Table] = true
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

func TestLoadIndexBuildsBothDirections(t *testing.T) {
	db := openIndexDB(t)
	seed := []string{
		`INSERT INTO katualue.katualue (fid, identifier) VALUES (1, 'K1')`,
		`INSERT INTO katualue.katualueenosa (fid, identifier, fid_katualue) VALUES (10, 'KO1', 1)`,
		`INSERT INTO varusteet.jate (fid, identifier, fid_katualueenosa) VALUES (100, 'J1', 10)`,
		`INSERT INTO kasvillisuus.puu (fid, identifier, fid_katualueenosa) VALUES (101, 'P1', 10)`,
		`INSERT INTO katualue.keskilinja (fid, identifier, fid_katualueenosa) VALUES (102, 'KL1', 10)`,
		`INSERT INTO viheralue.viheralue (fid, identifier) VALUES (2, 'V1')`,
		`INSERT INTO viheralue.viheralueenosa (fid, identifier, fid_viheralue) VALUES (20, 'VO1', 2)`,
	}
	for _, stmt := range seed {
		require.NoError(t, db.Exec(stmt).Error, stmt)
	}

	ix, err := LoadIndex(db)
	require.NoError(t, err)

	assert.Equal(t, []string{"KO1"}, ix.Members("K1", "katualueenosa"))
	assert.Equal(t, []string{"J1"}, ix.Members("KO1", "jate"))
	assert.Equal(t, []string{"P1"}, ix.Members("KO1", "puu"))
	assert.Equal(t, []string{"KL1"}, ix.Members("KO1", "keskilinja"))
	assert.Equal(t, []string{"VO1"}, ix.Members("V1", "viheralueenosa"))
	assert.Empty(t, ix.Members("K1", "jate"))

	ident, ok := ix.Container("katualue", "katualueenosa", "KO1")
	require.True(t, ok)
	assert.Equal(t, "K1", ident)
	ident, ok = ix.Container("katualueenosa", "puu", "P1")
	require.True(t, ok)
	assert.Equal(t, "KO1", ident)
	ident, ok = ix.Container("viheralue", "viheralueenosa", "VO1")
	require.True(t, ok)
	assert.Equal(t, "V1", ident)

	// J1 hangs off a street area part only
	_, ok = ix.Container("viheralueenosa", "jate", "J1")
	assert.False(t, ok)
}
