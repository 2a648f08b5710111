package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openSchemaDB opens an in-memory database with the schema-qualified side
// tables attached under their Postgres schema names.
func openSchemaDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or the attached databases vanish between statements
	sqlDB.SetMaxOpenConns(1)

	statements := []string{
		`ATTACH DATABASE ':memory:' AS linkit`,
		`ATTACH DATABASE ':memory:' AS katualue`,
		`ATTACH DATABASE ':memory:' AS osoite`,
		`ATTACH DATABASE ':memory:' AS koodistot`,
		`CREATE TABLE linkit.liite (fid INTEGER PRIMARY KEY AUTOINCREMENT, kuvaus TEXT, linkkiliitteeseen TEXT, muokkaushetki TEXT, versionumero INTEGER, id_paatos INTEGER)`,
		`CREATE TABLE linkit.paatos (id INTEGER PRIMARY KEY AUTOINCREMENT, kuvaus TEXT, paivamaarapvm TEXT, fid_katualueenosa INTEGER)`,
		`CREATE TABLE linkit.suunnitelmalinkki (fid INTEGER PRIMARY KEY AUTOINCREMENT, suunnitelmakohdeid TEXT, fid_liite INTEGER, fid_katualueenosa INTEGER, fid_jate INTEGER)`,
		`CREATE TABLE katualue.katualueenosa (fid INTEGER PRIMARY KEY AUTOINCREMENT, identifier TEXT)`,
		`CREATE TABLE osoite.osoite (fid INTEGER PRIMARY KEY AUTOINCREMENT, kunta TEXT, osoitenumero TEXT, osoitenumero2 TEXT, jakokirjain TEXT, jakokirjain2 TEXT, porras TEXT, huoneisto TEXT, huoneistojakokirjain TEXT, postinumero TEXT, postitoimipaikannimi TEXT, viitesijaintialue TEXT, nimitieto TEXT)`,
		`CREATE TABLE koodistot.jatetyyppi (cid INTEGER, selite TEXT)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error, stmt)
	}
	return db
}

func count(t *testing.T, db *gorm.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM "+table).Scan(&n).Error)
	return n
}

func TestEnsureAttachmentDeduplicates(t *testing.T) {
	db := openSchemaDB(t)
	r := NewLinkedResolver(db)

	att := Attachment{
		"kuvaus":            "liitekuvaus",
		"linkkiliitteeseen": "http://example.org/liite.pdf",
		"muokkaushetki":     "2021-05-02T12:30:00",
		"versionumero":      1,
	}
	first, err := r.EnsureAttachment(att)
	require.NoError(t, err)
	second, err := r.EnsureAttachment(att)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, count(t, db, "linkit.liite"))

	other := Attachment{
		"kuvaus":            "toinen",
		"linkkiliitteeseen": "http://example.org/toinen.pdf",
		"muokkaushetki":     "2021-05-03T08:00:00",
		"versionumero":      2,
	}
	third, err := r.EnsureAttachment(other)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
	assert.Equal(t, 2, count(t, db, "linkit.liite"))
}

func TestAddDecreesDeduplicates(t *testing.T) {
	db := openSchemaDB(t)
	require.NoError(t, db.Exec(`INSERT INTO katualue.katualueenosa (identifier) VALUES ('KO1')`).Error)
	r := NewLinkedResolver(db)

	attachment := func(name string) Attachment {
		return Attachment{
			"kuvaus":            name,
			"linkkiliitteeseen": "http://example.org/" + name,
			"muokkaushetki":     "2021-05-02T12:30:00",
			"versionumero":      1,
		}
	}
	decrees := []Decree{
		{Kuvaus: "katusuunnitelma", Paivamaara: "2021-05-01", OwnerIdentifier: "KO1", Attachments: []Attachment{attachment("a.pdf")}},
		{Kuvaus: "katusuunnitelma", Paivamaara: "2021-05-01", OwnerIdentifier: "KO1", Attachments: []Attachment{attachment("b.pdf")}},
	}
	require.NoError(t, r.AddDecrees(decrees))

	assert.Equal(t, 1, count(t, db, "linkit.paatos"))
	// both attachments hang off the one decree
	var n int
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM linkit.liite WHERE id_paatos = (SELECT id FROM linkit.paatos)").Scan(&n).Error)
	assert.Equal(t, 2, n)
}

func TestAddPlanLinksIdempotent(t *testing.T) {
	db := openSchemaDB(t)
	require.NoError(t, db.Exec(`INSERT INTO katualue.katualueenosa (identifier) VALUES ('KO1')`).Error)
	r := NewLinkedResolver(db)

	links := []PlanLink{{
		SuunnitelmakohdeID: "S1",
		FidLiite:           int64(1),
		Table:              "katualueenosa",
		OwnerIdentifier:    "KO1",
	}}
	require.NoError(t, r.AddPlanLinks(links))
	require.NoError(t, r.AddPlanLinks(links))
	assert.Equal(t, 1, count(t, db, "linkit.suunnitelmalinkki"))
}

func TestEnsureAddressMatchesOnCarriedAttributes(t *testing.T) {
	db := openSchemaDB(t)
	r := NewLinkedResolver(db)

	values := map[string]any{"kunta": "Helsinki", "postinumero": "00100"}
	first, err := r.EnsureAddress(values)
	require.NoError(t, err)
	second, err := r.EnsureAddress(values)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, count(t, db, "osoite.osoite"))

	third, err := r.EnsureAddress(map[string]any{"kunta": "Espoo", "postinumero": "02100"})
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	_, err = r.EnsureAddress(map[string]any{})
	assert.Error(t, err)
}

func TestEnumResolverLoadsEachColumnOnce(t *testing.T) {
	db := openSchemaDB(t)
	require.NoError(t, db.Exec(`INSERT INTO koodistot.jatetyyppi (cid, selite) VALUES (5, 'sekajäte'), (6, 'biojäte')`).Error)

	r := NewEnumResolver(db)
	assert.Equal(t, 5, r.Resolve("cid_jatetyyppi", "jatetyyppi", "sekajäte"))
	assert.Equal(t, -1, r.Resolve("cid_jatetyyppi", "jatetyyppi", "tuntematon"))

	// the table was memoized on first use; later labels never hit the database
	require.NoError(t, db.Exec(`DELETE FROM koodistot.jatetyyppi`).Error)
	assert.Equal(t, 6, r.Resolve("cid_jatetyyppi", "jatetyyppi", "biojäte"))
}
