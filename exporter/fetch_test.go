package exporter

import (
	"strings"
	"testing"

	"github.com/GrainArc/InfraoMap/mappings"
	"github.com/stretchr/testify/assert"
)

func TestFetchSQLEquipment(t *testing.T) {
	sql := fetchSQL(mappings.Jate)
	assert.True(t, strings.HasPrefix(sql, "SELECT jate.fid AS fid"))
	assert.Contains(t, sql, "ST_AsGML(3, jate.geom_point, options=>4) AS geom_point")
	assert.Contains(t, sql, "jatetyyppi.selite AS cid_jatetyyppi")
	assert.Contains(t, sql, "INNER JOIN koodistot.jatetyyppi ON jate.cid_jatetyyppi = jatetyyppi.cid")
	assert.Contains(t, sql, "INNER JOIN koodistot.luontitapatyyppi ON jate.cid_luontitapatyyppi = luontitapatyyppi.cid")
	assert.Contains(t, sql, "FROM varusteet.jate")
}

func TestFetchSQLWithoutGeometry(t *testing.T) {
	sql := fetchSQL(mappings.Katualue)
	assert.NotContains(t, sql, "ST_AsGML")
	assert.NotContains(t, sql, "INNER JOIN koodistot")
	assert.Contains(t, sql, "katualue.nimi AS nimi")
	assert.Contains(t, sql, "katualue.identifier AS identifier")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "teksti", normalize([]byte("teksti")))
	assert.Nil(t, normalize([]byte("Tyhjä")))
	assert.Nil(t, normalize("Tyhjä"))
	assert.Equal(t, int64(3), normalize(int64(3)))
	assert.Nil(t, normalize(nil))
}
