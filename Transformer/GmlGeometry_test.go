package Transformer

import (
	"encoding/binary"
	"testing"

	"github.com/beevik/etree"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, s string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(s))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

func TestParsePoint(t *testing.T) {
	el := parseFragment(t, `<gml:Point srsName="EPSG:3067"><gml:pos>385111.23 6672254.1</gml:pos></gml:Point>`)
	geom, err := ParseGML(el)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{385111.23, 6672254.1}, geom)
}

func TestParseLineStringDropsZ(t *testing.T) {
	el := parseFragment(t, `<gml:LineString srsName="EPSG:3067"><gml:posList srsDimension="3">0 0 10 1 1 20 2 2 30</gml:posList></gml:LineString>`)
	geom, err := ParseGML(el)
	require.NoError(t, err)
	ls, ok := geom.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{0, 0}, {1, 1}, {2, 2}}, ls)
}

func TestParsePolygonWithHole(t *testing.T) {
	el := parseFragment(t, `<gml:Polygon srsName="EPSG:3067">
		<gml:exterior><gml:LinearRing><gml:posList>0 0 4 0 4 4 0 4 0 0</gml:posList></gml:LinearRing></gml:exterior>
		<gml:interior><gml:LinearRing><gml:posList>1 1 2 1 2 2 1 2 1 1</gml:posList></gml:LinearRing></gml:interior>
	</gml:Polygon>`)
	geom, err := ParseGML(el)
	require.NoError(t, err)
	poly, ok := geom.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 2)
	assert.Len(t, poly[0], 5)
	assert.Len(t, poly[1], 5)
}

func TestParseMultiSurfaceForcedSingle(t *testing.T) {
	el := parseFragment(t, `<gml:MultiSurface srsName="EPSG:3067">
		<gml:surfaceMember><gml:Polygon><gml:exterior><gml:LinearRing><gml:posList>0 0 1 0 1 1 0 0</gml:posList></gml:LinearRing></gml:exterior></gml:Polygon></gml:surfaceMember>
		<gml:surfaceMember><gml:Polygon><gml:exterior><gml:LinearRing><gml:posList>5 5 6 5 6 6 5 5</gml:posList></gml:LinearRing></gml:exterior></gml:Polygon></gml:surfaceMember>
	</gml:MultiSurface>`)
	geom, err := ParseGML(el)
	require.NoError(t, err)
	multi, ok := geom.(orb.MultiPolygon)
	require.True(t, ok)
	require.Len(t, multi, 2)

	single := ForceSingle(geom)
	poly, ok := single.(orb.Polygon)
	require.True(t, ok)
	assert.Equal(t, orb.Point{0, 0}, orb.Point(poly[0][0]))
}

func TestForceSingleCollectionPrefersLine(t *testing.T) {
	coll := orb.Collection{orb.Point{1, 1}, orb.LineString{{0, 0}, {1, 1}}}
	single := ForceSingle(coll)
	_, ok := single.(orb.LineString)
	assert.True(t, ok)
}

func TestParseUnsupportedElement(t *testing.T) {
	el := parseFragment(t, `<gml:Solid/>`)
	_, err := ParseGML(el)
	assert.Error(t, err)
}

func TestRepairGML(t *testing.T) {
	repaired := RepairGML(`<gml:Point srsName="EPSG:3067"><gml:pos>1 2</gml:pos></gml:Point>`)
	assert.Contains(t, repaired, ` xmlns:gml="http://www.opengis.net/gml/3.2" srsName="EPSG:3067"`)

	doc := etree.NewDocument()
	assert.NoError(t, doc.ReadFromString(repaired))

	plain := `<gml:Point><gml:pos>1 2</gml:pos></gml:Point>`
	assert.Equal(t, plain, RepairGML(plain))
}

func TestGeomKindTag(t *testing.T) {
	assert.Equal(t, "infrao:piste", GeomKindTag(`<gml:Point srsName="EPSG:3067"/>`))
	assert.Equal(t, "infrao:viiva", GeomKindTag(`<gml:LineString srsName="EPSG:3067"/>`))
	assert.Equal(t, "infrao:alue", GeomKindTag(`<gml:Polygon srsName="EPSG:3067"/>`))
	assert.Equal(t, "infrao:alue", GeomKindTag(`<gml:MultiSurface><gml:surfaceMember><gml:Polygon/></gml:surfaceMember></gml:MultiSurface>`))
	assert.Equal(t, "", GeomKindTag(`<gml:Solid/>`))
}

func TestDetectSRS(t *testing.T) {
	assert.Equal(t, "3067", DetectSRS(parseFragment(t, `<gml:Point><gml:pos>1 2</gml:pos></gml:Point>`)))
	assert.Equal(t, "3873", DetectSRS(parseFragment(t, `<gml:Point srsName="urn:ogc:def:crs:EPSG::3873"/>`)))
	assert.Equal(t, "4326", DetectSRS(parseFragment(t, `<gml:Point srsName="urn:ogc:def:crs:EPSG::2393"/>`)))
}

func TestToEWKB(t *testing.T) {
	data, err := ToEWKB(orb.Point{385000, 6672000}, 3067)
	require.NoError(t, err)
	require.Greater(t, len(data), 9)
	// little-endian marker, SRID flag, then the SRID itself
	assert.Equal(t, byte(1), data[0])
	assert.NotZero(t, data[4]&0x20)
	srid := binary.LittleEndian.Uint32(data[5:9])
	assert.Equal(t, uint32(3067), srid)
}
