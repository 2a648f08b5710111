package Transformer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/GrainArc/InfraoMap/mappings"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// Geometry wrapper tags of the exchange format keyed by the GML type
// keyword found in a fragment.
var GeomKindTags = map[string]string{
	"Point":      "infrao:piste",
	"LineString": "infrao:viiva",
	"Polygon":    "infrao:alue",
}

// GeomKindTag picks the wrapper tag for a database-produced GML string.
func GeomKindTag(gml string) string {
	for keyword, tag := range GeomKindTags {
		if strings.Contains(gml, keyword) {
			return tag
		}
	}
	return ""
}

// RepairGML splices the gml namespace declaration into a fragment produced
// by ST_AsGML, which emits prefixed tags without declaring the prefix. The
// declaration lands just before the srsName attribute.
func RepairGML(gml string) string {
	const ns = ` xmlns:gml="http://www.opengis.net/gml/3.2"`
	p := strings.Index(gml, "srs")
	if p < 1 {
		return gml
	}
	return gml[:p-1] + ns + gml[p:]
}

// DetectSRS reads the EPSG code from a fragment's srsName attribute.
// Unknown references fall back to 4326.
func DetectSRS(el *etree.Element) string {
	srsName := ""
	for _, a := range el.Attr {
		if a.Key == "srsName" {
			srsName = a.Value
		}
	}
	if srsName == "" {
		return "3067"
	}
	for _, srs := range mappings.KnownSRS {
		if strings.Contains(srsName, srs) {
			return srs
		}
	}
	return "4326"
}

func localName(tag string) string {
	if i := strings.Index(tag, ":"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// ParseGML converts a GML 3.2 fragment to an orb geometry. Z ordinates are
// dropped; storage re-adds them with ST_Force3D.
func ParseGML(el *etree.Element) (orb.Geometry, error) {
	switch localName(el.Tag) {
	case "Point":
		return parsePoint(el)
	case "LineString", "Curve":
		return parseLineString(el)
	case "Polygon", "Surface":
		return parsePolygon(el)
	case "MultiSurface", "MultiPolygon":
		var out orb.MultiPolygon
		for _, member := range geometryMembers(el, "surfaceMember", "polygonMember") {
			poly, err := parsePolygon(member)
			if err != nil {
				return nil, err
			}
			out = append(out, poly)
		}
		return out, nil
	case "MultiCurve", "MultiLineString":
		var out orb.MultiLineString
		for _, member := range geometryMembers(el, "curveMember", "lineStringMember") {
			ls, err := parseLineString(member)
			if err != nil {
				return nil, err
			}
			out = append(out, ls)
		}
		return out, nil
	case "MultiPoint":
		var out orb.MultiPoint
		for _, member := range geometryMembers(el, "pointMember") {
			p, err := parsePoint(member)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported geometry element %q", el.Tag)
}

// geometryMembers collects the geometry elements wrapped by member tags.
func geometryMembers(el *etree.Element, memberNames ...string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		name := localName(child.Tag)
		for _, member := range memberNames {
			if name == member {
				out = append(out, child.ChildElements()...)
			}
		}
	}
	return out
}

func srsDimension(el *etree.Element) int {
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if a.Key == "srsDimension" {
				if d, err := strconv.Atoi(a.Value); err == nil {
					return d
				}
			}
		}
	}
	return 2
}

func parseCoords(text string, dim int) ([]orb.Point, error) {
	fields := strings.Fields(text)
	if dim < 2 {
		dim = 2
	}
	if len(fields) == 0 || len(fields)%dim != 0 {
		return nil, fmt.Errorf("coordinate list of %d ordinates does not divide by dimension %d", len(fields), dim)
	}
	points := make([]orb.Point, 0, len(fields)/dim)
	for i := 0; i < len(fields); i += dim {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, err
		}
		points = append(points, orb.Point{x, y})
	}
	return points, nil
}

func findLocal(el *etree.Element, name string) *etree.Element {
	for _, child := range el.ChildElements() {
		if localName(child.Tag) == name {
			return child
		}
		if found := findLocal(child, name); found != nil {
			return found
		}
	}
	return nil
}

func parsePoint(el *etree.Element) (orb.Point, error) {
	pos := findLocal(el, "pos")
	if pos == nil {
		pos = findLocal(el, "coordinates")
	}
	if pos == nil {
		return orb.Point{}, fmt.Errorf("point without position")
	}
	text := strings.ReplaceAll(pos.Text(), ",", " ")
	points, err := parseCoords(text, srsDimension(pos))
	if err != nil {
		return orb.Point{}, err
	}
	return points[0], nil
}

func parseLineString(el *etree.Element) (orb.LineString, error) {
	posList := findLocal(el, "posList")
	if posList == nil {
		return nil, fmt.Errorf("line without posList")
	}
	points, err := parseCoords(posList.Text(), srsDimension(posList))
	if err != nil {
		return nil, err
	}
	return orb.LineString(points), nil
}

func parsePolygon(el *etree.Element) (orb.Polygon, error) {
	var poly orb.Polygon
	exterior := findLocal(el, "exterior")
	if exterior == nil {
		return nil, fmt.Errorf("polygon without exterior ring")
	}
	ring, err := parseRing(exterior)
	if err != nil {
		return nil, err
	}
	poly = append(poly, ring)
	for _, child := range el.ChildElements() {
		if localName(child.Tag) == "interior" {
			ring, err := parseRing(child)
			if err != nil {
				return nil, err
			}
			poly = append(poly, ring)
		}
	}
	return poly, nil
}

func parseRing(el *etree.Element) (orb.Ring, error) {
	posList := findLocal(el, "posList")
	if posList == nil {
		return nil, fmt.Errorf("ring without posList")
	}
	points, err := parseCoords(posList.Text(), srsDimension(posList))
	if err != nil {
		return nil, err
	}
	return orb.Ring(points), nil
}

// ForceSingle coerces multi geometries to their first member the way the
// exchange tables expect single polygons and lines.
func ForceSingle(geom orb.Geometry) orb.Geometry {
	switch g := geom.(type) {
	case orb.MultiPolygon:
		if len(g) > 0 {
			return g[0]
		}
		return nil
	case orb.MultiLineString:
		if len(g) > 0 {
			return g[0]
		}
		return nil
	case orb.Collection:
		for _, member := range g {
			if ls, ok := member.(orb.LineString); ok {
				return ls
			}
		}
		if len(g) > 0 {
			return ForceSingle(g[0])
		}
		return nil
	}
	return geom
}

// ToEWKB serializes a geometry with its SRID for ST_GeomFromEWKB.
func ToEWKB(geom orb.Geometry, srid int) ([]byte, error) {
	return ewkb.Marshal(geom, srid)
}
