package Transformer

import (
	"fmt"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

type ConvertedPoint struct {
	Lat float64
	Lng float64
}

// CoordTransformAToB reprojects a single coordinate pair through PostGIS.
func CoordTransformAToB(db *gorm.DB, x float64, y float64, A string, B string) (x1, y1 float64) {
	var point ConvertedPoint
	sql := fmt.Sprintf("SELECT ST_Y(ST_Transform(ST_SetSRID(ST_Point(?, ?), %s), %s)) AS lat,ST_X(ST_Transform(ST_SetSRID(ST_Point(?, ?), %s), %s)) AS lng", A, B, A, B)
	db.Raw(sql, x, y, x, y).Scan(&point)
	return point.Lng, point.Lat
}

// TransformGeometry reprojects every vertex of a geometry from one EPSG
// code to another. Point-by-point round trips are slow but keep all
// projection math inside the database.
func TransformGeometry(db *gorm.DB, geom orb.Geometry, from string, to string) orb.Geometry {
	if from == to {
		return geom
	}
	tp := func(p orb.Point) orb.Point {
		x, y := CoordTransformAToB(db, p[0], p[1], from, to)
		return orb.Point{x, y}
	}
	switch g := geom.(type) {
	case orb.Point:
		return tp(g)
	case orb.LineString:
		out := make(orb.LineString, len(g))
		for i, p := range g {
			out[i] = tp(p)
		}
		return out
	case orb.Polygon:
		out := make(orb.Polygon, len(g))
		for i, ring := range g {
			r := make(orb.Ring, len(ring))
			for j, p := range ring {
				r[j] = tp(p)
			}
			out[i] = r
		}
		return out
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(g))
		for i, poly := range g {
			out[i] = TransformGeometry(db, poly, from, to).(orb.Polygon)
		}
		return out
	case orb.MultiLineString:
		out := make(orb.MultiLineString, len(g))
		for i, ls := range g {
			out[i] = TransformGeometry(db, ls, from, to).(orb.LineString)
		}
		return out
	case orb.MultiPoint:
		out := make(orb.MultiPoint, len(g))
		for i, p := range g {
			out[i] = tp(p)
		}
		return out
	}
	return geom
}
