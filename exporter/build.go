package exporter

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/GrainArc/InfraoMap/Transformer"
	"github.com/GrainArc/InfraoMap/mappings"
	"github.com/beevik/etree"
	"gorm.io/gorm"
)

// Builder assembles feature elements from fetched rows and the shared
// side-table lookups.
type Builder struct {
	DB        *gorm.DB
	Index     *Index
	Decrees   map[int64][]Decree
	PlanLinks map[string]map[int64][]PlanLink
}

// tyhjaGeometriaExempt lists the tables whose features never get an empty
// geometry placeholder.
var tyhjaGeometriaExempt = map[string]bool{
	"keskilinja":     true,
	"katualueenosa":  true,
	"viheralueenosa": true,
}

// BuildFeature appends one feature element in tag order. The location
// block is built in one piece at the first geometry tag; the ordinal and
// address tags belong inside it.
func (b *Builder) BuildFeature(parent *etree.Element, e mappings.EntityType, f Feature) {
	feature := parent.CreateElement("infrao:" + e.Element)
	identifier := plain(f.Values["identifier"])
	feature.CreateAttr("gml:id", e.Element+"."+identifier)

	var generic *etree.Element
	if f.HasMeta {
		generic = feature.CreateElement("infrao:metatieto").
			CreateElement("gml:metaDataProperty").
			CreateElement("gml:GenericMetaData")
	}

	locationDone := false
	for _, m := range e.Tags {
		switch m.Kind {
		case mappings.KindSkip, mappings.KindOrdinalCreation, mappings.KindOrdinalUncertainty, mappings.KindAddress:
		case mappings.KindMetaField:
			if generic != nil {
				if v := f.Values[m.Column]; v != nil {
					generic.CreateElement(m.Tag).SetText(plain(v))
				}
			}
		case mappings.KindPlain, mappings.KindEnum:
			if v := f.Values[m.Column]; v != nil {
				feature.CreateElement("infrao:" + m.Tag).SetText(plain(v))
			}
		case mappings.KindStamp:
			if v := f.Values[m.Column]; v != nil {
				feature.CreateElement("infrao:" + m.Tag).SetText(stamp(v))
			}
		case mappings.KindSwitch:
			if v := f.Values[m.Column]; v != nil {
				feature.CreateElement("infrao:" + m.Tag).SetText(strings.ToLower(plain(v)))
			}
		case mappings.KindGeomPoint, mappings.KindGeomLine, mappings.KindGeomPoly, mappings.KindGeomDirect:
			if !locationDone {
				b.buildLocation(feature, e, f)
				locationDone = true
			}
		case mappings.KindAreaRef:
			b.buildAreaRef(feature, e, m, identifier)
		case mappings.KindContains:
			b.buildContains(feature, e, m, identifier)
		case mappings.KindDecree:
			b.buildDecrees(feature, f.Fid)
		case mappings.KindPlanLink:
			b.buildPlanLinks(feature, e, f.Fid)
		}
	}
}

// buildLocation writes the location properties. keskilinja takes its GML
// straight under the wrapper; everything else wraps each geometry in a
// Sijainti element, and the ordinal and address tags hang off the last
// one created.
func (b *Builder) buildLocation(feature *etree.Element, e mappings.EntityType, f Feature) {
	if e.Direct {
		for _, m := range e.GeomMappings() {
			if v := f.Values[m.Column]; v != nil {
				appendGML(feature.CreateElement("infrao:"+e.LocationTag), plain(v))
			}
		}
		return
	}

	var sijainti *etree.Element
	for _, m := range e.GeomMappings() {
		v := f.Values[m.Column]
		if v == nil {
			continue
		}
		gml := plain(v)
		kindTag := Transformer.GeomKindTag(gml)
		if kindTag == "" {
			log.Printf("unrecognized geometry in %s.%s fid %d", e.Schema, e.Table, f.Fid)
			continue
		}
		sijainti = feature.CreateElement("infrao:" + e.LocationTag).CreateElement("infrao:Sijainti")
		appendGML(sijainti.CreateElement(kindTag), gml)
	}
	if sijainti == nil {
		if tyhjaGeometriaExempt[e.Table] {
			return
		}
		sijainti = feature.CreateElement("infrao:" + e.LocationTag).CreateElement("infrao:Sijainti")
		sijainti.CreateElement("infrao:tyhjaGeometria").CreateElement("gml:Null")
	}

	for _, m := range e.Tags {
		switch m.Kind {
		case mappings.KindOrdinalCreation, mappings.KindOrdinalUncertainty:
			if v := f.Values[m.Column]; v != nil {
				sijainti.CreateElement("infrao:" + m.Tag).SetText(plain(v))
			}
		case mappings.KindAddress:
			if v := f.Values[m.Column]; v != nil {
				b.buildAddress(sijainti, e, v)
			}
		}
	}
}

func (b *Builder) buildAreaRef(feature *etree.Element, e mappings.EntityType, m mappings.Mapping, identifier string) {
	areaIdent, ok := b.Index.Container(m.Ref, e.Table, identifier)
	if !ok || areaIdent == identifier {
		return
	}
	ref := feature.CreateElement("infrao:" + m.Tag)
	ref.CreateAttr("xlink:type", "simple")
	ref.CreateAttr("xlink:href", "#"+mappings.ByTable[m.Ref].Element+"."+areaIdent)
}

func (b *Builder) buildContains(feature *etree.Element, e mappings.EntityType, m mappings.Mapping, identifier string) {
	for _, member := range mappings.MemberTables(e.Table) {
		if mappings.PartitionOf(member.Table) != m.Ref {
			continue
		}
		for _, ident := range b.Index.Members(identifier, member.Table) {
			ref := feature.CreateElement("infrao:" + m.Tag)
			ref.CreateAttr("xlink:type", "simple")
			ref.CreateAttr("xlink:href", "#"+member.Element+"."+ident)
		}
	}
}

func (b *Builder) buildDecrees(feature *etree.Element, fid int64) {
	for _, d := range b.Decrees[fid] {
		paatos := feature.CreateElement("infrao:paatostieto").CreateElement("infrao:Paatos")
		for _, a := range d.Attachments {
			buildAttachment(paatos, a)
		}
		if d.Kuvaus != nil {
			paatos.CreateElement("infrao:kuvaus").SetText(plain(d.Kuvaus))
		}
		if d.Paivamaara != nil {
			paatos.CreateElement("infrao:paivamaaraPvm").SetText(plain(d.Paivamaara))
		}
	}
}

func (b *Builder) buildPlanLinks(feature *etree.Element, e mappings.EntityType, fid int64) {
	for _, pl := range b.PlanLinks[e.Table][fid] {
		link := feature.CreateElement("infrao:suunnitelmalinkkitieto").
			CreateElement("infrao:Suunnitelmalinkki")
		if pl.SuunnitelmakohdeID != nil {
			link.CreateElement("infrao:" + mappings.SuunnitelmalinkkiIDTag).SetText(plain(pl.SuunnitelmakohdeID))
		}
		buildAttachment(link, pl.Attachment)
	}
}

func buildAttachment(parent *etree.Element, attachment map[string]any) {
	liite := parent.CreateElement("infrao:liitetieto").CreateElement("infrao:Liite")
	for _, m := range mappings.LiiteTags {
		v := attachment[m.Column]
		if v == nil {
			continue
		}
		el := liite.CreateElement("infrao:" + m.Tag)
		if m.Kind == mappings.KindStamp {
			el.SetText(stamp(v))
		} else {
			el.SetText(plain(v))
		}
	}
}

func (b *Builder) buildAddress(parent *etree.Element, e mappings.EntityType, fidOsoite any) {
	addr, err := FetchAddress(b.DB, e, fidOsoite)
	if err != nil {
		log.Printf("address for %s.%s: %v", e.Schema, e.Table, err)
		return
	}
	if addr == nil {
		return
	}
	osoite := parent.CreateElement("infrao:osoitetieto").CreateElement("infrao:Osoite")
	for _, m := range mappings.OsoiteTags {
		v := addr[m.Column]
		if v == nil {
			continue
		}
		switch {
		case m.Tag == "nimitieto":
			osoite.CreateElement("infrao:nimitieto").
				CreateElement("infrao:Nimi").
				CreateElement("infrao:teksti").SetText(plain(v))
		case m.IsGeom():
			appendGML(osoite.CreateElement("infrao:"+m.Tag), plain(v))
		default:
			osoite.CreateElement("infrao:" + m.Tag).SetText(plain(v))
		}
	}
}

// appendGML parses a database GML fragment, splicing in the namespace
// declaration ST_AsGML leaves out, and hangs it under parent.
func appendGML(parent *etree.Element, gml string) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(Transformer.RepairGML(gml)); err != nil || doc.Root() == nil {
		log.Printf("unparseable geometry fragment: %v", err)
		return
	}
	parent.AddChild(doc.Root())
}

func plain(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case time.Time:
		if value.Hour() == 0 && value.Minute() == 0 && value.Second() == 0 {
			return value.Format("2006-01-02")
		}
		return value.Format("2006-01-02T15:04:05")
	}
	return fmt.Sprint(v)
}

func stamp(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02T15:04:05")
	}
	return plain(v)
}
