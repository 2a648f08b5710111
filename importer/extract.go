package importer

import (
	"log"
	"strconv"
	"strings"

	"github.com/GrainArc/InfraoMap/Transformer"
	"github.com/GrainArc/InfraoMap/config"
	"github.com/GrainArc/InfraoMap/mappings"
	"github.com/beevik/etree"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

// Record is one flat row keyed by column name, ready for the insert
// builder.
type Record map[string]any

// Reprojector moves a geometry into the storage coordinate system.
type Reprojector interface {
	Reproject(geom orb.Geometry, fromEPSG string) orb.Geometry
}

type dbReprojector struct {
	db *gorm.DB
}

func (r dbReprojector) Reproject(geom orb.Geometry, fromEPSG string) orb.Geometry {
	return Transformer.TransformGeometry(r.db, geom, fromEPSG, strconv.Itoa(config.SystemEPSG))
}

// Extractor walks feature elements and produces records plus the side
// lists that can only be inserted after the main passes.
type Extractor struct {
	Enums       EnumResolver
	Areas       AreaIndex
	Attachments AttachmentStore
	Addresses   AddressStore
	Projector   Reprojector

	PlanLinks []PlanLink
	Decrees   []Decree
}

func localName(tag string) string {
	if i := strings.Index(tag, ":"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

var locationWrappers = map[string]bool{
	"tarkkaSijaintitieto": true,
	"sijaintitieto":       true,
	"sijainti":            true,
}

// FindFeatures locates every feature element of one entity type. Features
// may sit under gml:featureMembers, WFS member wrappers or OGC API
// featureMember wrappers; matching on local names covers all of them.
func FindFeatures(doc *etree.Document, element string) []*etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	var out []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if localName(child.Tag) == element {
				out = append(out, child)
				continue
			}
			walk(child)
		}
	}
	walk(root)
	return out
}

// NewRecord initializes every mapped column: enumeration keys start at the
// unresolved sentinel, everything else at null.
func NewRecord(e mappings.EntityType) Record {
	rec := make(Record)
	for _, col := range e.Columns() {
		if strings.HasPrefix(col, "cid_") {
			rec[col] = -1
		} else {
			rec[col] = nil
		}
	}
	return rec
}

func textOrNil(el *etree.Element) any {
	text := el.Text()
	if text == "" {
		return nil
	}
	return text
}

func identifierOf(rec Record) string {
	if id, ok := rec["identifier"].(string); ok {
		return id
	}
	return ""
}

// Extract turns the feature elements of one entity type into records. A
// feature with a broken field keeps its other fields and is still
// returned; only the database decides whether a pass fails.
func (ex *Extractor) Extract(features []*etree.Element, e mappings.EntityType) []Record {
	records := make([]Record, 0, len(features))
	for _, feature := range features {
		rec := NewRecord(e)

		// The identifier is read first so side lists and log lines can
		// name the feature regardless of element order.
		for _, child := range feature.ChildElements() {
			if localName(child.Tag) == "yksilointitieto" {
				rec["identifier"] = textOrNil(child)
				break
			}
		}

		for _, child := range feature.ChildElements() {
			tag := localName(child.Tag)
			switch {
			case tag == "metatieto":
				ex.extractMeta(child, e, rec)
			case locationWrappers[tag]:
				ex.extractLocation(child, e, rec)
			case tag == "paatostieto":
				ex.extractDecree(child, e, rec)
			case tag == "suunnitelmalinkkitieto":
				ex.extractPlanLink(child, e, rec)
			case strings.HasPrefix(tag, "kuuluu"):
				ex.extractAreaRef(child, e, rec)
			default:
				ex.extractField(child, e, rec)
			}
		}
		records = append(records, rec)
	}
	return records
}

func (ex *Extractor) extractField(child *etree.Element, e mappings.EntityType, rec Record) {
	tag := localName(child.Tag)
	m, ok := e.FindTag(tag)
	if !ok {
		return
	}
	switch m.Kind {
	case mappings.KindSkip, mappings.KindContains:
	case mappings.KindEnum:
		label, _ := textOrNil(child).(string)
		code := ex.Enums.Resolve(m.Column, m.Ref, label)
		if code == -1 {
			log.Printf("Enumeration label %q of %s.%s not found in koodistot.%s", label, e.Element, identifierOf(rec), m.Ref)
		}
		rec[m.Column] = code
	case mappings.KindOrdinalCreation:
		ex.assignOrdinal(child, m, mappings.CreationOrdinals, e, rec)
	case mappings.KindOrdinalUncertainty:
		ex.assignOrdinal(child, m, mappings.UncertaintyOrdinals, e, rec)
	default:
		rec[m.Column] = textOrNil(child)
	}
}

func (ex *Extractor) assignOrdinal(child *etree.Element, m mappings.Mapping, table map[string]int, e mappings.EntityType, rec Record) {
	label, _ := textOrNil(child).(string)
	if code, ok := table[label]; ok {
		rec[m.Column] = code
		return
	}
	log.Printf("Location value %q of %s.%s has no fixed code", label, e.Element, identifierOf(rec))
}

func (ex *Extractor) extractMeta(child *etree.Element, e mappings.EntityType, rec Record) {
	meta := findLocalChild(child, "metaDataProperty")
	if meta == nil {
		return
	}
	generic := findLocalChild(meta, "GenericMetaData")
	if generic == nil {
		return
	}
	for _, field := range generic.ChildElements() {
		if m, ok := e.FindMetaTag(localName(field.Tag)); ok {
			rec[m.Column] = textOrNil(field)
		}
	}
}

func (ex *Extractor) extractAreaRef(child *etree.Element, e mappings.EntityType, rec Record) {
	m, ok := e.FindTag(localName(child.Tag))
	if !ok || m.Kind != mappings.KindAreaRef {
		return
	}
	href := ""
	for _, a := range child.Attr {
		if a.Key == "href" {
			href = a.Value
		}
	}
	if href == "" {
		log.Printf("Element %s of %s.%s carries no xlink reference", child.Tag, e.Element, identifierOf(rec))
		return
	}
	dot := strings.Index(href, ".")
	if dot == -1 {
		log.Printf("Malformed area reference %q on %s.%s", href, e.Element, identifierOf(rec))
		return
	}
	id := href[dot+1:]
	if fid, ok := ex.Areas.Fid(m.Ref, id); ok {
		rec[m.Column] = fid
		return
	}
	log.Printf("Containing area %q of %s.%s not found", id, e.Element, identifierOf(rec))
}

func findLocalChild(el *etree.Element, name string) *etree.Element {
	for _, child := range el.ChildElements() {
		if localName(child.Tag) == name {
			return child
		}
	}
	return nil
}

// grandchildren returns the ./*/<name> elements, i.e. named children of
// every direct child.
func grandchildren(el *etree.Element, name string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		for _, gc := range child.ChildElements() {
			if name == "" || localName(gc.Tag) == name {
				out = append(out, gc)
			}
		}
	}
	return out
}

func (ex *Extractor) extractLocation(wrapper *etree.Element, e mappings.EntityType, rec Record) {
	if e.Direct && localName(wrapper.Tag) == "sijainti" {
		geoms := e.GeomMappings()
		if len(geoms) == 0 {
			return
		}
		gmlEl := firstChildElement(wrapper)
		if gmlEl == nil {
			log.Printf("Problem reading the geometry of %s.%s", e.Element, identifierOf(rec))
			return
		}
		ex.assignGeometry(gmlEl, geoms[0], e, rec)
		return
	}

	for _, sijainti := range wrapper.ChildElements() {
		for _, part := range sijainti.ChildElements() {
			tag := localName(part.Tag)
			switch tag {
			case "luontitapa":
				if m, ok := e.FindTag("luontitapa"); ok {
					ex.assignOrdinal(part, m, mappings.CreationOrdinals, e, rec)
				}
			case "sijaintiepavarmuus":
				if m, ok := e.FindTag("sijaintiepavarmuus"); ok {
					ex.assignOrdinal(part, m, mappings.UncertaintyOrdinals, e, rec)
				}
			case "osoitetieto":
				ex.extractAddress(part, e, rec)
			case "piste", "viiva", "alue":
				m, ok := e.FindTag(tag)
				if !ok || !m.IsGeom() {
					log.Printf("Problem adding the geometry of %s.%s", e.Element, identifierOf(rec))
					continue
				}
				gmlEl := firstChildElement(part)
				if gmlEl == nil {
					log.Printf("Problem reading the geometry of %s.%s", e.Element, identifierOf(rec))
					continue
				}
				ex.assignGeometry(gmlEl, m, e, rec)
			}
		}
	}
}

func firstChildElement(el *etree.Element) *etree.Element {
	children := el.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

func (ex *Extractor) assignGeometry(gmlEl *etree.Element, m mappings.Mapping, e mappings.EntityType, rec Record) {
	geom, err := Transformer.ParseGML(gmlEl)
	if err != nil {
		log.Printf("Problem reading the geometry of %s.%s: %v", e.Element, identifierOf(rec), err)
		return
	}
	geom = Transformer.ForceSingle(geom)
	if geom == nil {
		log.Printf("Problem reading the geometry of %s.%s: empty geometry", e.Element, identifierOf(rec))
		return
	}
	srs := Transformer.DetectSRS(gmlEl)
	system := strconv.Itoa(config.SystemEPSG)
	if srs != system && ex.Projector != nil {
		geom = ex.Projector.Reproject(geom, srs)
	}
	data, err := Transformer.ToEWKB(geom, config.SystemEPSG)
	if err != nil {
		log.Printf("Problem adding the geometry of %s.%s: %v", e.Element, identifierOf(rec), err)
		return
	}
	rec[m.Column] = data
}

func (ex *Extractor) extractAddress(part *etree.Element, e mappings.EntityType, rec Record) {
	if _, ok := e.FindTag("osoitetieto"); !ok {
		return
	}
	values := make(map[string]any)
	for _, field := range grandchildren(part, "") {
		tag := localName(field.Tag)
		var m mappings.Mapping
		found := false
		for _, candidate := range mappings.OsoiteTags {
			if candidate.Tag == tag {
				m = candidate
				found = true
				break
			}
		}
		if !found || m.IsGeom() {
			continue
		}
		if tag == "nimitieto" {
			names := grandchildren(field, "")
			if len(names) > 0 {
				values[m.Column] = textOrNil(names[0])
			}
			continue
		}
		values[m.Column] = textOrNil(field)
	}
	fid, err := ex.Addresses.EnsureAddress(values)
	if err != nil {
		log.Printf("Problem resolving the address of %s.%s: %v", e.Element, identifierOf(rec), err)
		return
	}
	rec["fid_osoite"] = fid
}

func (ex *Extractor) extractDecree(child *etree.Element, e mappings.EntityType, rec Record) {
	if m, ok := e.FindTag("paatostieto"); !ok || m.Kind != mappings.KindDecree {
		log.Printf("Element paatostieto of %s.%s has no decree mapping", e.Element, identifierOf(rec))
		return
	}
	decree := Decree{OwnerIdentifier: identifierOf(rec)}
	for _, field := range grandchildren(child, "") {
		switch localName(field.Tag) {
		case "kuvaus":
			decree.Kuvaus = textOrNil(field)
		case "paivamaaraPvm":
			decree.Paivamaara = textOrNil(field)
		case "liitetieto":
			for _, attEl := range field.ChildElements() {
				decree.Attachments = append(decree.Attachments, readAttachment(attEl))
			}
		}
	}
	ex.Decrees = append(ex.Decrees, decree)
}

func readAttachment(attEl *etree.Element) Attachment {
	att := make(Attachment)
	for _, m := range mappings.LiiteTags {
		att[m.Column] = nil
	}
	for _, field := range attEl.ChildElements() {
		tag := localName(field.Tag)
		for _, m := range mappings.LiiteTags {
			if m.Tag == tag {
				att[m.Column] = textOrNil(field)
			}
		}
	}
	return att
}

func (ex *Extractor) extractPlanLink(child *etree.Element, e mappings.EntityType, rec Record) {
	if m, ok := e.FindTag("suunnitelmalinkkitieto"); !ok || m.Kind != mappings.KindPlanLink {
		log.Printf("Element suunnitelmalinkkitieto of %s.%s has no plan link mapping", e.Element, identifierOf(rec))
		return
	}
	link := PlanLink{Table: e.Table, OwnerIdentifier: identifierOf(rec)}
	for _, field := range grandchildren(child, "") {
		switch localName(field.Tag) {
		case "liitetieto":
			attEl := firstChildElement(field)
			if attEl == nil {
				continue
			}
			fid, err := ex.Attachments.EnsureAttachment(readAttachment(attEl))
			if err != nil {
				log.Printf("Problem resolving the plan link attachment of %s.%s: %v", e.Element, identifierOf(rec), err)
				continue
			}
			link.FidLiite = fid
		case mappings.SuunnitelmalinkkiIDTag:
			link.SuunnitelmakohdeID = textOrNil(field)
		}
	}
	ex.PlanLinks = append(ex.PlanLinks, link)
}
