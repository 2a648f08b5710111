package mappings

// Kind tells both pipelines what a mapped element carries.
type Kind int

const (
	KindPlain Kind = iota
	KindSkip
	KindStamp  // timestamp column, written as 2006-01-02T15:04:05
	KindSwitch // boolean "kytkin" column, written lowercase
	KindMetaField
	KindEnum               // cid_* column resolved against koodistot.<Ref>
	KindOrdinalCreation    // luontitapa inside a location block
	KindOrdinalUncertainty // sijaintiepavarmuus inside a location block
	KindAreaRef            // kuuluu* xlink to an area feature in table Ref
	KindGeomPoint
	KindGeomLine
	KindGeomPoly
	KindGeomDirect // bare geometry element with no Sijainti wrapper
	KindAddress
	KindDecree
	KindPlanLink
	KindContains // sisaltaa* member list, partition class in Ref
)

// Member partition classes for KindContains.
const (
	MemberMuu          = "muu"
	MemberKasvillisuus = "kasvillisuus"
	MemberKeskilinja   = "keskilinja"
)

// Mapping binds one element tag to one database column. Tag is the local
// name without the infrao prefix, except KindMetaField tags which appear
// unprefixed inside gml:GenericMetaData.
type Mapping struct {
	Tag    string
	Column string
	Kind   Kind
	Ref    string
}

func (m Mapping) IsGeom() bool {
	switch m.Kind {
	case KindGeomPoint, KindGeomLine, KindGeomPoly, KindGeomDirect:
		return true
	}
	return false
}

// compose unions attribute groups into one table. A later group's mapping
// for an already-seen tag replaces the earlier one in place, so the result
// is deterministic for a fixed group order. Metadata fields live in their
// own namespace and never collide with feature-level tags.
func compose(groups ...[]Mapping) []Mapping {
	var out []Mapping
	index := make(map[string]int)
	for _, group := range groups {
		for _, m := range group {
			key := m.Tag
			if m.Kind == KindMetaField {
				key = "meta " + key
			}
			if i, ok := index[key]; ok && m.Tag != "" {
				out[i] = m
				continue
			}
			index[key] = len(out)
			out = append(out, m)
		}
	}
	return out
}

// EntityType is one exchanged feature type.
type EntityType struct {
	Schema      string
	Table       string
	Element     string // InfraO element name, e.g. "KatualueenOsa"
	LocationTag string // wrapper element of the location block, "" for plain areas
	Direct      bool   // geometry sits directly under LocationTag (keskilinja)
	Tags        []Mapping
}

func (e EntityType) GeomMappings() []Mapping {
	var out []Mapping
	for _, m := range e.Tags {
		if m.IsGeom() {
			out = append(out, m)
		}
	}
	return out
}

func (e EntityType) MetaColumns() []string {
	var out []string
	for _, m := range e.Tags {
		if m.Kind == KindMetaField {
			out = append(out, m.Column)
		}
	}
	return out
}

// Columns lists every database column of the record in mapping order,
// geometry columns last so the insert builder can wrap them.
func (e EntityType) Columns() []string {
	var plain, geoms []string
	seen := make(map[string]bool)
	for _, m := range e.Tags {
		if m.Column == "" || m.Kind == KindSkip || m.Kind == KindContains || seen[m.Column] {
			continue
		}
		seen[m.Column] = true
		if m.IsGeom() {
			geoms = append(geoms, m.Column)
		} else {
			plain = append(plain, m.Column)
		}
	}
	return append(plain, geoms...)
}

// FindTag resolves a feature-level child tag. Metadata fields are looked
// up with FindMetaTag because their bare tags may shadow feature tags.
func (e EntityType) FindTag(tag string) (Mapping, bool) {
	for _, m := range e.Tags {
		if m.Kind != KindMetaField && m.Tag == tag {
			return m, true
		}
	}
	return Mapping{}, false
}

func (e EntityType) FindMetaTag(tag string) (Mapping, bool) {
	for _, m := range e.Tags {
		if m.Kind == KindMetaField && m.Tag == tag {
			return m, true
		}
	}
	return Mapping{}, false
}
