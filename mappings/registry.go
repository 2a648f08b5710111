package mappings

// Registry over the entity types. Built once at init; callers treat every
// slice and map here as read-only.

var All = []EntityType{
	Jate,
	Kaluste,
	Leikkivaline,
	Liikunta,
	Melukohde,
	MuuVaruste,
	Opaste,
	Liikennemerkki,
	Puu,
	MuuKasvi,
	ErikoisrakenneKerros,
	Hulevesi,
	Pysakointiruutu,
	Rakenne,
	Ymparistotaide,
	Keskilinja,
	Ajoratamerkinta,
	Katualue,
	KatualueenOsa,
	Viheralue,
	ViheralueenOsa,
}

var ByTable = make(map[string]EntityType)
var ByElement = make(map[string]EntityType)

func init() {
	for _, e := range All {
		ByTable[e.Table] = e
		ByElement[e.Element] = e
	}
}

// Import pass order: areas first, then their parts, then everything that
// can reference them. Primary keys of each pass must exist before the next
// pass resolves references against them.

var AreaTables = []EntityType{Katualue, Viheralue}

var AreaPartTables = []EntityType{ViheralueenOsa, KatualueenOsa}

var LeafTables = []EntityType{
	Jate,
	Kaluste,
	Leikkivaline,
	Liikunta,
	Melukohde,
	MuuVaruste,
	Opaste,
	Liikennemerkki,
	Puu,
	MuuKasvi,
	ErikoisrakenneKerros,
	Hulevesi,
	Pysakointiruutu,
	Rakenne,
	Ymparistotaide,
	Keskilinja,
	Ajoratamerkinta,
}

// ExportOrder matches the document order produced by earlier revisions of
// the exchange format.
var ExportOrder = []EntityType{
	Jate,
	Kaluste,
	Leikkivaline,
	Liikunta,
	Melukohde,
	MuuVaruste,
	Opaste,
	Liikennemerkki,
	ViheralueenOsa,
	Viheralue,
	Katualue,
	KatualueenOsa,
	Keskilinja,
	Ajoratamerkinta,
	Puu,
	MuuKasvi,
	ErikoisrakenneKerros,
	Hulevesi,
	Pysakointiruutu,
	Rakenne,
	Ymparistotaide,
}

// PlanLinkTables are the tables linkit.suunnitelmalinkki can point at
// through its fid_* discriminator columns.
var PlanLinkTables = []string{
	"ajoratamerkinta",
	"hulevesi",
	"jate",
	"kaluste",
	"leikkivaline",
	"liikennemerkki",
	"liikunta",
	"melukohde",
	"muuvaruste",
	"opaste",
	"pysakointiruutu",
	"rakenne",
	"ymparistotaide",
	"katualueenosa",
	"viheralueenosa",
}

// AreaIndexTables are the area tables whose identifiers other features
// reference through kuuluu* links.
var AreaIndexTables = []string{"viheralueenosa", "katualueenosa", "viheralue", "katualue"}

// MemberTables lists which tables can belong to each area table, used to
// build the export-side containment index. keskilinja can only sit on a
// street area part.
func MemberTables(areaTable string) []EntityType {
	switch areaTable {
	case "katualue":
		return []EntityType{KatualueenOsa}
	case "viheralue":
		return []EntityType{ViheralueenOsa}
	case "katualueenosa":
		return memberEntities(true)
	case "viheralueenosa":
		return memberEntities(false)
	}
	return nil
}

func memberEntities(withCentreline bool) []EntityType {
	out := []EntityType{
		Jate, Kaluste, Leikkivaline, Liikennemerkki, Liikunta, Melukohde,
		MuuVaruste, Opaste, Puu, MuuKasvi, Hulevesi, Pysakointiruutu,
		Rakenne, Ymparistotaide, Ajoratamerkinta,
	}
	if withCentreline {
		out = append(out, Keskilinja)
	}
	return out
}

// PartitionOf classifies a member table for the sisaltaa* lists.
func PartitionOf(table string) string {
	switch table {
	case "puu", "muukasvi":
		return MemberKasvillisuus
	case "keskilinja":
		return MemberKeskilinja
	}
	return MemberMuu
}
