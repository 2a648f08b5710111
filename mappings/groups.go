package mappings

// Attribute groups shared by the entity tables. Entity tables compose these
// with their own tags; composition order is fixed at package init.

var groupCommon = []Mapping{
	{Tag: "metatieto", Kind: KindSkip},
	{Tag: "datan_luoja", Column: "meta_datanluoja", Kind: KindMetaField},
	{Tag: "muokkaaja", Column: "meta_muokkaaja", Kind: KindMetaField},
	{Tag: "muokkaus_pvm", Column: "meta_muokkauspvm", Kind: KindMetaField},
	{Tag: "omistaja", Column: "meta_omistaja", Kind: KindMetaField},
	{Tag: "lahteen_pvm", Column: "meta_lahteenpvm", Kind: KindMetaField},
	{Tag: "mittausera", Column: "meta_mittausera", Kind: KindMetaField},
	{Tag: "lisatieto_linkki", Column: "meta_lisatietolinkki", Kind: KindMetaField},
	{Tag: "yksilointitieto", Column: "identifier", Kind: KindPlain},
	{Tag: "alkuHetki", Column: "alkuhetki", Kind: KindStamp},
	{Tag: "loppuHetki", Column: "loppuhetki", Kind: KindStamp},
}

var groupVaruste = []Mapping{
	{Tag: "piste", Column: "geom_point", Kind: KindGeomPoint},
	{Tag: "viiva", Column: "geom_line", Kind: KindGeomLine},
	{Tag: "alue", Column: "geom_poly", Kind: KindGeomPoly},
	{Tag: "omistaja", Column: "omistaja", Kind: KindPlain},
	{Tag: "haltija", Column: "haltija", Kind: KindPlain},
	{Tag: "kunnossapitaja", Column: "kunnossapitaja", Kind: KindPlain},
	{Tag: "malli", Column: "malli", Kind: KindPlain},
	{Tag: "perusparannusvuosi", Column: "perusparannusvuosi", Kind: KindPlain},
	{Tag: "suunta", Column: "suunta", Kind: KindPlain},
	{Tag: "valmistaja", Column: "valmistaja", Kind: KindPlain},
	{Tag: "valmistumisvuosi", Column: "valmistumisvuosi", Kind: KindPlain},
	{Tag: "materiaali", Column: "cid_varustemateriaali", Kind: KindEnum, Ref: "varustemateriaali"},
	{Tag: "kuuluuViheralueenOsaan", Column: "fid_viheralueenosa", Kind: KindAreaRef, Ref: "viheralueenosa"},
	{Tag: "kuuluuKatuAlueenOsaan", Column: "fid_katualueenosa", Kind: KindAreaRef, Ref: "katualueenosa"},
	{Tag: "sijaintiepavarmuus", Column: "cid_sijaintiepavarmuustyyppi", Kind: KindOrdinalUncertainty, Ref: "sijaintiepavarmuustyyppi"},
	{Tag: "luontitapa", Column: "cid_luontitapatyyppi", Kind: KindOrdinalCreation, Ref: "luontitapatyyppi"},
	{Tag: "suunnitelmalinkkitieto", Kind: KindPlanLink},
	{Tag: "osoitetieto", Column: "fid_osoite", Kind: KindAddress},
}

var groupKasvillisuus = []Mapping{
	{Tag: "omistaja", Column: "omistaja", Kind: KindPlain},
	{Tag: "haltija", Column: "haltija", Kind: KindPlain},
	{Tag: "kunnossapitaja", Column: "kunnossapitaja", Kind: KindPlain},
	{Tag: "piste", Column: "geom_point", Kind: KindGeomPoint},
	{Tag: "viiva", Column: "geom_line", Kind: KindGeomLine},
	{Tag: "alue", Column: "geom_poly", Kind: KindGeomPoly},
	{Tag: "kuuluuViheralueenOsaan", Column: "fid_viheralueenosa", Kind: KindAreaRef, Ref: "viheralueenosa"},
	{Tag: "kuuluuKatuAlueenOsaan", Column: "fid_katualueenosa", Kind: KindAreaRef, Ref: "katualueenosa"},
	{Tag: "sijaintiepavarmuus", Column: "cid_sijaintiepavarmuustyyppi", Kind: KindOrdinalUncertainty, Ref: "sijaintiepavarmuustyyppi"},
	{Tag: "luontitapa", Column: "cid_luontitapatyyppi", Kind: KindOrdinalCreation, Ref: "luontitapatyyppi"},
	{Tag: "osoitetieto", Column: "fid_osoite", Kind: KindAddress},
}

// Attachment (infrao:Liite) tags.
var LiiteTags = []Mapping{
	{Tag: "kuvaus", Column: "kuvaus", Kind: KindPlain},
	{Tag: "linkkiliitteeseen", Column: "linkkiliitteeseen", Kind: KindPlain},
	{Tag: "muokkausHetki", Column: "muokkaushetki", Kind: KindStamp},
	{Tag: "versionumero", Column: "versionumero", Kind: KindPlain},
}

// Decree (infrao:Paatos) tags.
var PaatosTags = []Mapping{
	{Tag: "kuvaus", Column: "kuvaus", Kind: KindPlain},
	{Tag: "paivamaaraPvm", Column: "paivamaarapvm", Kind: KindPlain},
}

// Address (infrao:Osoite) tags. The geometry columns carry their own
// wrapper tags instead of a location block.
var OsoiteTags = []Mapping{
	{Tag: "kunta", Column: "kunta", Kind: KindPlain},
	{Tag: "osoitenumero", Column: "osoitenumero", Kind: KindPlain},
	{Tag: "osoitenumero2", Column: "osoitenumero2", Kind: KindPlain},
	{Tag: "jakokirjain", Column: "jakokirjain", Kind: KindPlain},
	{Tag: "jakokirjain2", Column: "jakokirjain2", Kind: KindPlain},
	{Tag: "porras", Column: "porras", Kind: KindPlain},
	{Tag: "huoneisto", Column: "huoneisto", Kind: KindPlain},
	{Tag: "huoneistojakokirjain", Column: "huoneistojakokirjain", Kind: KindPlain},
	{Tag: "postinumero", Column: "postinumero", Kind: KindPlain},
	{Tag: "postitoimipaikannimi", Column: "postitoimipaikannimi", Kind: KindPlain},
	{Tag: "pistesijainti", Column: "geom_point", Kind: KindGeomPoint},
	{Tag: "aluesijainti", Column: "geom_poly", Kind: KindGeomPoly},
	{Tag: "viivasijainti", Column: "geom_line", Kind: KindGeomLine},
	{Tag: "viitesijaintialue", Column: "viitesijaintialue", Kind: KindPlain},
	{Tag: "nimitieto", Column: "nimitieto", Kind: KindPlain},
}

// Shipment metadata (infrao:Toimitus) tags, stored in
// meta.aineistotoimituksentiedot.
var ToimitusTags = []Mapping{
	{Tag: "aineistonnimi", Column: "aineistonnimi", Kind: KindPlain},
	{Tag: "aineistotoimittaja", Column: "aineistotoimittaja", Kind: KindPlain},
	{Tag: "tila", Column: "tila", Kind: KindPlain},
	{Tag: "toimitusPvm", Column: "toimituspvm", Kind: KindPlain},
	{Tag: "kuntakoodi", Column: "kuntakoodi", Kind: KindPlain},
	{Tag: "kielitieto", Column: "kielitieto", Kind: KindPlain},
	{Tag: "metatietotunniste", Column: "metatietotunniste", Kind: KindPlain},
	{Tag: "metatietoXMLURL", Column: "metatietoxmlurl", Kind: KindPlain},
	{Tag: "metatietoURL", Column: "metatietourl", Kind: KindPlain},
	{Tag: "tietotuoteURL", Column: "tietotuoteurl", Kind: KindPlain},
}

// Plan link tags under infrao:Suunnitelmalinkki.
var SuunnitelmalinkkiIDTag = "suunnitelmakohdeId"

// Fixed ordinal table for location creation method. The codes are not in
// koodistot; they follow the InfraO profile directly.
var CreationOrdinals = map[string]int{
	"digitointi":         1,
	"kiinteistötoimitus": 2,
	"kuvamittaus":        3,
	"laserkeilattu":      4,
	"maastomittaus":      5,
	"skannattu":          6,
	"tuntematon":         7,
	"muu":                8,
	"-1":                 9,
}

// Fixed ordinal table for location uncertainty in metres.
var UncertaintyOrdinals = map[string]int{
	"0.15": 1,
	"0.2":  2,
	"0.3":  3,
	"0.5":  4,
	"0.7":  5,
	"1.0":  6,
	"1.5":  7,
	"2.0":  8,
	"3.0":  9,
	"5.0":  10,
	"7.5":  11,
	"10.0": 12,
	"20.0": 13,
	"-1":   14,
}

// KnownSRS lists the EPSG codes recognized in srsName attributes. Anything
// else falls back to 4326.
var KnownSRS = []string{
	"3067",
	"4326",
	"3857",
	"3873",
	"3874",
	"3875",
	"3876",
	"3877",
	"3878",
	"3879",
	"3880",
	"3881",
	"3882",
	"3883",
	"3884",
	"3885",
}
