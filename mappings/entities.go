package mappings

// The entity tables of the InfraO profile. Each composes the shared
// attribute groups with its own tags; the composition runs once at
// package init and the results are never mutated afterwards.

var Jate = EntityType{
	Schema: "varusteet", Table: "jate", Element: "Jate",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "koko", Column: "koko", Kind: KindPlain},
		{Tag: "putkikeraysjarjestelmaKytkin", Column: "putkikeraysjarjestelma_kytkin", Kind: KindSwitch},
		{Tag: "sijaintiMaanPinnallaKytkin", Column: "sijaintimaanpinnalla_kytkin", Kind: KindSwitch},
		{Tag: "vaarallistenJateastiaKytkin", Column: "vaarallistenjateastia_kytkin", Kind: KindSwitch},
		{Tag: "jate", Column: "cid_jatetyyppi", Kind: KindEnum, Ref: "jatetyyppi"},
	}),
}

var Kaluste = EntityType{
	Schema: "varusteet", Table: "kaluste", Element: "Kaluste",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "kaluste", Column: "cid_kalustetyyppi", Kind: KindEnum, Ref: "kalustetyyppi"},
	}),
}

var Leikkivaline = EntityType{
	Schema: "varusteet", Table: "leikkivaline", Element: "Leikkivaline",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "toiminnallinenTarkastusPvm", Column: "toiminnallinentarkastus_pvm", Kind: KindPlain},
		{Tag: "vuositarkastusPvm", Column: "vuositarkastus_pvm", Kind: KindPlain},
		{Tag: "leikkivaline", Column: "cid_leikkivalinetyyppi", Kind: KindEnum, Ref: "leikkivalinetyyppi"},
	}),
}

var Liikunta = EntityType{
	Schema: "varusteet", Table: "liikunta", Element: "Liikunta",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "liikunta", Column: "cid_liikuntatyyppi", Kind: KindEnum, Ref: "liikuntatyyppi"},
	}),
}

var Melukohde = EntityType{
	Schema: "varusteet", Table: "melukohde", Element: "Melu",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "melu", Column: "cid_melutyyppi", Kind: KindEnum, Ref: "melutyyppi"},
	}),
}

var MuuVaruste = EntityType{
	Schema: "varusteet", Table: "muuvaruste", Element: "MuuVaruste",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "varustetyyppi", Column: "cid_muuvarustetyyppi", Kind: KindEnum, Ref: "muuvarustetyyppi"},
	}),
}

var Opaste = EntityType{
	Schema: "varusteet", Table: "opaste", Element: "Opaste",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "opaste", Column: "cid_opastetyyppi", Kind: KindEnum, Ref: "opastetyyppi"},
	}),
}

var Liikennemerkki = EntityType{
	Schema: "varusteet", Table: "liikennemerkki", Element: "Liikennemerkki",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "teksti", Column: "teksti", Kind: KindPlain},
		{Tag: "liikennemerkkityyppi", Column: "cid_liikennemerkkityyppi", Kind: KindEnum, Ref: "liikennemerkkityyppi"},
		{Tag: "liikennemerkkityyppi2020", Column: "cid_liikennemerkkityyppi2020", Kind: KindEnum, Ref: "liikennemerkkityyppi2020"},
	}),
}

var Puu = EntityType{
	Schema: "kasvillisuus", Table: "puu", Element: "Puu",
	LocationTag: "sijaintitieto",
	Tags: compose(groupCommon, groupKasvillisuus, []Mapping{
		{Tag: "korkeusMitta", Column: "korkeus", Kind: KindPlain},
		{Tag: "ymparysMitta", Column: "ymparys", Kind: KindPlain},
		{Tag: "puutyyppi", Column: "cid_puutyyppi", Kind: KindEnum, Ref: "puutyyppi"},
		{Tag: "puulaji", Column: "cid_puulaji", Kind: KindEnum, Ref: "puulaji"},
	}),
}

var MuuKasvi = EntityType{
	Schema: "kasvillisuus", Table: "muukasvi", Element: "MuuKasvi",
	LocationTag: "sijaintitieto",
	Tags: compose(groupCommon, groupKasvillisuus, []Mapping{
		{Tag: "kasviryhma", Column: "cid_kasviryhmatyyppi", Kind: KindEnum, Ref: "kasviryhmatyyppi"},
		{Tag: "kasvilaji", Column: "cid_kasvilaji", Kind: KindEnum, Ref: "kasvilaji"},
	}),
}

// ErikoisrakenneKerros carries its own reduced attribute set; it does not
// inherit the equipment group.
var ErikoisrakenneKerros = EntityType{
	Schema: "kohteet", Table: "erikoisrakennekerros", Element: "ErikoisrakenneKerros",
	LocationTag: "sijainti",
	Tags: compose(groupCommon, []Mapping{
		{Tag: "omistaja", Column: "omistaja", Kind: KindPlain},
		{Tag: "haltija", Column: "haltija", Kind: KindPlain},
		{Tag: "kunnossapitaja", Column: "kunnossapitaja", Kind: KindPlain},
		{Tag: "selite", Column: "erk_selite", Kind: KindPlain},
		{Tag: "materiaali", Column: "materiaali", Kind: KindPlain},
		{Tag: "tyyppi", Column: "cid_erikoisrakennekerrosmateriaalityyppi", Kind: KindEnum, Ref: "erikoisrakennekerrosmateriaalityyppi"},
		{Tag: "sijaintiepavarmuus", Column: "cid_sijaintiepavarmuustyyppi", Kind: KindOrdinalUncertainty, Ref: "sijaintiepavarmuustyyppi"},
		{Tag: "luontitapa", Column: "cid_luontitapatyyppi", Kind: KindOrdinalCreation, Ref: "luontitapatyyppi"},
		{Tag: "piste", Column: "geom_point", Kind: KindGeomPoint},
		{Tag: "viiva", Column: "geom_line", Kind: KindGeomLine},
		{Tag: "alue", Column: "geom_poly", Kind: KindGeomPoly},
	}),
}

var Hulevesi = EntityType{
	Schema: "kohteet", Table: "hulevesi", Element: "Hulevesi",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "hulevesi", Column: "cid_hulevesityyppi", Kind: KindEnum, Ref: "hulevesityyppi"},
	}),
}

var Pysakointiruutu = EntityType{
	Schema: "kohteet", Table: "pysakointiruutu", Element: "Pysakointiruutu",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "latauspisteKytkin", Column: "latauspiste_kytkin", Kind: KindSwitch},
	}),
}

var Rakenne = EntityType{
	Schema: "kohteet", Table: "rakenne", Element: "Rakenne",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "rakenne", Column: "cid_rakennetyyppi", Kind: KindEnum, Ref: "rakennetyyppi"},
	}),
}

var Ymparistotaide = EntityType{
	Schema: "kohteet", Table: "ymparistotaide", Element: "Ymparistotaide",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "ymparistotaide", Column: "cid_ymparistotaidetyyppi", Kind: KindEnum, Ref: "ymparistotaidetyyppi"},
	}),
}

var Keskilinja = EntityType{
	Schema: "katualue", Table: "keskilinja", Element: "Keskilinja",
	LocationTag: "sijainti", Direct: true,
	Tags: compose(groupCommon, []Mapping{
		{Tag: "DigiroadID", Column: "digiroadid", Kind: KindPlain},
		{Tag: "kuuluuKatualueenOsaan", Column: "fid_katualueenosa", Kind: KindAreaRef, Ref: "katualueenosa"},
		{Tag: "sijainti", Column: "geom", Kind: KindGeomDirect},
	}),
}

var Ajoratamerkinta = EntityType{
	Schema: "katualue", Table: "ajoratamerkinta", Element: "Ajoratamerkinta",
	LocationTag: "tarkkaSijaintitieto",
	Tags: compose(groupCommon, groupVaruste, []Mapping{
		{Tag: "jyrsittyPintaKytkin", Column: "jyrsittypinta_kytkin", Kind: KindSwitch},
		{Tag: "tyyppi", Column: "cid_ajoratamerkintatyyppi", Kind: KindEnum, Ref: "ajoratamerkintatyyppi"},
	}),
}

var Katualue = EntityType{
	Schema: "katualue", Table: "katualue", Element: "Katualue",
	Tags: compose(groupCommon, []Mapping{
		{Tag: "nimi", Column: "nimi", Kind: KindPlain},
		{Tag: "sisaltaaKatualueenOsan", Kind: KindContains, Ref: MemberMuu},
	}),
}

var KatualueenOsa = EntityType{
	Schema: "katualue", Table: "katualueenosa", Element: "KatualueenOsa",
	LocationTag: "sijaintitieto",
	Tags: compose(groupCommon, []Mapping{
		{Tag: "omistaja", Column: "omistaja", Kind: KindPlain},
		{Tag: "haltija", Column: "haltija", Kind: KindPlain},
		{Tag: "kunnossapitaja", Column: "kunnossapitaja", Kind: KindPlain},
		{Tag: "kunnossapito", Column: "kunnossapito", Kind: KindPlain},
		{Tag: "leveys", Column: "leveys", Kind: KindPlain},
		{Tag: "perusparannusvuosi", Column: "perusparannusvuosi", Kind: KindPlain},
		{Tag: "pintaAla", Column: "pinta_ala", Kind: KindPlain},
		{Tag: "pituus", Column: "pituus", Kind: KindPlain},
		{Tag: "puhtaanapito", Column: "puhtaanapito", Kind: KindPlain},
		{Tag: "talvikunnossapito", Column: "talvikunnossapito", Kind: KindPlain},
		{Tag: "valmistumisvuosi", Column: "valmistumisvuosi", Kind: KindPlain},
		{Tag: "kuuluuKatualueeseen", Column: "fid_katualue", Kind: KindAreaRef, Ref: "katualue"},
		{Tag: "luokka", Column: "cid_toiminnallinenluokka", Kind: KindEnum, Ref: "toiminnallinenluokka"},
		{Tag: "laji", Column: "cid_katuosanlaji", Kind: KindEnum, Ref: "katuosanlaji"},
		{Tag: "viheralueenLaji", Column: "cid_viherosanlajityyppi", Kind: KindEnum, Ref: "viherosanlajityyppi"},
		{Tag: "pintamateriaali", Column: "cid_pintamateriaali", Kind: KindEnum, Ref: "pintamateriaali"},
		{Tag: "kunnossapitoluokka", Column: "cid_hoitoluokkatyyppi", Kind: KindEnum, Ref: "hoitoluokkatyyppi"},
		{Tag: "talvihoidonLuokka", Column: "cid_talvihoidonluokka", Kind: KindEnum, Ref: "talvihoidonluokka"},
		{Tag: "sijaintiepavarmuus", Column: "cid_sijaintiepavarmuustyyppi", Kind: KindOrdinalUncertainty, Ref: "sijaintiepavarmuustyyppi"},
		{Tag: "luontitapa", Column: "cid_luontitapatyyppi", Kind: KindOrdinalCreation, Ref: "luontitapatyyppi"},
		{Tag: "osoitetieto", Column: "fid_osoite", Kind: KindAddress},
		{Tag: "suunnitelmalinkkitieto", Kind: KindPlanLink},
		{Tag: "paatostieto", Kind: KindDecree},
		{Tag: "alue", Column: "geom", Kind: KindGeomPoly},
		{Tag: "sisaltaaKeskilinja", Kind: KindContains, Ref: MemberKeskilinja},
		{Tag: "sisaltaaKasvillisuus", Kind: KindContains, Ref: MemberKasvillisuus},
		{Tag: "sisaltaaVaruste", Kind: KindContains, Ref: MemberMuu},
	}),
}

var Viheralue = EntityType{
	Schema: "viheralue", Table: "viheralue", Element: "Viheralue",
	Tags: compose(groupCommon, []Mapping{
		{Tag: "nimi", Column: "nimi", Kind: KindPlain},
		{Tag: "sisaltaaViheralueenOsan", Kind: KindContains, Ref: MemberMuu},
	}),
}

var ViheralueenOsa = EntityType{
	Schema: "viheralue", Table: "viheralueenosa", Element: "ViheralueenOsa",
	LocationTag: "sijaintitieto",
	Tags: compose(groupCommon, []Mapping{
		{Tag: "omistaja", Column: "omistaja", Kind: KindPlain},
		{Tag: "haltija", Column: "haltija", Kind: KindPlain},
		{Tag: "kunnossapitaja", Column: "kunnossapitaja", Kind: KindPlain},
		{Tag: "perusparannusvuosi", Column: "perusparannusvuosi", Kind: KindPlain},
		{Tag: "valmistumisvuosi", Column: "valmistumisvuosi", Kind: KindPlain},
		{Tag: "suojelualuekytkin", Column: "suojelualuekytkin", Kind: KindSwitch},
		{Tag: "kuuluuViheralueeseen", Column: "fid_viheralue", Kind: KindAreaRef, Ref: "viheralue"},
		{Tag: "kayttotarkoitus", Column: "cid_viheralueenkayttotarkoitus", Kind: KindEnum, Ref: "viheralueenkayttotarkoitus"},
		{Tag: "laji", Column: "cid_viherosanlajityyppi", Kind: KindEnum, Ref: "viherosanlajityyppi"},
		{Tag: "hoitoluokka", Column: "cid_hoitoluokkatyyppi", Kind: KindEnum, Ref: "hoitoluokkatyyppi"},
		{Tag: "katualueenLaji", Column: "cid_katuosanlaji", Kind: KindEnum, Ref: "katuosanlaji"},
		{Tag: "talvihoidonLuokka", Column: "cid_talvihoidonluokka", Kind: KindEnum, Ref: "talvihoidonluokka"},
		{Tag: "puhtaanapitoluokka", Column: "cid_puhtaanapitoluokkatyyppi", Kind: KindEnum, Ref: "puhtaanapitoluokkatyyppi"},
		{Tag: "muutoshoitoluokka", Column: "cid_muutoshoitoluokkatyyppi", Kind: KindEnum, Ref: "muutoshoitoluokkatyyppi"},
		{Tag: "sijaintiepavarmuus", Column: "cid_sijaintiepavarmuustyyppi", Kind: KindOrdinalUncertainty, Ref: "sijaintiepavarmuustyyppi"},
		{Tag: "luontitapa", Column: "cid_luontitapatyyppi", Kind: KindOrdinalCreation, Ref: "luontitapatyyppi"},
		{Tag: "osoitetieto", Column: "fid_osoite", Kind: KindAddress},
		{Tag: "suunnitelmalinkkitieto", Kind: KindPlanLink},
		{Tag: "alue", Column: "geom", Kind: KindGeomPoly},
		{Tag: "sisaltaaKasvillisuus", Kind: KindContains, Ref: MemberKasvillisuus},
		{Tag: "sisaltaaVaruste", Kind: KindContains, Ref: MemberMuu},
	}),
}
