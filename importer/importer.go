package importer

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/GrainArc/InfraoMap/mappings"
	"github.com/beevik/etree"
	"gorm.io/gorm"
)

// ErrDocumentUnreadable marks a file that parsed as no usable feature
// collection.
var ErrDocumentUnreadable = errors.New("document unreadable")

var collectionTags = map[string]bool{
	"featureMembers": true,
	"member":         true,
	"featureMember":  true,
}

// LoadDocument reads and validates an exchange document. File access
// errors come back untouched so callers can distinguish them.
func LoadDocument(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	if err := checkDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func checkDocument(doc *etree.Document) error {
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%w: no root element", ErrDocumentUnreadable)
	}
	if localName(root.Tag) == "InfraoKohteet" {
		return nil
	}
	found := false
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if found {
			return
		}
		for _, child := range el.ChildElements() {
			if collectionTags[localName(child.Tag)] {
				found = true
				return
			}
			walk(child)
		}
	}
	walk(root)
	if !found {
		return fmt.Errorf("%w: no feature collection found", ErrDocumentUnreadable)
	}
	return nil
}

// Run imports a document in dependency order: areas first so their parts
// can resolve kuuluu references, parts next for the leaf features, and the
// side tables last once every primary key exists. There is no cross-pass
// transaction; a failing pass leaves earlier passes in place.
func Run(db *gorm.DB, doc *etree.Document) (int, error) {
	start := time.Now()
	log.Println("========================================XML IMPORT STARTED========================================")

	linked := NewLinkedResolver(db)
	ex := &Extractor{
		Enums:       NewEnumResolver(db),
		Attachments: linked,
		Addresses:   linked,
		Projector:   dbReprojector{db: db},
	}

	total := 0

	count, err := runPass(db, doc, ex, mappings.AreaTables)
	if err != nil {
		return total, err
	}
	total += count

	if ex.Areas, err = LoadAreaIndex(db); err != nil {
		return total, err
	}

	count, err = runPass(db, doc, ex, mappings.AreaPartTables)
	if err != nil {
		return total, err
	}
	total += count

	if ex.Areas, err = LoadAreaIndex(db); err != nil {
		return total, err
	}

	count, err = runPass(db, doc, ex, mappings.LeafTables)
	if err != nil {
		return total, err
	}
	total += count

	if err := linked.AddPlanLinks(ex.PlanLinks); err != nil {
		return total, err
	}
	if err := linked.AddDecrees(ex.Decrees); err != nil {
		return total, err
	}
	if err := ImportShipment(db, doc); err != nil {
		return total, err
	}

	log.Println("========================================XML IMPORT ENDED  ========================================")
	log.Printf("TIME ELAPSED: %.2f seconds.", time.Since(start).Seconds())
	return total, nil
}

func runPass(db *gorm.DB, doc *etree.Document, ex *Extractor, pass []mappings.EntityType) (int, error) {
	count := 0
	for _, e := range pass {
		features := FindFeatures(doc, e.Element)
		if len(features) == 0 {
			continue
		}
		records := ex.Extract(features, e)
		if err := BatchInsert(db, e, records); err != nil {
			return count, err
		}
		count += len(records)
	}
	return count, nil
}

// ImportShipment stores the document's toimituksentiedot block in
// meta.aineistotoimituksentiedot. A document without one is fine.
func ImportShipment(db *gorm.DB, doc *etree.Document) error {
	root := doc.Root()
	if root == nil {
		return nil
	}
	var shipment *etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if shipment != nil {
			return
		}
		for _, child := range el.ChildElements() {
			if localName(child.Tag) == "toimituksentiedot" {
				shipment = child
				return
			}
			walk(child)
		}
	}
	walk(root)
	if shipment == nil {
		return nil
	}

	var columns []string
	var args []any
	for _, field := range grandchildren(shipment, "") {
		tag := localName(field.Tag)
		for _, m := range mappings.ToimitusTags {
			if m.Tag == tag {
				columns = append(columns, m.Column)
				args = append(args, textOrNil(field))
			}
		}
	}
	if len(columns) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	sql := fmt.Sprintf("INSERT INTO meta.aineistotoimituksentiedot (%s) VALUES (%s)",
		strings.Join(columns, ", "), placeholders)
	if err := db.Exec(sql, args...).Error; err != nil {
		return fmt.Errorf("inserting shipment information: %w", err)
	}
	return nil
}
