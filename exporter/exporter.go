package exporter

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/GrainArc/InfraoMap/mappings"
	"github.com/beevik/etree"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shipment carries the delivery metadata for one export, keyed by the
// meta.aineistotoimituksentiedot column names.
type Shipment map[string]string

// Run writes the whole database as one exchange document. Tables that
// cannot be read are logged and skipped so one broken table does not sink
// the export. Returns the number of features written.
func Run(db *gorm.DB, savePath string, shipment Shipment) (int, error) {
	start := time.Now()
	log.Println("========================================XML EXPORT STARTED========================================")

	ix, err := LoadIndex(db)
	if err != nil {
		return 0, err
	}
	decrees, err := FetchDecrees(db)
	if err != nil {
		return 0, err
	}
	builder := &Builder{
		DB:        db,
		Index:     ix,
		Decrees:   decrees,
		PlanLinks: FetchPlanLinks(db),
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("infrao:InfraoKohteet")
	root.CreateAttr("xmlns:infrao", "www.infra-o.fi/infrao")
	root.CreateAttr("xmlns:gml", "http://www.opengis.net/gml/3.2")
	root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	root.CreateAttr("xmlns:xlink", "http://www.w3.org/1999/xlink")
	root.CreateAttr("xsi:schemaLocation", "www.infra-o.fi/infrao http://www.paikkatietopalvelu.fi/gml/infrao/2.0.2/infrao.xsd")
	members := root.CreateElement("gml:featureMembers")

	total := 0
	for _, e := range mappings.ExportOrder {
		features, err := FetchFeatures(db, e)
		if err != nil {
			log.Printf("skipping %s.%s: %v", e.Schema, e.Table, err)
			continue
		}
		for _, f := range features {
			builder.BuildFeature(members, e, f)
		}
		total += len(features)
	}

	if err := addShipment(db, root, shipment); err != nil {
		return total, err
	}

	doc.IndentTabs()
	if err := doc.WriteToFile(savePath); err != nil {
		return total, fmt.Errorf("writing %s: %w", savePath, err)
	}

	log.Println("========================================XML EXPORT ENDED  ========================================")
	log.Printf("TIME ELAPSED: %.2f seconds.", time.Since(start).Seconds())
	return total, nil
}

// addShipment appends the toimituksentiedot block and records the
// delivery as shipped. A missing metadata identifier gets a fresh UUID.
func addShipment(db *gorm.DB, root *etree.Element, shipment Shipment) error {
	if len(shipment) == 0 {
		return nil
	}
	if shipment["metatietotunniste"] == "" {
		shipment["metatietotunniste"] = uuid.NewString()
	}

	toimitus := root.CreateElement("infrao:toimituksentiedot").CreateElement("infrao:Toimitus")
	var columns []string
	var args []any
	for _, m := range mappings.ToimitusTags {
		v := shipment[m.Column]
		if v == "" {
			continue
		}
		toimitus.CreateElement("infrao:" + m.Tag).SetText(v)
		columns = append(columns, m.Column)
		args = append(args, v)
	}
	if len(columns) == 0 {
		return nil
	}
	columns = append(columns, "viety")
	args = append(args, true)

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	sql := fmt.Sprintf("INSERT INTO meta.aineistotoimituksentiedot (%s) VALUES (%s)",
		strings.Join(columns, ", "), placeholders)
	if err := db.Exec(sql, args...).Error; err != nil {
		return fmt.Errorf("recording shipment information: %w", err)
	}
	return nil
}
