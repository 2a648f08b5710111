package importer

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/GrainArc/InfraoMap/mappings"
	"gorm.io/gorm"
)

// Attachment holds one linkit.liite row keyed by column name.
type Attachment map[string]any

// Decree is a pending linkit.paatos row. The owning street area part is
// referenced by its natural identifier because the fid is generated only
// once the part's pass has run.
type Decree struct {
	Kuvaus          any
	Paivamaara      any
	OwnerIdentifier string
	Attachments     []Attachment
}

// PlanLink is a pending linkit.suunnitelmalinkki row. Column discriminates
// the owning table.
type PlanLink struct {
	SuunnitelmakohdeID any
	FidLiite           any
	Table              string
	OwnerIdentifier    string
}

// AttachmentStore resolves attachments while features are still being
// extracted.
type AttachmentStore interface {
	EnsureAttachment(att Attachment) (int64, error)
}

// AddressStore resolves inline addresses to osoite.osoite keys.
type AddressStore interface {
	EnsureAddress(values map[string]any) (int64, error)
}

// LinkedResolver carries the select-or-insert logic for the side tables in
// the linkit and osoite schemas.
type LinkedResolver struct {
	DB *gorm.DB
}

func NewLinkedResolver(db *gorm.DB) *LinkedResolver {
	return &LinkedResolver{DB: db}
}

func attachmentColumns() []string {
	cols := make([]string, 0, len(mappings.LiiteTags))
	for _, m := range mappings.LiiteTags {
		cols = append(cols, m.Column)
	}
	return cols
}

// EnsureAttachment returns the fid of a matching linkit.liite row,
// inserting one when no row matches on every column.
func (r *LinkedResolver) EnsureAttachment(att Attachment) (int64, error) {
	return r.ensureAttachmentWith(att, attachmentColumns())
}

func (r *LinkedResolver) ensureAttachmentWith(att Attachment, columns []string) (int64, error) {
	conds := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		conds = append(conds, fmt.Sprintf("%s = ?", col))
		args = append(args, att[col])
	}
	selectSQL := fmt.Sprintf("SELECT fid FROM linkit.liite WHERE %s", strings.Join(conds, " AND "))

	var fid int64
	row := r.DB.Raw(selectSQL, args...).Row()
	err := row.Scan(&fid)
	if err == nil {
		return fid, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("selecting attachment: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insertSQL := fmt.Sprintf("INSERT INTO linkit.liite (%s) VALUES (%s) RETURNING fid", strings.Join(columns, ", "), placeholders)
	row = r.DB.Raw(insertSQL, args...).Row()
	if err := row.Scan(&fid); err != nil {
		return 0, fmt.Errorf("inserting attachment: %w", err)
	}
	return fid, nil
}

// AddDecrees inserts decree rows deduplicated on description, date and
// owning street area part, then links their attachments through id_paatos.
func (r *LinkedResolver) AddDecrees(decrees []Decree) error {
	for _, decree := range decrees {
		selectSQL := `SELECT id FROM linkit.paatos
			WHERE kuvaus = ? AND paivamaarapvm = ?
			AND fid_katualueenosa = (SELECT fid FROM katualue.katualueenosa WHERE identifier = ? LIMIT 1)`

		var decreeID int64
		row := r.DB.Raw(selectSQL, decree.Kuvaus, decree.Paivamaara, decree.OwnerIdentifier).Row()
		err := row.Scan(&decreeID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("selecting decree: %w", err)
		}
		if errors.Is(err, sql.ErrNoRows) {
			insertSQL := `INSERT INTO linkit.paatos (kuvaus, paivamaarapvm, fid_katualueenosa)
				VALUES (?, ?, (SELECT fid FROM katualue.katualueenosa WHERE identifier = ? LIMIT 1))
				RETURNING id`
			row = r.DB.Raw(insertSQL, decree.Kuvaus, decree.Paivamaara, decree.OwnerIdentifier).Row()
			if err := row.Scan(&decreeID); err != nil {
				return fmt.Errorf("inserting decree: %w", err)
			}
		}

		columns := append(attachmentColumns(), "id_paatos")
		for _, att := range decree.Attachments {
			att["id_paatos"] = decreeID
			if _, err := r.ensureAttachmentWith(att, columns); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddPlanLinks inserts plan link rows unless an identical link already
// points at the same owner feature.
func (r *LinkedResolver) AddPlanLinks(links []PlanLink) error {
	for _, link := range links {
		e, ok := mappings.ByTable[link.Table]
		if !ok {
			return fmt.Errorf("plan link against unknown table %q", link.Table)
		}
		column := "fid_" + link.Table

		selectSQL := fmt.Sprintf(`SELECT EXISTS (
			SELECT 1 FROM linkit.suunnitelmalinkki
			WHERE suunnitelmakohdeid = ? AND fid_liite = ?
			AND %s = (SELECT fid FROM %s.%s WHERE identifier = ? LIMIT 1))`,
			column, e.Schema, e.Table)

		var exists bool
		if err := r.DB.Raw(selectSQL, link.SuunnitelmakohdeID, link.FidLiite, link.OwnerIdentifier).Scan(&exists).Error; err != nil {
			return fmt.Errorf("checking plan link: %w", err)
		}
		if exists {
			continue
		}

		insertSQL := fmt.Sprintf(`INSERT INTO linkit.suunnitelmalinkki (suunnitelmakohdeid, fid_liite, %s)
			VALUES (?, ?, (SELECT fid FROM %s.%s WHERE identifier = ? LIMIT 1))`,
			column, e.Schema, e.Table)
		if err := r.DB.Exec(insertSQL, link.SuunnitelmakohdeID, link.FidLiite, link.OwnerIdentifier).Error; err != nil {
			return fmt.Errorf("inserting plan link: %w", err)
		}
	}
	return nil
}

// EnsureAddress returns the fid of a matching osoite.osoite row, matching
// only on the attributes the document actually carried.
func (r *LinkedResolver) EnsureAddress(values map[string]any) (int64, error) {
	var conds []string
	var columns []string
	var args []any
	for _, m := range mappings.OsoiteTags {
		if m.IsGeom() {
			continue
		}
		v, ok := values[m.Column]
		if !ok || v == nil {
			continue
		}
		conds = append(conds, fmt.Sprintf("%s = ?", m.Column))
		columns = append(columns, m.Column)
		args = append(args, v)
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("address with no attributes")
	}

	selectSQL := fmt.Sprintf("SELECT fid FROM osoite.osoite WHERE %s", strings.Join(conds, " AND "))
	var fid int64
	row := r.DB.Raw(selectSQL, args...).Row()
	err := row.Scan(&fid)
	if err == nil {
		return fid, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("selecting address: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insertSQL := fmt.Sprintf("INSERT INTO osoite.osoite (%s) VALUES (%s) RETURNING fid", strings.Join(columns, ", "), placeholders)
	row = r.DB.Raw(insertSQL, args...).Row()
	if err := row.Scan(&fid); err != nil {
		return 0, fmt.Errorf("inserting address: %w", err)
	}
	return fid, nil
}
