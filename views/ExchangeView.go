package views

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/GrainArc/InfraoMap/exporter"
	"github.com/GrainArc/InfraoMap/importer"
	"github.com/GrainArc/InfraoMap/models"
	"github.com/gin-gonic/gin"
)

type UserController struct {
}

type ExchangeRequest struct {
	models.ConnParams
	File     string            `json:"file"`
	Shipment map[string]string `json:"shipment"`
}

// ImportXML reads one exchange document into the database named in the
// request. Connection values missing from the request fall back to
// config.xml.
func (uc *UserController) ImportXML(c *gin.Context) {
	var req ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "message": "invalid request: " + err.Error()})
		return
	}
	if req.File == "" {
		c.JSON(http.StatusOK, gin.H{"code": 400, "message": "file is required"})
		return
	}

	doc, err := importer.LoadDocument(req.File)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			c.JSON(http.StatusOK, gin.H{"code": 404, "message": "file not found: " + req.File})
		case os.IsPermission(err):
			c.JSON(http.StatusOK, gin.H{"code": 403, "message": "file not readable: " + req.File})
		case errors.Is(err, importer.ErrDocumentUnreadable):
			c.JSON(http.StatusOK, gin.H{"code": 422, "message": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"code": 500, "message": err.Error()})
		}
		return
	}

	db, err := models.Connect(req.ConnParams)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 500, "message": err.Error()})
		return
	}
	defer models.Close(db)

	start := time.Now()
	count, err := importer.Run(db, doc)
	rec := &models.ExchangeRecord{
		Direction: "import",
		File:      req.File,
		Dbname:    req.Dbname,
		Features:  count,
		Seconds:   time.Since(start).Seconds(),
	}
	if err != nil {
		rec.Outcome = err.Error()
		models.SaveExchangeRecord(rec)
		c.JSON(http.StatusOK, gin.H{"code": 500, "message": err.Error(), "features": count})
		return
	}
	rec.Outcome = "ok"
	models.SaveExchangeRecord(rec)
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "import completed", "features": count, "seconds": rec.Seconds})
}

// ExportXML writes the whole database as one exchange document and
// records the shipment as delivered.
func (uc *UserController) ExportXML(c *gin.Context) {
	var req ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 400, "message": "invalid request: " + err.Error()})
		return
	}
	if req.File == "" {
		c.JSON(http.StatusOK, gin.H{"code": 400, "message": "file is required"})
		return
	}

	db, err := models.Connect(req.ConnParams)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"code": 500, "message": err.Error()})
		return
	}
	defer models.Close(db)

	start := time.Now()
	count, err := exporter.Run(db, req.File, exporter.Shipment(req.Shipment))
	rec := &models.ExchangeRecord{
		Direction: "export",
		File:      req.File,
		Dbname:    req.Dbname,
		Features:  count,
		Seconds:   time.Since(start).Seconds(),
	}
	if err != nil {
		rec.Outcome = err.Error()
		models.SaveExchangeRecord(rec)
		c.JSON(http.StatusOK, gin.H{"code": 500, "message": err.Error(), "features": count})
		return
	}
	rec.Outcome = "ok"
	models.SaveExchangeRecord(rec)
	c.JSON(http.StatusOK, gin.H{"code": 200, "message": "export completed", "features": count, "file": req.File, "seconds": rec.Seconds})
}

// GetExchangeRecords lists past runs from the local log, newest first.
func (uc *UserController) GetExchangeRecords(c *gin.Context) {
	var records []models.ExchangeRecord
	if models.LogDB != nil {
		models.LogDB.Order("id DESC").Limit(200).Find(&records)
	}
	c.JSON(http.StatusOK, gin.H{"code": 200, "data": records})
}
