package models

import (
	"log"
	"time"
)

// ExchangeRecord is one row in the local run log.
type ExchangeRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Direction string // "import" or "export"
	File      string
	Dbname    string
	Features  int
	Seconds   float64
	Outcome   string
	CreatedAt time.Time
}

func SaveExchangeRecord(rec *ExchangeRecord) {
	if LogDB == nil {
		return
	}
	if err := LogDB.Create(rec).Error; err != nil {
		log.Printf("Failed to save exchange record: %v", err)
	}
}
