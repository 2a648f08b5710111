package models

import (
	"log"
	"os"
	"path/filepath"

	"github.com/GrainArc/InfraoMap/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var LogDB *gorm.DB

// InitDB opens the local run log. Postgres handles are opened per request
// from the parameters each exchange call carries, so startup needs no
// reachable database server.
func InitDB() {
	if err := initLogDB(); err != nil {
		log.Printf("Failed to open exchange log database: %v", err)
	}
}

// initLogDB opens the local SQLite database that records every
// import and export run.
func initLogDB() error {
	StoragePath := config.Download
	if StoragePath == "" {
		StoragePath = "."
	}
	if err := os.MkdirAll(StoragePath, os.ModePerm); err != nil {
		return err
	}
	dbPath := filepath.Join(StoragePath, "exchange.db")

	var err error
	LogDB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	return LogDB.AutoMigrate(&ExchangeRecord{})
}
