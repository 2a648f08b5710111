package models

import (
	"errors"
	"fmt"

	"github.com/GrainArc/InfraoMap/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// ErrDatabaseUnavailable marks a failed connection attempt so callers can
// tell it apart from document errors.
var ErrDatabaseUnavailable = errors.New("database unavailable")

// ConnParams carries the connection values a request may override.
// Empty fields fall back to the config.xml defaults.
type ConnParams struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Dbname   string `json:"dbname"`
	User     string `json:"user"`
	Password string `json:"password"`
}

func (p ConnParams) withDefaults() ConnParams {
	if p.Host == "" {
		p.Host = config.MainConfig.Host
	}
	if p.Port == "" {
		p.Port = config.MainConfig.Port
	}
	if p.Dbname == "" {
		p.Dbname = config.MainConfig.Dbname
	}
	if p.User == "" {
		p.User = config.MainConfig.Username
	}
	if p.Password == "" {
		p.Password = config.MainConfig.Password
	}
	return p
}

func (p ConnParams) DSN() string {
	p = p.withDefaults()
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC", p.Host, p.User, p.Password, p.Dbname, p.Port)
}

// Connect opens a dedicated handle for one exchange run.
func Connect(params ConnParams) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(params.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}
	db.NamingStrategy = schema.NamingStrategy{
		SingularTable: true,
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}
	return db, nil
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
