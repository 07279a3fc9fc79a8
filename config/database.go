package config

import (
	"fmt"
	"log"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"retail-api/models"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// DSN builds the MySQL connection string for cfg.
func (c Config) DSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.DBUser
	dsn.Passwd = c.DBPass
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort))
	dsn.DBName = c.DBName
	dsn.ParseTime = true
	dsn.Loc = time.UTC
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}

// GormConfig is shared by the MySQL connection and the test databases.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.Open(cfg.DSN()), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	log.Printf("database connected: %s@%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBName)
	return db, nil
}

// Migrate creates or updates every table. Parents go first so foreign keys
// resolve.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Product{},
		&models.Employee{},
		&models.Sale{},
		&models.Expense{},
		&models.Payroll{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
