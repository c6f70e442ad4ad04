package database

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

var ErrUnsupportedDriver = gorm.ErrInvalidDB

type Opts struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.DSN)
	case "mysql":
		// 运维侧偶尔贴过来 JDBC 形式的地址，直接兼容掉
		dial = mysql.Open(strings.TrimPrefix(o.DSN, "jdbc:"))
	default:
		return nil, ErrUnsupportedDriver
	}
	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)
	db = db.Session(&gorm.Session{
		PrepareStmt:            true, // 预编译缓存，提高 QPS
		SkipDefaultTransaction: true, // 只在需要时手动开 Tx
	})
	return db, nil
}

// EnsureContactSearchIndex 建联系人全文索引，按方言出 DDL。
// 幂等：已存在时忽略报错。
func EnsureContactSearchIndex(db *gorm.DB) error {
	var ddl string
	switch db.Dialector.Name() {
	case "mysql":
		ddl = "CREATE FULLTEXT INDEX idx_contact_books_search ON contact_books (firstname, lastname, phone, email, address)"
	case "postgres":
		ddl = "CREATE INDEX IF NOT EXISTS idx_contact_books_search ON contact_books USING GIN (" +
			"to_tsvector('simple', coalesce(firstname,'') || ' ' || coalesce(lastname,'') || ' ' || " +
			"coalesce(phone,'') || ' ' || coalesce(email,'') || ' ' || coalesce(address,'')))"
	default:
		return ErrUnsupportedDriver
	}
	if err := db.Exec(ddl).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "already exists") {
			return nil
		}
		return err
	}
	return nil
}

// IsDuplicateKey 唯一约束冲突判断；不依赖 gorm.ErrDuplicatedKey，避免驱动差异
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
