package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Connect opens the SQLite database and configures the connection pool.
//
// The returned handle is the only one the process uses. It is handed to the
// components that need it instead of being kept as package state.
func Connect(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log,
		},
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	// WAL mode allows concurrent readers while a write transaction is open.
	dsn = fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", dsn)

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	// Query callbacks
	err = db.Callback().Query().After("*").Register("spendledger:after_query", queryCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Query().After("*").Register("spendledger:after_query_general", generalCallback(log))
	if err != nil {
		return nil, err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("spendledger:after_create", createUpdateCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Create().After("*").Register("spendledger:after_create_general", generalCallback(log))
	if err != nil {
		return nil, err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("spendledger:after_update", createUpdateCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Update().After("*").Register("spendledger:after_update_general", generalCallback(log))
	if err != nil {
		return nil, err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("spendledger:after_delete_general", generalCallback(log))
	if err != nil {
		return nil, err
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		return
	}

	// Use the table name as information about the type of resource
	// and remove the plural "s"
	name := strings.TrimRight(db.Statement.Table, "s")

	db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "CHECK constraint failed: expense_amount_positive") {
		db.Error = ErrAmountNotPositive
	}

	if strings.Contains(db.Error.Error(), "CHECK constraint failed: expense_description_length") {
		db.Error = ErrDescriptionTooLong
	}

	if strings.Contains(db.Error.Error(), "CHECK constraint failed: budget_limit_non_negative") {
		db.Error = ErrLimitNegative
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(log zerolog.Logger) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error == nil {
			return
		}

		// "sql: database is closed" is hard-coded in the sql module, see
		// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
		if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
			// A general error where we cannot provide more useful information to the
			// end user. We log the error so that server admins can debug.
			log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
			db.Error = ErrGeneral

			return
		}
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Expense{}, Budget{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
