package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/finrecords/financial-records-api/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.Client{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestClassifyNil(t *testing.T) {
	if Classify(nil) != nil {
		t.Fatalf("nil error must classify to nil")
	}
}

func TestClassifyPostgresUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:    "23505",
		Message: `duplicate key value violates unique constraint "idx_clients_client_code"`,
	})

	dbErr := Classify(err)
	if !dbErr.Duplicate || dbErr.ForeignKey {
		t.Fatalf("expected duplicate flag only: %#v", dbErr)
	}
	if dbErr.Code != "23505" || dbErr.SQLState != "23505" {
		t.Fatalf("sqlstate not carried: %#v", dbErr)
	}
}

func TestClassifyPostgresForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}

	dbErr := Classify(err)
	if !dbErr.ForeignKey || dbErr.Duplicate {
		t.Fatalf("expected foreign-key flag only: %#v", dbErr)
	}
}

func TestClassifyTranslatedDuplicate(t *testing.T) {
	dbErr := Classify(gorm.ErrDuplicatedKey)
	if !dbErr.Duplicate {
		t.Fatalf("translated duplicate not flagged: %#v", dbErr)
	}
}

func TestClassifyGenericError(t *testing.T) {
	dbErr := Classify(errors.New("connection refused"))
	if dbErr.Duplicate || dbErr.ForeignKey {
		t.Fatalf("generic error must carry no flags: %#v", dbErr)
	}
	if dbErr.Message != "connection refused" {
		t.Fatalf("message lost: %#v", dbErr)
	}
}

func TestClassifyRealUniqueViolation(t *testing.T) {
	gdb := openTestDB(t)

	first := models.Client{ClientCode: "AC001", FirstName: "Ana", LastName: "Ruiz", IsActive: true}
	if err := gdb.Create(&first).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	dup := models.Client{ClientCode: "AC001", FirstName: "Otra", LastName: "Cliente", IsActive: true}
	err := gdb.Create(&dup).Error
	if err == nil {
		t.Fatalf("expected unique violation")
	}
	if dbErr := Classify(err); !dbErr.Duplicate {
		t.Fatalf("real duplicate not flagged: %#v", dbErr)
	}
}

func TestTransactCommitsOnSuccess(t *testing.T) {
	gdb := openTestDB(t)

	dbErr := Transact(gdb, func(tx *gorm.DB) error {
		if err := tx.Create(&models.Client{ClientCode: "AC001", FirstName: "Ana", LastName: "Ruiz", IsActive: true}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Client{ClientCode: "AC002", FirstName: "Luis", LastName: "Mora", IsActive: true}).Error
	})
	if dbErr != nil {
		t.Fatalf("transact: %v", dbErr)
	}

	var count int64
	gdb.Model(&models.Client{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 rows, got %d", count)
	}
}

func TestTransactRollsBackOnFailure(t *testing.T) {
	gdb := openTestDB(t)

	dbErr := Transact(gdb, func(tx *gorm.DB) error {
		if err := tx.Create(&models.Client{ClientCode: "AC001", FirstName: "Ana", LastName: "Ruiz", IsActive: true}).Error; err != nil {
			return err
		}
		// Second statement violates the unique index; the first insert
		// must be rolled back with it.
		return tx.Create(&models.Client{ClientCode: "AC001", FirstName: "Otra", LastName: "Cliente", IsActive: true}).Error
	})
	if dbErr == nil || !dbErr.Duplicate {
		t.Fatalf("expected duplicate-flagged error, got %#v", dbErr)
	}

	var count int64
	gdb.Model(&models.Client{}).Count(&count)
	if count != 0 {
		t.Fatalf("rollback failed, %d rows persisted", count)
	}
}
