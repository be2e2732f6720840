package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestOpenGormWithDialector_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing()

	// mysql dialector over the mocked *sql.DB
	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // don't query @@version
	})

	gdb, err := OpenGormWithDialector(dial)
	if err != nil {
		t.Fatalf("OpenGormWithDialector error: %v", err)
	}
	if gdb == nil {
		t.Fatalf("got nil gorm.DB")
	}
	if !gdb.Config.TranslateError {
		t.Fatalf("TranslateError not enabled")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("no ping"))

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	gdb, err := OpenGormWithDialector(dial)
	if err == nil {
		t.Fatalf("expected error, got nil (gdb=%v)", gdb)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDialector(t *testing.T) {
	d, err := Dialector("mysql", "u:p@tcp(h:3306)/db")
	if err != nil {
		t.Fatalf("mysql: %v", err)
	}
	if _, ok := d.(*mysql.Dialector); !ok {
		t.Fatalf("mysql dialector type = %T", d)
	}

	d, err = Dialector("postgres", "host=h user=u dbname=db")
	if err != nil {
		t.Fatalf("postgres: %v", err)
	}
	if _, ok := d.(*postgres.Dialector); !ok {
		t.Fatalf("postgres dialector type = %T", d)
	}

	if _, err := Dialector("oracle", ""); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

type lineWriter struct{ lines []string }

func (w *lineWriter) Printf(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestNewLogger_SkipsRecordNotFound(t *testing.T) {
	w := &lineWriter{}
	l := newLogger(w, logger.Warn)
	query := func() (string, int64) { return "SELECT * FROM projects WHERE quotation_id = 1", 0 }

	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	if len(w.lines) != 0 {
		t.Fatalf("record not found logged: %q", w.lines)
	}

	l.Trace(context.Background(), time.Now(), query, errors.New("connection reset"))
	if len(w.lines) != 1 {
		t.Fatalf("logged %d lines for a real error, want 1", len(w.lines))
	}
}
