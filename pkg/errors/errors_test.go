package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 fallback, got %d", meta.HTTPStatus)
	}
}

func TestDependencyErrorsMapTo500(t *testing.T) {
	meta := MetadataFor(CodeDependency)
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 for store failures, got %d", meta.HTTPStatus)
	}
	if meta.Expose {
		t.Fatal("store failure messages must stay generic")
	}
}

func TestAsFindsWrappedError(t *testing.T) {
	typed := New(CodeNotFound, "order not found")
	wrapped := fmt.Errorf("lookup: %w", typed)

	got := As(wrapped)
	if got == nil || got.Code() != CodeNotFound {
		t.Fatalf("expected typed error in chain, got %v", got)
	}
	if !IsCode(wrapped, CodeNotFound) {
		t.Fatal("IsCode should match wrapped code")
	}
	if IsCode(fmt.Errorf("plain"), CodeNotFound) {
		t.Fatal("IsCode should not match untyped errors")
	}
}

func TestDumpCapturesPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42P01", Message: "relation \"orders\" does not exist", TableName: "orders"}
	err := Wrap(CodeDependency, pgErr, "list orders")

	dump := Dump(err)
	if dump.Code != CodeDependency {
		t.Fatalf("expected dependency code, got %s", dump.Code)
	}
	if dump.PGCode != "42P01" || dump.PGTable != "orders" {
		t.Fatalf("pg fields not captured: %+v", dump)
	}
	if len(dump.Chain) < 2 {
		t.Fatalf("expected wrapped chain entries, got %v", dump.Chain)
	}

	fields := dump.Fields()
	if fields["pg_code"] != "42P01" {
		t.Fatalf("expected pg_code field, got %v", fields["pg_code"])
	}
	if _, ok := fields["pg_detail"]; ok {
		t.Fatal("empty pg fields should be omitted")
	}
}
