package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"pasteleria-mil-sabores/internal/db"
	"pasteleria-mil-sabores/internal/domain"
	"pasteleria-mil-sabores/internal/migrate"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenInMemory(context.Background(), fmt.Sprintf("prefs_%s", t.Name()))
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := migrate.Apply(conn); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return conn
}

func TestSetGetRoundTrip(t *testing.T) {
	store := New(newTestDB(t))
	ctx := context.Background()

	if err := store.Set(ctx, KeySessionEmail, "ana@milsabores.cl"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, KeySessionEmail)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "ana@milsabores.cl" {
		t.Errorf("Get = %q", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := New(newTestDB(t))
	ctx := context.Background()

	if err := store.Set(ctx, KeyCurrentUserID, "u-1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, KeyCurrentUserID, "u-2"); err != nil {
		t.Fatalf("Set again: %v", err)
	}
	got, err := store.Get(ctx, KeyCurrentUserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "u-2" {
		t.Errorf("Get = %q, want latest value", got)
	}
}

func TestGetUnsetKey(t *testing.T) {
	store := New(newTestDB(t))

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	store := New(newTestDB(t))
	ctx := context.Background()

	if err := store.Set(ctx, KeySessionEmail, "ana@milsabores.cl"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete(ctx, KeySessionEmail); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, KeySessionEmail); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetBoolDefaultsFalse(t *testing.T) {
	store := New(newTestDB(t))
	ctx := context.Background()

	got, err := store.GetBool(ctx, KeyLoggedIn)
	if err != nil {
		t.Fatalf("GetBool: %v", err)
	}
	if got {
		t.Error("unset bool pref must read as false")
	}

	if err := store.SetBool(ctx, KeyLoggedIn, true); err != nil {
		t.Fatalf("SetBool: %v", err)
	}
	got, err = store.GetBool(ctx, KeyLoggedIn)
	if err != nil {
		t.Fatalf("GetBool: %v", err)
	}
	if !got {
		t.Error("SetBool(true) not read back")
	}
}
