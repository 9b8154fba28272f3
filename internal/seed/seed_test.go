package seed

import (
	"context"
	"fmt"
	"testing"

	"pasteleria-mil-sabores/internal/db"
	"pasteleria-mil-sabores/internal/migrate"
	productrepo "pasteleria-mil-sabores/internal/repository/product"
)

func newTestRepo(t *testing.T) productrepo.Repository {
	t.Helper()
	conn, err := db.OpenInMemory(context.Background(), fmt.Sprintf("seed_%s", t.Name()))
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := migrate.Apply(conn); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return productrepo.NewSQLite(conn)
}

func TestApplyIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := Apply(ctx, repo); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := Apply(ctx, repo); err != nil {
		t.Fatalf("Apply again: %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != len(defaultCatalog) {
		t.Errorf("count = %d, want %d", n, len(defaultCatalog))
	}
}

func TestApplyIfEmptyKeepsEdits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := ApplyIfEmpty(ctx, repo); err != nil {
		t.Fatalf("ApplyIfEmpty: %v", err)
	}

	// Simulate a running instance's price edit, then reseed.
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	edited := list[0]
	edited.PriceCents = 99990
	if err := repo.Upsert(ctx, edited); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := ApplyIfEmpty(ctx, repo); err != nil {
		t.Fatalf("ApplyIfEmpty again: %v", err)
	}
	got, err := repo.GetByID(ctx, edited.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PriceCents != 99990 {
		t.Errorf("reseed overwrote edit: price = %d", got.PriceCents)
	}
}
