package service

import (
	"context"
	"testing"

	"github.com/gaolamthuy/admin-sub000/models"
)

func TestDedupeTemplates_KeepsFirstSeen(t *testing.T) {
	rows := []models.TemplateProduct{
		{ProductID: 1, ProductCode: "P1", OrderCount: 9},
		{ProductID: 2, ProductCode: "P2", OrderCount: 7},
		{ProductID: 1, ProductCode: "P1-dup", OrderCount: 3},
		{ProductID: 3, ProductCode: "P3", OrderCount: 2},
		{ProductID: 2, ProductCode: "P2-dup", OrderCount: 1},
	}

	out := dedupeTemplates(rows)
	if len(out) != 3 {
		t.Fatalf("expected 3 distinct products, got %d", len(out))
	}
	wantIDs := []int64{1, 2, 3}
	wantCodes := []string{"P1", "P2", "P3"}
	for i := range out {
		if out[i].ProductID != wantIDs[i] {
			t.Errorf("out[%d].ProductID = %d, want %d", i, out[i].ProductID, wantIDs[i])
		}
		if out[i].ProductCode != wantCodes[i] {
			t.Errorf("out[%d].ProductCode = %q, want %q (first occurrence wins)", i, out[i].ProductCode, wantCodes[i])
		}
	}
}

func TestDedupeTemplates_DropsMissingProductID(t *testing.T) {
	rows := []models.TemplateProduct{
		{ProductID: 0, ProductCode: "broken"},
		{ProductID: 1, ProductCode: "P1"},
	}
	out := dedupeTemplates(rows)
	if len(out) != 1 || out[0].ProductID != 1 {
		t.Fatalf("rows without product id must be dropped: %+v", out)
	}
}

func TestFetchTemplates_ZeroSupplier(t *testing.T) {
	// A zero supplier id short-circuits before the database is touched, so a
	// nil-db service is fine here.
	s := NewCatalogService(nil)
	out, err := s.FetchTemplates(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}
