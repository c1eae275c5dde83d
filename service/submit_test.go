package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gaolamthuy/admin-sub000/config"
	"github.com/gaolamthuy/admin-sub000/models"
)

func draftWithSelection() *Draft {
	bag50 := models.ChildUnit{Unit: "bag50", ConversionValue: 50, KiotvietID: 200}
	d := NewDraft()
	d.SetSupplier(&models.Supplier{
		KiotvietID:    10,
		Name:          "Rice Supplier",
		Code:          "NCC10",
		ContactNumber: "0900000000",
		Address:       "Ha Noi",
		BranchID:      3,
	})
	d.AutoSelectAll(10, []models.TemplateProduct{
		tmplWithUnit(1, "P1", 3),
		tmplWithUnit(2, "P2", 2, bag50),
	})
	return d
}

func TestBuildSubmission_NormalizesToMasterUnit(t *testing.T) {
	d := draftWithSelection()

	payload, err := BuildSubmission(d, "test order", false)
	if err != nil {
		t.Fatalf("BuildSubmission failed: %v", err)
	}

	if payload.BranchID != 3 {
		t.Errorf("branch id = %d, want 3", payload.BranchID)
	}
	if payload.Supplier.ID != 10 || payload.Supplier.Code != "NCC10" {
		t.Errorf("supplier ref = %+v", payload.Supplier)
	}
	if len(payload.PurchaseOrderDetails) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(payload.PurchaseOrderDetails))
	}

	// P1 has no child unit: quantity passes through. P2 is 2 x bag50 = 100.
	if q := payload.PurchaseOrderDetails[0].Quantity; q != 3 {
		t.Errorf("P1 quantity = %v, want 3", q)
	}
	if q := payload.PurchaseOrderDetails[1].Quantity; q != 100 {
		t.Errorf("P2 quantity = %v, want 100", q)
	}
}

func TestBuildSubmission_Validation(t *testing.T) {
	if _, err := BuildSubmission(NewDraft(), "", false); !errors.Is(err, ErrNoSupplier) {
		t.Errorf("no supplier: err = %v, want ErrNoSupplier", err)
	}

	d := NewDraft()
	d.SetSupplier(supplier(10))
	if _, err := BuildSubmission(d, "", false); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("empty selection: err = %v, want ErrEmptySelection", err)
	}
}

func TestWebhookClient_Submit(t *testing.T) {
	var gotPath, gotAuth, gotCustom string
	var gotPayload models.SubmissionPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCustom = r.Header.Get("X-Workflow-Key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebhookClient(config.WebhookConfig{
		BaseURL:     srv.URL,
		BasicToken:  "dXNlcjpwYXNz",
		HeaderName:  "X-Workflow-Key",
		HeaderValue: "k1",
		Timeout:     5 * time.Second,
	})

	payload, err := BuildSubmission(draftWithSelection(), "order", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := client.Submit(context.Background(), payload); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if gotPath != "/handle-frontend" {
		t.Errorf("path = %q, want /handle-frontend", gotPath)
	}
	if gotAuth != "Basic dXNlcjpwYXNz" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotCustom != "k1" {
		t.Errorf("custom header = %q, want k1", gotCustom)
	}
	if len(gotPayload.PurchaseOrderDetails) != 2 {
		t.Errorf("server saw %d lines, want 2", len(gotPayload.PurchaseOrderDetails))
	}
}

func TestWebhookClient_Submit_Non2xxSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("workflow exploded"))
	}))
	defer srv.Close()

	client := NewWebhookClient(config.WebhookConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})

	d := draftWithSelection()
	payload, err := BuildSubmission(d, "order", false)
	if err != nil {
		t.Fatal(err)
	}

	err = client.Submit(context.Background(), payload)
	var subErr *SubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("err = %v, want *SubmissionError", err)
	}
	if subErr.StatusCode != 500 {
		t.Errorf("status = %d, want 500", subErr.StatusCode)
	}
	if subErr.Body != "workflow exploded" {
		t.Errorf("body = %q, want raw response body", subErr.Body)
	}

	// the draft is untouched so the user can retry
	if d.Len() != 2 {
		t.Errorf("selection size after failed submit = %d, want 2", d.Len())
	}
}

func TestWebhookClient_Submit_NetworkError(t *testing.T) {
	client := NewWebhookClient(config.WebhookConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Timeout: time.Second,
	})
	payload, err := BuildSubmission(draftWithSelection(), "order", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := client.Submit(context.Background(), payload); err == nil {
		t.Fatal("expected a network error")
	}
}
