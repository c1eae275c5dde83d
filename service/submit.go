package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gaolamthuy/admin-sub000/config"
	"github.com/gaolamthuy/admin-sub000/models"
)

// BuildSubmission assembles the payload the workflow webhook expects from the
// current draft. Quantities always leave the backend in the master unit:
// lines bought in a child unit are multiplied by the first child unit's
// conversion value. Rejected locally (no network call) when the draft has no
// supplier or no items.
func BuildSubmission(d *Draft, description string, isDraft bool) (models.SubmissionPayload, error) {
	var payload models.SubmissionPayload
	if d == nil || d.Supplier == nil {
		return payload, ErrNoSupplier
	}
	if d.Len() == 0 {
		return payload, ErrEmptySelection
	}

	items := d.Items()
	details := make([]models.PurchaseOrderDetail, 0, len(items))
	for _, item := range items {
		details = append(details, models.PurchaseOrderDetail{
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Quantity:    item.MasterQuantity(),
			Price:       item.Price,
			Discount:    0,
		})
	}

	return models.SubmissionPayload{
		BranchID: d.Supplier.BranchID,
		Supplier: models.SupplierRef{
			ID:            d.Supplier.KiotvietID,
			Code:          d.Supplier.Code,
			Name:          d.Supplier.Name,
			ContactNumber: d.Supplier.ContactNumber,
			Address:       d.Supplier.Address,
		},
		PurchaseOrderDetails: details,
		Description:          description,
		IsDraft:              isDraft,
	}, nil
}

// WebhookClient dispatches submission payloads to the workflow engine.
type WebhookClient struct {
	client *http.Client
	cfg    config.WebhookConfig
}

func NewWebhookClient(cfg config.WebhookConfig) *WebhookClient {
	return &WebhookClient{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

// Submit POSTs the payload to <base>/handle-frontend. A non-2xx status comes
// back as *SubmissionError carrying the raw response body; the caller keeps
// the draft so the user can retry. No retry or idempotency key here: a retry
// after an ambiguous failure re-sends the full payload.
func (w *WebhookClient) Submit(ctx context.Context, payload models.SubmissionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	url := w.cfg.BaseURL + "/handle-frontend"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.cfg.BasicToken != "" {
		req.Header.Set("Authorization", "Basic "+w.cfg.BasicToken)
	}
	if w.cfg.HeaderName != "" {
		req.Header.Set(w.cfg.HeaderName, w.cfg.HeaderValue)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit purchase order: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &SubmissionError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	log.Printf("purchase order submitted: supplier=%d lines=%d", payload.Supplier.ID, len(payload.PurchaseOrderDetails))
	return nil
}
