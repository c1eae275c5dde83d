package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/gaolamthuy/admin-sub000/models"
)

// templateFetchTimeout bounds the view query so a slow upstream cannot hang
// the picker; the caller gets ErrTemplateFetch and may retry.
const templateFetchTimeout = 10 * time.Second

// CatalogService reads the supplier and template views that back the
// purchase-order wizard. Pure reads; nothing here mutates the database.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// FetchSuppliers lists suppliers with purchase history, most active first.
// q filters by name or code when non-empty.
func (s *CatalogService) FetchSuppliers(ctx context.Context, q string) ([]models.Supplier, error) {
	query := s.db.WithContext(ctx).Model(&models.Supplier{})
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}

	var rows []models.Supplier
	if err := query.
		Order("total_invoice DESC, last_purchase_date DESC NULLS LAST").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch suppliers: %w", err)
	}
	return rows, nil
}

// FetchSupplier loads one supplier row by its POS id.
func (s *CatalogService) FetchSupplier(ctx context.Context, supplierID int64) (*models.Supplier, error) {
	var row models.Supplier
	if err := s.db.WithContext(ctx).
		Where("kiotviet_id = ?", supplierID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FetchTemplates returns the historical order templates for one supplier,
// most frequently ordered first. A zero supplier id yields an empty list
// without touching the database.
func (s *CatalogService) FetchTemplates(ctx context.Context, supplierID int64) ([]models.TemplateProduct, error) {
	if supplierID == 0 {
		return []models.TemplateProduct{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, templateFetchTimeout)
	defer cancel()

	var rows []models.TemplateProduct
	if err := s.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("order_count DESC, last_purchase_date DESC NULLS LAST").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateFetch, err)
	}
	return dedupeTemplates(rows), nil
}

// FetchTemplate loads a single template row for adding one product manually.
func (s *CatalogService) FetchTemplate(ctx context.Context, supplierID, productID int64) (*models.TemplateProduct, error) {
	var row models.TemplateProduct
	if err := s.db.WithContext(ctx).
		Where("supplier_id = ? AND product_id = ?", supplierID, productID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// dedupeTemplates drops rows without a product id and keeps only the first
// row per product id. Duplicate rows are a known upstream anomaly of the
// view; they are logged, not surfaced.
func dedupeTemplates(rows []models.TemplateProduct) []models.TemplateProduct {
	out := make([]models.TemplateProduct, 0, len(rows))
	seen := make(map[int64]bool, len(rows))
	for _, row := range rows {
		if row.ProductID == 0 {
			continue
		}
		if seen[row.ProductID] {
			log.Printf("templates: dropping duplicate row for product %d (%s)", row.ProductID, row.ProductCode)
			continue
		}
		seen[row.ProductID] = true
		out = append(out, row)
	}
	return out
}
