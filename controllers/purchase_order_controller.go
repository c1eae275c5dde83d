package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gaolamthuy/admin-sub000/models"
	"github.com/gaolamthuy/admin-sub000/service"
	"github.com/gaolamthuy/admin-sub000/utils"
)

// The purchase-order draft endpoints mutate the caller's server-held draft.
// One draft per user; picking a supplier starts it, submit (or an explicit
// supplier change) ends it.

type draftView struct {
	Supplier *models.Supplier         `json:"supplier"`
	Items    []models.SelectedProduct `json:"items"`
	Summary  service.SelectionSummary `json:"summary"`
}

func viewOf(d *service.Draft) draftView {
	items := d.Items()
	return draftView{
		Supplier: d.Supplier,
		Items:    items,
		Summary:  service.Summarize(items),
	}
}

type setSupplierInput struct {
	SupplierID int64 `json:"supplier_id" binding:"required"`
}

// SetDraftSupplier switches the draft to a supplier, clearing any previously
// selected items before the new supplier's templates are fetched.
func SetDraftSupplier(c *gin.Context) {
	var in setSupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	supplier, ok := loadSupplier(c, in.SupplierID)
	if !ok {
		return
	}

	var view draftView
	_ = Drafts.With(uid, func(d *service.Draft) error {
		d.SetSupplier(supplier)
		view = viewOf(d)
		return nil
	})
	utils.Success(c, "supplier selected", view)
}

// GetDraft returns the current selection plus the aggregate unit breakdown.
func GetDraft(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var view draftView
	_ = Drafts.With(uid, func(d *service.Draft) error {
		view = viewOf(d)
		return nil
	})
	c.JSON(http.StatusOK, gin.H{"data": view})
}

type addItemInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// AddDraftItem adds one template product to the selection with the default
// quantity and price.
func AddDraftItem(c *gin.Context) {
	var in addItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var view draftView
	addErr := Drafts.With(uid, func(d *service.Draft) error {
		if d.Supplier == nil {
			return service.ErrNoSupplier
		}
		t, err := Catalog.FetchTemplate(c.Request.Context(), d.Supplier.KiotvietID, in.ProductID)
		if err != nil {
			return fmt.Errorf("template not found for product %d: %w", in.ProductID, err)
		}
		d.AddProduct(*t)
		view = viewOf(d)
		return nil
	})
	if addErr != nil {
		utils.Error(c, http.StatusBadRequest, "failed to add product", addErr)
		return
	}
	utils.Success(c, "product added", view)
}

type updateItemInput struct {
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
}

// UpdateDraftItem edits one line's quantity and/or price. Quantities below 1
// are rejected and the stored value is left unchanged.
func UpdateDraftItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid product id", err)
		return
	}

	var in updateItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var view draftView
	updErr := Drafts.With(uid, func(d *service.Draft) error {
		if in.Quantity != nil {
			if err := d.UpdateQuantity(productID, *in.Quantity); err != nil {
				return err
			}
		}
		if in.Price != nil {
			if err := d.UpdatePrice(productID, *in.Price); err != nil {
				return err
			}
		}
		view = viewOf(d)
		return nil
	})
	if updErr != nil {
		status := http.StatusBadRequest
		if errors.Is(updErr, service.ErrNotSelected) {
			status = http.StatusNotFound
		}
		utils.Error(c, status, "failed to update line", updErr)
		return
	}
	utils.Success(c, "line updated", view)
}

// RemoveDraftItem deletes one line; absent product ids are not an error.
func RemoveDraftItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid product id", err)
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var view draftView
	_ = Drafts.With(uid, func(d *service.Draft) error {
		d.RemoveProduct(productID)
		view = viewOf(d)
		return nil
	})
	utils.Success(c, "line removed", view)
}

// ClearDraftItems empties the selection but keeps the supplier.
func ClearDraftItems(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var view draftView
	_ = Drafts.With(uid, func(d *service.Draft) error {
		d.RemoveAll()
		view = viewOf(d)
		return nil
	})
	utils.Success(c, "selection cleared", view)
}

type submitInput struct {
	Description string `json:"description"`
	IsDraft     bool   `json:"is_draft"`
}

// SubmitPurchaseOrder builds the payload from the draft and POSTs it to the
// workflow webhook. Validation failures never reach the network. The draft is
// cleared only on success; any failure leaves it intact so the user can retry
// without re-entering data.
func SubmitPurchaseOrder(c *gin.Context) {
	var in submitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var payload models.SubmissionPayload
	buildErr := Drafts.With(uid, func(d *service.Draft) error {
		p, err := service.BuildSubmission(d, in.Description, in.IsDraft)
		if err != nil {
			return err
		}
		payload = p
		return nil
	})
	if buildErr != nil {
		utils.Error(c, http.StatusBadRequest, "cannot submit purchase order", buildErr)
		return
	}

	if payload.Description == "" {
		payload.Description = utils.GenOrderCode(time.Now())
	}

	if err := Webhook.Submit(c.Request.Context(), payload); err != nil {
		var subErr *service.SubmissionError
		if errors.As(err, &subErr) {
			utils.Error(c, http.StatusBadGateway, "purchase order rejected by workflow", subErr)
			return
		}
		utils.Error(c, http.StatusBadGateway, "failed to reach workflow endpoint", err)
		return
	}

	Drafts.Reset(uid)
	utils.Success(c, "purchase order submitted", payload)
}
