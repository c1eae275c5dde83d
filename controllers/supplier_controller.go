package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gaolamthuy/admin-sub000/models"
	"github.com/gaolamthuy/admin-sub000/service"
	"github.com/gaolamthuy/admin-sub000/utils"
)

// GetAllSuppliers lists suppliers with purchase history, most active first.
// ?q= filters by name or code.
func GetAllSuppliers(c *gin.Context) {
	rows, err := Catalog.FetchSuppliers(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to load suppliers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GetSupplierTemplates returns the order templates for one supplier and, when
// the caller's draft is still on that supplier and untouched, seeds the draft
// with the full template set. Seeding is skipped when the draft moved to a
// different supplier while the fetch was in flight, so a stale response never
// overwrites newer state.
func GetSupplierTemplates(c *gin.Context) {
	supplierID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid supplier id", err)
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	templates, err := Catalog.FetchTemplates(c.Request.Context(), supplierID)
	if err != nil {
		utils.Error(c, http.StatusBadGateway, "could not load product templates, please retry", err)
		return
	}

	var autoSelected bool
	_ = Drafts.With(uid, func(d *service.Draft) error {
		autoSelected = d.AutoSelectAll(supplierID, templates)
		return nil
	})

	c.JSON(http.StatusOK, gin.H{
		"data":          templates,
		"auto_selected": autoSelected,
	})
}

// loadSupplier is shared by the draft endpoints so they agree with the picker
// on how a supplier row is resolved.
func loadSupplier(c *gin.Context, supplierID int64) (*models.Supplier, bool) {
	s, err := Catalog.FetchSupplier(c.Request.Context(), supplierID)
	if err != nil {
		utils.Error(c, http.StatusNotFound, "supplier not found", err)
		return nil, false
	}
	return s, true
}
