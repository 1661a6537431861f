// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sreepix-backend/models"
	"sreepix-backend/storage"
	"sreepix-backend/utils"
)

// ServiceController exposes the catalog: a public read plus the owner-only
// mutations. All writes go through CatalogStore.Replace, so every mutation
// is a full-catalog overwrite under the hood.
type ServiceController struct {
	Store storage.CatalogStore
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Unit        string `json:"unit"`
	Rate        int    `json:"rate" binding:"min=0"`
	DefaultQty  int    `json:"defaultQty" binding:"min=0"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Unit        *string `json:"unit"`
	Rate        *int    `json:"rate"`
	DefaultQty  *int    `json:"defaultQty"`
}

// GetServices returns the full catalog. A catalog that does not exist yet
// is created empty, so this never 404s.
func (ctl *ServiceController) GetServices(c *gin.Context) {
	items, err := ctl.Store.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read services")
		return
	}
	c.JSON(http.StatusOK, items)
}

// ReplaceServices overwrites the whole catalog with the submitted items,
// unmodified items included. Last writer wins.
func (ctl *ServiceController) ReplaceServices(c *gin.Context) {
	var items []models.ServiceItem
	if err := c.ShouldBindJSON(&items); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ctl.Store.Replace(items); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to update services: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Services updated successfully"})
}

// CreateService appends one new item to the catalog.
func (ctl *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category, err := models.ParseCategory(input.Category)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := ctl.Store.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read services")
		return
	}

	item := models.ServiceItem{
		ID:          uuid.NewString(),
		Description: input.Description,
		Category:    category,
		Unit:        input.Unit,
		Rate:        input.Rate,
		DefaultQty:  input.DefaultQty,
	}

	if err := ctl.Store.Replace(append(items, item)); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateService modifies the provided fields of an existing item.
func (ctl *ServiceController) UpdateService(c *gin.Context) {
	serviceID := c.Param("id")

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	items, err := ctl.Store.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read services")
		return
	}

	index := -1
	for i := range items {
		if items[i].ID == serviceID {
			index = i
			break
		}
	}
	if index == -1 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	// Update fields if provided
	item := items[index]
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		category, err := models.ParseCategory(*input.Category)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		item.Category = category
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Rate != nil {
		item.Rate = *input.Rate
	}
	if input.DefaultQty != nil {
		item.DefaultQty = *input.DefaultQty
	}
	items[index] = item

	if err := ctl.Store.Replace(items); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to update service: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteService removes one item from the catalog.
func (ctl *ServiceController) DeleteService(c *gin.Context) {
	serviceID := c.Param("id")

	items, err := ctl.Store.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read services")
		return
	}

	remaining := make([]models.ServiceItem, 0, len(items))
	for _, item := range items {
		if item.ID != serviceID {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(items) {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	if err := ctl.Store.Replace(remaining); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
