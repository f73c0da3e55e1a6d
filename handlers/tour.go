package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	tourRepo "tourbase/database/repository/tour"
	"tourbase/middleware"
	"tourbase/models"
	"tourbase/services/tour"
	"tourbase/utils"
)

const defaultCurrency = "USD"

// TourHandler exposes the tour catalogue to the storefront and the dashboard.
type TourHandler struct {
	Service tour.TourService
}

func NewTourHandler(svc tour.TourService) *TourHandler {
	return &TourHandler{Service: svc}
}

func (h *TourHandler) ListTours(c *gin.Context) {
	q := tourRepo.TourQuery{
		Destination:   c.Query("destination"),
		Category:      c.Query("category"),
		PublishedOnly: true,
		Page:          intQuery(c, "page", 1),
		PerPage:       intQuery(c, "perPage", 12),
	}
	tours, total, err := h.Service.ListTours(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list tours", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours, "total": total, "page": q.Page, "perPage": q.PerPage})
}

// ListToursAdmin includes unpublished tours.
func (h *TourHandler) ListToursAdmin(c *gin.Context) {
	q := tourRepo.TourQuery{
		Destination: c.Query("destination"),
		Category:    c.Query("category"),
		Page:        intQuery(c, "page", 1),
		PerPage:     intQuery(c, "perPage", 12),
	}
	tours, total, err := h.Service.ListTours(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list tours", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours, "total": total, "page": q.Page, "perPage": q.PerPage})
}

func (h *TourHandler) GetTour(c *gin.Context) {
	t, err := h.Service.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "tour not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListDepartures returns the expanded, priced departure list with optional
// month filter, paging and display-currency conversion.
func (h *TourHandler) ListDepartures(c *gin.Context) {
	q := tour.DepartureQuery{
		Month:   c.Query("month"),
		Page:    intQuery(c, "page", 1),
		PerPage: intQuery(c, "perPage", 10),
	}
	page, err := h.Service.ListDepartures(c.Request.Context(), c.Param("id"), q)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to list departures", err.Error())
		return
	}

	if currency := displayCurrency(c); currency != defaultCurrency {
		for i := range page.Items {
			page.Items[i].Price = convertPrice(page.Items[i].Price, currency)
		}
	}
	c.JSON(http.StatusOK, page)
}

// CardPrice returns the headline price badge for a tour card.
func (h *TourHandler) CardPrice(c *gin.Context) {
	res, err := h.Service.TourCardPrice(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "tour not found", err.Error())
		return
	}
	price := *res
	if currency := displayCurrency(c); currency != defaultCurrency {
		price = convertPrice(price, currency)
	}
	c.JSON(http.StatusOK, price)
}

func (h *TourHandler) CreateTour(c *gin.Context) {
	var t models.Tour
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	t.AuthorID = c.GetString(middleware.CtxUserID)

	created, err := h.Service.CreateTour(c.Request.Context(), &t)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create tour", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TourHandler) UpdateTour(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateTour(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update tour", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TourHandler) DeleteTour(c *gin.Context) {
	if err := h.Service.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete tour", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tour deleted"})
}

// displayCurrency normalizes the ?currency= query parameter.
func displayCurrency(c *gin.Context) string {
	currency := strings.ToUpper(strings.TrimSpace(c.Query("currency")))
	if currency == "" {
		return defaultCurrency
	}
	return currency
}

// convertPrice converts a price result into the display currency, keeping the
// original amounts when the rate lookup fails.
func convertPrice(p models.PriceResult, currency string) models.PriceResult {
	original, err := utils.ConvertCurrency(p.OriginalPrice, defaultCurrency, currency)
	if err != nil {
		zap.L().Warn("currency conversion failed", zap.String("currency", currency), zap.Error(err))
		return p
	}
	display, err := utils.ConvertCurrency(p.DisplayPrice, defaultCurrency, currency)
	if err != nil {
		return p
	}
	p.OriginalPrice = original
	p.DisplayPrice = display
	return p
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
