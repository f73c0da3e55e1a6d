package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourbase/middleware"
	"tourbase/models"
	"tourbase/services/review"
	"tourbase/utils"
)

// ReviewHandler exposes review submission and moderation.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	var input struct {
		Rating   int    `json:"rating" binding:"required"`
		Comment  string `json:"comment"`
		UserName string `json:"userName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	r := &models.Review{
		TourID:   c.Param("id"),
		UserID:   c.GetString(middleware.CtxUserID),
		UserName: input.UserName,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}
	created, err := h.Service.Submit(c.Request.Context(), r)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to submit review", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListApproved returns the storefront-visible reviews for a tour.
func (h *ReviewHandler) ListApproved(c *gin.Context) {
	reviews, err := h.Service.ListApproved(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ListForModeration returns all reviews of a tour regardless of status.
func (h *ReviewHandler) ListForModeration(c *gin.Context) {
	reviews, err := h.Service.ListForModeration(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Moderate approves or rejects a review.
func (h *ReviewHandler) Moderate(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Moderate(c.Request.Context(), c.Param("reviewID"), input.Status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to moderate review", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}
