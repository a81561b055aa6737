package handler

import (
	"net/http"

	"subscription-items/internal/apierrors"
	"subscription-items/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
)

type CreateItemRequest struct {
	Subscription      string            `json:"subscription" binding:"required"`
	Price             string            `json:"price" binding:"required"`
	Quantity          *int64            `json:"quantity" binding:"omitempty,gte=0"`
	ProrationBehavior string            `json:"proration_behavior" binding:"omitempty,oneof=always_invoice create_prorations none"`
	Metadata          map[string]string `json:"metadata"`
}

type UpdateItemRequest struct {
	Price             string            `json:"price"`
	Quantity          *int64            `json:"quantity" binding:"omitempty,gte=0"`
	ProrationBehavior string            `json:"proration_behavior" binding:"omitempty,oneof=always_invoice create_prorations none"`
	Metadata          map[string]string `json:"metadata"`
}

type DeleteItemQuery struct {
	ClearUsage        *bool  `form:"clear_usage"`
	ProrationBehavior string `form:"proration_behavior" binding:"omitempty,oneof=always_invoice create_prorations none"`
}

type ListItemsQuery struct {
	Subscription  string `form:"subscription" binding:"required"`
	Limit         int64  `form:"limit" binding:"omitempty,gte=1,lte=100"`
	StartingAfter string `form:"starting_after"`
	EndingBefore  string `form:"ending_before"`
}

func (h *Handler) HandleCreate(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "subscription_id", Value: req.Subscription})

	params := &stripe.SubscriptionItemParams{
		Subscription: stripe.String(req.Subscription),
		Price:        stripe.String(req.Price),
		Quantity:     req.Quantity,
	}
	params.Metadata = req.Metadata
	if req.ProrationBehavior != "" {
		params.ProrationBehavior = stripe.String(req.ProrationBehavior)
	}

	item, err := h.service.Create(ctx, params, requestOptions(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) HandleGet(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"), nil, requestOptions(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) HandleUpdate(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := &stripe.SubscriptionItemParams{
		Quantity: req.Quantity,
	}
	params.Metadata = req.Metadata
	if req.Price != "" {
		params.Price = stripe.String(req.Price)
	}
	if req.ProrationBehavior != "" {
		params.ProrationBehavior = stripe.String(req.ProrationBehavior)
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("id"), params, requestOptions(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) HandleDelete(c *gin.Context) {
	var query DeleteItemQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := &stripe.SubscriptionItemParams{ClearUsage: query.ClearUsage}
	if query.ProrationBehavior != "" {
		params.ProrationBehavior = stripe.String(query.ProrationBehavior)
	}

	item, err := h.service.Delete(c.Request.Context(), c.Param("id"), params, requestOptions(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// HandleList returns a single page. Clients pass the last ID back as starting_after while has_more is true.
func (h *Handler) HandleList(c *gin.Context) {
	var query ListItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := &stripe.SubscriptionItemListParams{Subscription: stripe.String(query.Subscription)}
	if query.Limit > 0 {
		params.Limit = stripe.Int64(query.Limit)
	}
	if query.StartingAfter != "" {
		params.StartingAfter = stripe.String(query.StartingAfter)
	}
	if query.EndingBefore != "" {
		params.EndingBefore = stripe.String(query.EndingBefore)
	}

	list, err := h.service.List(c.Request.Context(), params, requestOptions(c))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
