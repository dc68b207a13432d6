package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/metrics"
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	orders    *services.OrderService
	profile   *services.ProfileService
	jwtSecret string
}

func NewHandler(orders *services.OrderService, profile *services.ProfileService, jwtSecret string) *Handler {
	return &Handler{orders: orders, profile: profile, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(RequestLogger(), metrics.PrometheusMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/orders/active", h.GetActiveOrders)
	api.GET("/orders/:orderId", h.GetOrderByID)
	api.PUT("/orders/:orderId/status/:newStatus", h.UpdateOrderStatus)

	auth := api.Group("", AuthRequired(h.jwtSecret))
	auth.POST("/orders", h.RegisterOrder)
	auth.GET("/orders/mine", h.GetMyOrders)
	auth.GET("/customers/profile", h.GetProfile)
	auth.GET("/customers/statistics", h.GetStatistics)
}

func (h *Handler) RegisterOrder(c *gin.Context) {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req RegisterOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]services.OrderLineRequest, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, services.OrderLineRequest{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	order, err := h.orders.RegisterOrder(c.Request.Context(), customerID, lines, req.Notes, req.IsSpecial, req.SpecialDeliveryDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	message := "Order created successfully"
	if order.Special {
		message = "Special order created successfully"
	}

	c.JSON(http.StatusCreated, RegisterOrderResponse{
		Success:             true,
		OrderID:             order.ID,
		Total:               order.Total,
		PlacedAt:            order.PlacedAt,
		IsSpecial:           order.Special,
		SpecialDeliveryDate: order.SpecialDeliveryDate,
		Message:             message,
	})
}

func (h *Handler) GetActiveOrders(c *gin.Context) {
	orders, err := h.orders.GetActiveOrders(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId must be numeric"})
		return
	}

	order, err := h.orders.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId must be numeric"})
		return
	}

	newStatus := c.Param("newStatus")
	if newStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newStatus required"})
		return
	}

	order, err := h.orders.UpdateOrderStatus(c.Request.Context(), id, newStatus)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetMyOrders(c *gin.Context) {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	orders, err := h.orders.GetOrdersByCustomer(c.Request.Context(), customerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (h *Handler) GetProfile(c *gin.Context) {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	profile, err := h.profile.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

func (h *Handler) GetStatistics(c *gin.Context) {
	customerID, ok := customerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	stats, err := h.profile.GetStatistics(c.Request.Context(), customerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "statistics": stats})
}

// writeServiceError maps domain errors onto status codes: ValidationError
// is the caller's fault, missing records are 404, anything else is an
// unrecovered infrastructure fault.
func writeServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, services.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
