package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"payflow/internal/domain"
	"payflow/pkg/e"

	"github.com/gin-gonic/gin"
)

// @title Payflow Records Api
// @version 1
//
//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PaymentStorage interface {
	GetByID(ctx context.Context, id string) (domain.PaymentResponse, error)
	RecordPaymentResponse(ctx context.Context, response domain.PaymentResponse) (string, error)
	ListPaymentResponses(ctx context.Context) ([]domain.PaymentResponse, error)
}

type Handler struct {
	payments PaymentStorage
	logger   *slog.Logger
}

func NewHandler(logger *slog.Logger, payments PaymentStorage) *Handler {
	return &Handler{
		payments: payments,
		logger:   logger,
	}
}

// GetPayment godoc
// @Summary Get payment response by ID
// @Description Get the settlement record of a completed payment flow by its ID.
// @ID get-payment-by-id
// @Produce  json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.PaymentResponse "Successful operation"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /payments/{id} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.logger.Error("empty payment id")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	response, err := h.payments.GetByID(c, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			h.logger.Error("failed to find payment", slog.String("id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": e.ErrNotFound.Error()})
			return
		}
		h.logger.Error("failed to get payment", slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to perform func GetByID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Response": response})

}

// PostHandler godoc
// @Summary Record a payment response
// @Description Record the settlement of a completed payment flow.
// @ID record-payment-response
// @Accept  json
// @Produce  json
// @Param response body domain.PaymentResponse true "Payment response to record"
// @Success 200 {object} map[string]interface{} "Successful operation"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Failed to record payment response"
// @Router /payments [post]
func (h *Handler) PostHandler(c *gin.Context) {
	var response domain.PaymentResponse
	if err := c.Bind(&response); err != nil {
		h.logger.Error("failed to bind data", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.payments.RecordPaymentResponse(c, response)
	if err != nil {
		h.logger.Error("failed to record payment response", slog.String("error", err.Error()), slog.String("id", id))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"The payment response successfully recorded, id": id})

}

// GetAllHandler godoc
// @Summary Return all payment responses
// @Description Return all recorded payment responses, newest first.
// @ID get-all-payments
// @Accept  json
// @Produce  json
// @Success 200 {object} map[string]interface{} "Successful operation"
// @Failure 404 {object} map[string]string "No payment responses recorded"
// @Router /payments [get]
func (h *Handler) GetAllHandler(c *gin.Context) {

	responses, err := h.payments.ListPaymentResponses(c)
	if err != nil {
		h.logger.Error("failed to return payment responses", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if responses == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no payment responses recorded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": responses})
}
