package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jeleniasty/budget-aggregator/internal/adapter/http/dto"
	"github.com/jeleniasty/budget-aggregator/internal/core/domain"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
	"github.com/jeleniasty/budget-aggregator/pkg/apperror"
	"github.com/jeleniasty/budget-aggregator/pkg/response"
)

// AggregationHandler handles transaction statistics endpoints.
type AggregationHandler struct {
	aggregationSvc ports.AggregationService
}

// NewAggregationHandler creates a new AggregationHandler.
func NewAggregationHandler(aggregationSvc ports.AggregationService) *AggregationHandler {
	return &AggregationHandler{aggregationSvc: aggregationSvc}
}

// GetStats handles GET /api/v1/aggregations. All filters are optional;
// with none supplied the whole transaction set is aggregated.
func (h *AggregationHandler) GetStats(c *gin.Context) {
	var query dto.AggregationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	summaries, err := h.aggregationSvc.Aggregate(c.Request.Context(), domain.AggregationFilter{
		Category: query.Category,
		IBAN:     query.IBAN,
		Month:    query.Month,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	results := make([]dto.AggregationResultResponse, 0, len(summaries))
	for _, s := range summaries {
		results = append(results, dto.AggregationResultResponse{
			Category:         s.Category,
			IBAN:             s.IBAN,
			Month:            s.Month,
			Currency:         s.Currency,
			Inflow:           s.Inflow,
			Outflow:          s.Outflow,
			Balance:          s.Balance,
			TransactionCount: s.TransactionCount,
		})
	}

	response.OK(c, results)
}
