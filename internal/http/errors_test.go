package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/guttosm/bakery-service/internal/circuitbreaker"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid quantity", service.ErrInvalidQuantity, http.StatusBadRequest, dto.ErrCodeInvalidQuantity},
		{"unavailable flavor", service.ErrUnavailableFlavor, http.StatusBadRequest, dto.ErrCodeUnavailableFlavor},
		{"invalid weight", service.ErrInvalidWeightOption, http.StatusBadRequest, dto.ErrCodeInvalidWeight},
		{"cart full", service.ErrCartFull, http.StatusConflict, dto.ErrCodeCartFull},
		{"line not found", service.ErrLineNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{"wrapped product not found", fmt.Errorf("find product: %w", service.ErrProductNotFound), http.StatusNotFound, dto.ErrCodeNotFound},
		{"negative base price", model.ErrNegativeBasePrice, http.StatusBadRequest, dto.ErrCodeInvalidRequest},
		{"validation error", dto.ErrNameRequired, http.StatusBadRequest, dto.ErrCodeInvalidRequest},
		{"open circuit", fmt.Errorf("list: %w", circuitbreaker.ErrCircuitOpen), http.StatusServiceUnavailable, dto.ErrCodeUnavailable},
		{"store not configured", service.ErrRepositoryNotConfigured, http.StatusServiceUnavailable, dto.ErrCodeUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, dto.ErrCodeTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := classify(tt.err)

			assert.Equal(t, tt.status, e.status)
			assert.Equal(t, tt.code, e.code)
			assert.NotEmpty(t, e.messageKey)
		})
	}
}
