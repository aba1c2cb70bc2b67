package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/bakery-service/internal/circuitbreaker"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/guttosm/bakery-service/internal/service"
)

// apiError is the HTTP rendering of a service error.
type apiError struct {
	status     int
	code       string
	messageKey string
}

// errorMappings is checked in order with errors.Is.
var errorMappings = []struct {
	target error
	apiError
}{
	{service.ErrInvalidQuantity, apiError{http.StatusBadRequest, dto.ErrCodeInvalidQuantity, i18n.ErrKeyInvalidQuantity}},
	{service.ErrUnavailableFlavor, apiError{http.StatusBadRequest, dto.ErrCodeUnavailableFlavor, i18n.ErrKeyUnavailableFlavor}},
	{service.ErrInvalidWeightOption, apiError{http.StatusBadRequest, dto.ErrCodeInvalidWeight, i18n.ErrKeyInvalidWeightOption}},
	{service.ErrCartFull, apiError{http.StatusConflict, dto.ErrCodeCartFull, i18n.ErrKeyCartFull}},
	{service.ErrLineNotFound, apiError{http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyLineNotFound}},
	{service.ErrProductNotFound, apiError{http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyProductNotFound}},
	{service.ErrCategoryNotFound, apiError{http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyCategoryNotFound}},
	{service.ErrPromotionNotFound, apiError{http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyPromotionNotFound}},
	{service.ErrInvalidPromotionType, apiError{http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidPromotionType}},
	{service.ErrNameRequired, apiError{http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyNameRequired}},
	{model.ErrNegativeBasePrice, apiError{http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest}},
	{circuitbreaker.ErrCircuitOpen, apiError{http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyServiceUnavailable}},
	{service.ErrRepositoryNotConfigured, apiError{http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyServiceUnavailable}},
	{context.DeadlineExceeded, apiError{http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout}},
}

func classify(err error) apiError {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.apiError
		}
	}
	if _, ok := asValidationError(err); ok {
		return apiError{http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequest}
	}
	return apiError{http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError}
}

func asValidationError(err error) (*dto.ValidationError, bool) {
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
