package http

import (
	"github.com/gin-gonic/gin"
)

// Validator is implemented by request bodies that check their own fields after decoding.
type Validator interface {
	Validate() error
}

// BuildRequest decodes the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	req := new(T)
	if err := c.ShouldBindJSON(req); err != nil {
		return nil, err
	}
	return req, nil
}

// BuildRequestAndValidate decodes the JSON body and runs Validate when T has one.
// A failed check comes back as the *dto.ValidationError the body produced, so
// BindFailed can name the offending field.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}
