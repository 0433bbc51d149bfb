package validator_test

import (
	"testing"

	"producttrial/internal/usecase"
	"producttrial/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Name     string          `json:"name" validate:"required,max=5"`
	Quantity *int            `json:"quantity" validate:"required,min=1"`
	Price    decimal.Decimal `json:"price" validate:"gt=0"`
	Status   string          `json:"inventoryStatus" validate:"oneof=IN_STOCK LOW_STOCK"`
}

func intPtr(i int) *int { return &i }

func TestValidate_OK(t *testing.T) {
	v := validator.New()

	err := v.Validate(sampleRequest{
		Email: "a@x.com", Name: "abc", Quantity: intPtr(1),
		Price: decimal.RequireFromString("0.01"), Status: "IN_STOCK",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldMessagesUseJSONNames(t *testing.T) {
	v := validator.New()

	err := v.Validate(sampleRequest{
		Email: "nope", Name: "toolong", Quantity: intPtr(0),
		Price: decimal.Zero, Status: "GONE",
	})
	require.Error(t, err)

	e, ok := usecase.AsError(err)
	require.True(t, ok)
	assert.Equal(t, usecase.KindValidationFailure, e.Kind)
	assert.Equal(t, map[string]string{
		"email":           "email should be valid",
		"name":            "name must be at most 5 characters",
		"quantity":        "quantity must be at least 1",
		"price":           "price must be greater than 0",
		"inventoryStatus": "inventoryStatus must be one of IN_STOCK, LOW_STOCK",
	}, e.Fields)
}

func TestValidate_Required(t *testing.T) {
	v := validator.New()

	err := v.Validate(sampleRequest{Price: decimal.NewFromInt(1), Status: "IN_STOCK"})
	e, ok := usecase.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "email is required", e.Fields["email"])
	assert.Equal(t, "quantity is required", e.Fields["quantity"])
}
