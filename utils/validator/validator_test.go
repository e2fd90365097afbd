package validatorx_test

import (
	"testing"

	validatorx "github.com/muhammadheryan/stock-ledger/utils/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type quantityRequest struct {
	TenantID uint64          `validate:"required"`
	Quantity decimal.Decimal `validate:"qty_gt0"`
	Target   decimal.Decimal `validate:"qty_gte0"`
}

func TestValidateStruct_Quantities(t *testing.T) {
	tests := []struct {
		name    string
		req     quantityRequest
		wantErr bool
	}{
		{
			name:    "success: positive quantity and zero target",
			req:     quantityRequest{TenantID: 1, Quantity: decimal.NewFromInt(3), Target: decimal.Zero},
			wantErr: false,
		},
		{
			name:    "error: zero quantity",
			req:     quantityRequest{TenantID: 1, Quantity: decimal.Zero, Target: decimal.Zero},
			wantErr: true,
		},
		{
			name:    "error: negative target",
			req:     quantityRequest{TenantID: 1, Quantity: decimal.NewFromInt(1), Target: decimal.NewFromInt(-1)},
			wantErr: true,
		},
		{
			name:    "error: missing tenant",
			req:     quantityRequest{Quantity: decimal.NewFromInt(1)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&tt.req)
			assert.Equal(t, tt.wantErr, err != nil, "err = %v", err)
		})
	}
}
