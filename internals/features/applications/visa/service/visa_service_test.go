package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomcreatives_backend/internals/features/applications/visa/dto"
	m "zoomcreatives_backend/internals/features/applications/visa/model"
)

func TestRecomputeDerivesBothFields(t *testing.T) {
	v := &m.VisaApplicationModel{
		VisaApplicationFee: 30000,
		TranslationFee:     20000,
		PaidAmount:         20000,
		Discount:           5000,
	}
	Recompute(v)
	assert.Equal(t, int64(25000), v.DueAmount)
	assert.Equal(t, "Due", v.PaymentStatus)

	v.PaidAmount = 45000
	Recompute(v)
	assert.Equal(t, int64(0), v.DueAmount)
	assert.Equal(t, "Paid", v.PaymentStatus)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	v := &m.VisaApplicationModel{
		VisaApplicationFee: 10000,
		TranslationFee:     2000,
		PaidAmount:         3000,
		Discount:           1000,
	}
	Recompute(v)
	due, status := v.DueAmount, v.PaymentStatus
	Recompute(v)
	assert.Equal(t, due, v.DueAmount)
	assert.Equal(t, status, v.PaymentStatus)
}

func TestRecomputeOverpaymentStaysNegative(t *testing.T) {
	v := &m.VisaApplicationModel{VisaApplicationFee: 10000, PaidAmount: 15000}
	Recompute(v)
	assert.Equal(t, int64(-5000), v.DueAmount)
	assert.Equal(t, "Paid", v.PaymentStatus)
}

func TestApplyUpdateRecomputesOnFeeChange(t *testing.T) {
	v := &m.VisaApplicationModel{
		VisaApplicationFee: 50000,
		PaidAmount:         20000,
		Discount:           5000,
		DueAmount:          25000,
		PaymentStatus:      "Due",
	}
	paid := int64(45000)
	// no handler fields set, so no store access happens
	err := ApplyUpdate(nil, v, dto.UpdateVisaApplicationRequest{PaidAmount: &paid})
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.DueAmount)
	assert.Equal(t, "Paid", v.PaymentStatus)
}

func TestApplyUpdateIgnoresUnsetFields(t *testing.T) {
	v := &m.VisaApplicationModel{
		Country:            "Japan",
		VisaApplicationFee: 10000,
		DueAmount:          10000,
		PaymentStatus:      "Due",
	}
	err := ApplyUpdate(nil, v, dto.UpdateVisaApplicationRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Japan", v.Country)
	assert.Equal(t, int64(10000), v.DueAmount)
	assert.Equal(t, "Due", v.PaymentStatus)
}
