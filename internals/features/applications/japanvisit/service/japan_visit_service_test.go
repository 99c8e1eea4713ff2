package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomcreatives_backend/internals/features/applications/japanvisit/dto"
	m "zoomcreatives_backend/internals/features/applications/japanvisit/model"
)

func TestRecomputeIncludesDeliveryCharge(t *testing.T) {
	j := &m.JapanVisitModel{
		Amount:         60000,
		DeliveryCharge: 1500,
		PaidAmount:     30000,
		Discount:       1500,
	}
	Recompute(j)
	assert.Equal(t, int64(30000), j.DueAmount)
	assert.Equal(t, "Due", j.PaymentStatus)

	j.PaidAmount = 60000
	Recompute(j)
	assert.Equal(t, int64(0), j.DueAmount)
	assert.Equal(t, "Paid", j.PaymentStatus)
}

func TestRecomputeOverpaymentStaysNegative(t *testing.T) {
	j := &m.JapanVisitModel{Amount: 20000, PaidAmount: 25000}
	Recompute(j)
	assert.Equal(t, int64(-5000), j.DueAmount)
	assert.Equal(t, "Paid", j.PaymentStatus)
}

func TestApplyUpdateRecomputesOnDeliveryChargeChange(t *testing.T) {
	j := &m.JapanVisitModel{
		Amount:        40000,
		PaidAmount:    40000,
		DueAmount:     0,
		PaymentStatus: "Paid",
	}
	charge := int64(1200)
	// no handler field set, so no store access happens
	err := ApplyUpdate(nil, j, dto.UpdateJapanVisitRequest{DeliveryCharge: &charge})
	require.NoError(t, err)
	assert.Equal(t, int64(1200), j.DueAmount)
	assert.Equal(t, "Due", j.PaymentStatus)
}

func TestApplyUpdateClearsOtherReason(t *testing.T) {
	j := &m.JapanVisitModel{
		ReasonForVisit: "Other",
		OtherReason:    "University open campus",
	}
	reason := "General Visit"
	err := ApplyUpdate(nil, j, dto.UpdateJapanVisitRequest{ReasonForVisit: &reason})
	require.NoError(t, err)
	assert.Equal(t, "General Visit", j.ReasonForVisit)
	assert.Empty(t, j.OtherReason)
}

func TestApplyUpdateIgnoresUnsetFields(t *testing.T) {
	j := &m.JapanVisitModel{
		Package:        "Premium Package",
		NoOfApplicants: 3,
		Amount:         90000,
		DueAmount:      90000,
		PaymentStatus:  "Due",
	}
	err := ApplyUpdate(nil, j, dto.UpdateJapanVisitRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Premium Package", j.Package)
	assert.Equal(t, 3, j.NoOfApplicants)
	assert.Equal(t, int64(90000), j.DueAmount)
	assert.Equal(t, "Due", j.PaymentStatus)
}
