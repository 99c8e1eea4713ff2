package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomcreatives_backend/internals/features/applications/epassport/dto"
	m "zoomcreatives_backend/internals/features/applications/epassport/model"
)

func TestRecompute(t *testing.T) {
	e := &m.EpassportModel{Amount: 50000, PaidAmount: 20000, Discount: 5000}
	Recompute(e)
	assert.Equal(t, int64(25000), e.DueAmount)
	assert.Equal(t, "Due", e.PaymentStatus)

	e.PaidAmount = 50000
	Recompute(e)
	assert.Equal(t, int64(-5000), e.DueAmount)
	assert.Equal(t, "Paid", e.PaymentStatus)
}

func TestApplyUpdateClearsPrefectureWithoutGhumti(t *testing.T) {
	e := &m.EpassportModel{GhumtiService: true, Prefecture: "Tokyo"}
	off := false
	err := ApplyUpdate(nil, e, dto.UpdateEpassportRequest{GhumtiService: &off})
	require.NoError(t, err)
	assert.False(t, e.GhumtiService)
	assert.Empty(t, e.Prefecture)
}

func TestApplyUpdateRecomputesOnDiscountChange(t *testing.T) {
	e := &m.EpassportModel{Amount: 10000, PaidAmount: 5000, DueAmount: 5000, PaymentStatus: "Due"}
	discount := int64(5000)
	err := ApplyUpdate(nil, e, dto.UpdateEpassportRequest{Discount: &discount})
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.DueAmount)
	assert.Equal(t, "Paid", e.PaymentStatus)
}
