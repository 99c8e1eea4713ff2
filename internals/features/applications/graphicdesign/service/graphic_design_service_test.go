package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomcreatives_backend/internals/features/applications/graphicdesign/dto"
	m "zoomcreatives_backend/internals/features/applications/graphicdesign/model"
)

func TestRecomputeUsesAdvancePaid(t *testing.T) {
	g := &m.GraphicDesignModel{Amount: 30000, AdvancePaid: 10000, Discount: 5000}
	Recompute(g)
	assert.Equal(t, int64(15000), g.DueAmount)
	assert.Equal(t, "Due", g.PaymentStatus)
}

func TestApplyUpdateRecomputes(t *testing.T) {
	g := &m.GraphicDesignModel{Amount: 30000, AdvancePaid: 10000, DueAmount: 20000, PaymentStatus: "Due"}
	advance := int64(30000)
	err := ApplyUpdate(nil, g, dto.UpdateGraphicDesignRequest{AdvancePaid: &advance})
	require.NoError(t, err)
	assert.Equal(t, int64(0), g.DueAmount)
	assert.Equal(t, "Paid", g.PaymentStatus)
}
