package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDueAmount(t *testing.T) {
	tests := []struct {
		name     string
		fees     []int64
		paid     int64
		discount int64
		wantDue  int64
	}{
		{"partial payment with discount", []int64{50000}, 20000, 5000, 25000},
		{"two fee columns", []int64{30000, 20000}, 20000, 5000, 25000},
		{"fully settled", []int64{10000}, 10000, 0, 0},
		{"discount covers everything", []int64{10000}, 0, 10000, 0},
		{"nothing paid", []int64{15000}, 0, 0, 15000},
		{"overpayment goes negative", []int64{10000}, 12000, 0, -2000},
		{"zero fees", nil, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDue, ComputeDueAmount(tt.fees, tt.paid, tt.discount))
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, StatusDue, DeriveStatus(25000))
	assert.Equal(t, StatusDue, DeriveStatus(1))
	assert.Equal(t, StatusPaid, DeriveStatus(0))
	assert.Equal(t, StatusPaid, DeriveStatus(-2000))
}
