package payment

// Payment statuses derived from the outstanding balance.
const (
	StatusDue  = "Due"
	StatusPaid = "Paid"
)

// ComputeDueAmount returns total fees minus payments and discount. Amounts are
// integer JPY. The result may go negative on overpayment and is never clamped.
func ComputeDueAmount(fees []int64, paidAmount, discount int64) int64 {
	var total int64
	for _, f := range fees {
		total += f
	}
	return total - (paidAmount + discount)
}

// DeriveStatus maps an outstanding balance to its payment status. Zero or
// negative means fully settled.
func DeriveStatus(dueAmount int64) string {
	if dueAmount <= 0 {
		return StatusPaid
	}
	return StatusDue
}
