package pipeline

// Warning codes for data-quality issues that do not stop a batch.
const (
	WarnMissingCustomer = "missing_customer"
	WarnMissingProduct  = "missing_product"
	WarnBadQuantity     = "bad_quantity"
)

// Warning records a data-quality issue encountered while processing an
// order. Warnings are attached to the batch result, never raised as
// errors.
type Warning struct {
	Code    string `json:"code"`
	OrderID string `json:"orderId"`
	Detail  string `json:"detail"`
}

// RejectedOrder records an order that was structurally invalid and could
// not be processed at all, as opposed to one that merely produced
// warnings.
type RejectedOrder struct {
	OrderID string `json:"orderId"`
	Reason  string `json:"reason"`
}
