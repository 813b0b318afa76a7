package models

// Bank is a descriptor from the vendor's institution directory.
type Bank struct {
	VendorID string `json:"vendorId"`
	Label    string `json:"label"`
}

// BankDirectory maps vendor bank ids to descriptors. It is populated once at
// the start of a run and read-only afterwards.
type BankDirectory map[string]Bank

func (d BankDirectory) LabelFor(vendorBankID string) string {
	return d[vendorBankID].Label
}
