package domain

import "time"

// Transfer is the audit record of a completed stock movement between two
// districts. The movement itself commits synchronously; the audit record is
// persisted asynchronously.
type Transfer struct {
	ID               string
	SourceDistrictID int64
	TargetDistrictID int64
	ItemKey          string
	Quantity         int
	CreatedAt        time.Time
}
