package domain

import "time"

// TimelineAction identifies a lifecycle event recorded for a sale.
type TimelineAction string

const (
	TimelineCreated   TimelineAction = "CREATED"
	TimelineCompleted TimelineAction = "COMPLETED"
	TimelineVoided    TimelineAction = "VOIDED"
)

// TimelineEntry is one append-only audit record for a sale. Entries are
// immutable once written and are read back in chronological order.
type TimelineEntry struct {
	EntryID   string         `json:"entryID"` // Primary Key (UUID)
	SaleID    string         `json:"saleID"`  // FK -> Sale.SaleID
	Action    TimelineAction `json:"action"`
	Reason    string         `json:"reason"` // Required for VOIDED, empty otherwise
	Actor     string         `json:"actor"`
	CreatedAt time.Time      `json:"createdAt"`
}
