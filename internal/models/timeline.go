package models

import "time"

// TimelineAction identifies a lifecycle event recorded for a sale.
type TimelineAction string

const (
	TimelineCreated   TimelineAction = "CREATED"
	TimelineCompleted TimelineAction = "COMPLETED"
	TimelineVoided    TimelineAction = "VOIDED"
)

// TimelineEntry is the persistence model for the sale_timeline table.
// Rows are append-only; there are no update or delete paths.
type TimelineEntry struct {
	EntryID   string         `json:"entryID"`
	SaleID    string         `json:"saleID"`
	Action    TimelineAction `json:"action"`
	Reason    string         `json:"reason"`
	Actor     string         `json:"actor"`
	CreatedAt time.Time      `json:"createdAt"`
}
