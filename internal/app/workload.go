package app

import (
	"time"

	"github.com/alexanderramin/stagehand/internal/timeline"
)

// WorkloadRequest evaluates one event, or several merged into one when
// Merge is set. Now defaults to the current time.
type WorkloadRequest struct {
	EventIDs []string
	Merge    bool
	Now      *time.Time
}

// EventWorkload is the evaluation of a single event, or of the merged set
// when EventID is empty.
type EventWorkload struct {
	EventID        string                             `json:"event_id,omitempty"`
	EventName      string                             `json:"event_name,omitempty"`
	Demand         []timeline.DailyDemand             `json:"demand"`
	Comparison     []timeline.DailyCapacityComparison `json:"comparison"`
	UnusedCapacity []timeline.DailyCapacity           `json:"unused_capacity"`
	OverAllocated  int                                `json:"over_allocated_days"`
}

// TaskPressureView decorates a pressure result with the task title.
type TaskPressureView struct {
	Title string `json:"title"`
	timeline.TaskPressure
}

type WorkloadResponse struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Events      []EventWorkload    `json:"events"`
	Pressure    []TaskPressureView `json:"pressure"`
}
