package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/alexanderramin/stagehand/internal/timeline"
)

// formatValidationErrors joins every import problem into one error whose
// first line carries the count.
func formatValidationErrors(errs []error) error {
	return fmt.Errorf("import validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
}

func toTimelineAllocations(allocs []*domain.Allocation) []timeline.Allocation {
	out := make([]timeline.Allocation, len(allocs))
	for i, a := range allocs {
		out[i] = timeline.Allocation{
			TaskID:      a.TaskID,
			EntityID:    a.EventID,
			Date:        a.Date,
			EffortHours: a.EffortHours,
		}
	}
	return out
}

func toTimelineCapacities(caps []*domain.Capacity) []timeline.DailyCapacity {
	out := make([]timeline.DailyCapacity, len(caps))
	for i, c := range caps {
		out[i] = timeline.DailyCapacity{
			EntityID:      c.EventID,
			Date:          c.Date,
			CapacityHours: c.CapacityHours,
		}
	}
	return out
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
