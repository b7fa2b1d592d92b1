package timeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexanderramin/stagehand/internal/domain"
)

// Allocation books effort of one task of one entity onto a date.
type Allocation struct {
	TaskID      string  `json:"task_id"`
	EntityID    string  `json:"entity_id"`
	Date        string  `json:"date"`
	EffortHours float64 `json:"effort_hours"`
}

// DailyCapacity is the hour budget of one entity on one date.
type DailyCapacity struct {
	EntityID      string  `json:"entity_id,omitempty"`
	Date          string  `json:"date"`
	CapacityHours float64 `json:"capacity_hours"`
}

// DailyDemand is the summed allocated effort on one date.
type DailyDemand struct {
	Date             string  `json:"date"`
	TotalEffortHours float64 `json:"total_effort_hours"`
}

// DailyCapacityComparison sets one date's demand against its capacity.
type DailyCapacityComparison struct {
	Date             string  `json:"date"`
	DemandHours      float64 `json:"demand_hours"`
	CapacityHours    float64 `json:"capacity_hours"`
	IsOverAllocated  bool    `json:"is_over_allocated"`
	IsUnderAllocated bool    `json:"is_under_allocated"`
}

// EntityLoad bundles the allocations and capacities of one parent entity
// for cross-entity evaluation.
type EntityLoad struct {
	EntityID    string
	Allocations []Allocation
	Capacities  []DailyCapacity
}

// AggregateDailyDemand sums effort per date. Dates without allocations are
// absent from the result, which is sorted by date.
func AggregateDailyDemand(allocations []Allocation) ([]DailyDemand, error) {
	byDate := make(map[string][]float64)
	for i, a := range allocations {
		record := fmt.Sprintf("allocation[%d] task %s", i, a.TaskID)
		if err := checkDateKey(record, a.Date); err != nil {
			return nil, err
		}
		if a.EffortHours < 0 || math.IsNaN(a.EffortHours) {
			return nil, invalid(ErrNegativeEffort, record, "effort %g on %s", a.EffortHours, a.Date)
		}
		byDate[a.Date] = append(byDate[a.Date], a.EffortHours)
	}

	out := make([]DailyDemand, 0, len(byDate))
	for _, d := range sortedDates(byDate) {
		out = append(out, DailyDemand{Date: d, TotalEffortHours: sumSorted(byDate[d])})
	}
	return out, nil
}

// CompareDailyCapacity checks each demand date against the capacity for that
// date. Capacities of different entities on the same date are summed; a date
// without capacity counts as zero. Only demand dates produce rows, see
// UnusedCapacity for the complementary pass. Demand entries sharing a date
// are summed.
func CompareDailyCapacity(demand []DailyDemand, capacities []DailyCapacity) ([]DailyCapacityComparison, error) {
	capByDate, err := mergeCapacities(capacities)
	if err != nil {
		return nil, err
	}
	demandByDate, err := mergeDemand(demand)
	if err != nil {
		return nil, err
	}

	out := make([]DailyCapacityComparison, 0, len(demandByDate))
	for _, d := range sortedDates(demandByDate) {
		dem := sumSorted(demandByDate[d])
		capacity := sumSorted(capByDate[d])
		out = append(out, DailyCapacityComparison{
			Date:             d,
			DemandHours:      dem,
			CapacityHours:    capacity,
			IsOverAllocated:  dem > capacity,
			IsUnderAllocated: dem < capacity,
		})
	}
	return out, nil
}

// MergeAcrossEntities evaluates several entities as one: demand and
// capacity are summed per date across all of them before comparing.
// The result does not depend on the order of loads or of their records.
func MergeAcrossEntities(loads []EntityLoad) ([]DailyCapacityComparison, error) {
	var allocations []Allocation
	var capacities []DailyCapacity
	for _, l := range loads {
		for _, a := range l.Allocations {
			if a.EntityID == "" {
				a.EntityID = l.EntityID
			}
			allocations = append(allocations, a)
		}
		for _, c := range l.Capacities {
			if c.EntityID == "" {
				c.EntityID = l.EntityID
			}
			capacities = append(capacities, c)
		}
	}

	demand, err := AggregateDailyDemand(allocations)
	if err != nil {
		return nil, err
	}
	return CompareDailyCapacity(demand, capacities)
}

// UnusedCapacity lists dates that have positive capacity but no demand.
// Entries are merged per date and carry no entity ID.
func UnusedCapacity(demand []DailyDemand, capacities []DailyCapacity) ([]DailyCapacity, error) {
	capByDate, err := mergeCapacities(capacities)
	if err != nil {
		return nil, err
	}
	demandByDate, err := mergeDemand(demand)
	if err != nil {
		return nil, err
	}

	var out []DailyCapacity
	for _, d := range sortedDates(capByDate) {
		if sumSorted(demandByDate[d]) > 0 {
			continue
		}
		if hours := sumSorted(capByDate[d]); hours > 0 {
			out = append(out, DailyCapacity{Date: d, CapacityHours: hours})
		}
	}
	return out, nil
}

func mergeCapacities(capacities []DailyCapacity) (map[string][]float64, error) {
	seen := make(map[[2]string]bool, len(capacities))
	byDate := make(map[string][]float64)
	for i, c := range capacities {
		record := fmt.Sprintf("capacity[%d] entity %s", i, c.EntityID)
		if err := checkDateKey(record, c.Date); err != nil {
			return nil, err
		}
		if c.CapacityHours < 0 || math.IsNaN(c.CapacityHours) {
			return nil, invalid(ErrNegativeCapacity, record, "capacity %g on %s", c.CapacityHours, c.Date)
		}
		key := [2]string{c.EntityID, c.Date}
		if seen[key] {
			return nil, invalid(ErrDuplicateCapacity, record, "second capacity entry for %s", c.Date)
		}
		seen[key] = true
		byDate[c.Date] = append(byDate[c.Date], c.CapacityHours)
	}
	return byDate, nil
}

func mergeDemand(demand []DailyDemand) (map[string][]float64, error) {
	byDate := make(map[string][]float64, len(demand))
	for i, d := range demand {
		record := fmt.Sprintf("demand[%d]", i)
		if err := checkDateKey(record, d.Date); err != nil {
			return nil, err
		}
		if d.TotalEffortHours < 0 || math.IsNaN(d.TotalEffortHours) {
			return nil, invalid(ErrNegativeEffort, record, "demand %g on %s", d.TotalEffortHours, d.Date)
		}
		byDate[d.Date] = append(byDate[d.Date], d.TotalEffortHours)
	}
	return byDate, nil
}

// sumSorted adds values in ascending order so the float result does not
// depend on the order the values arrived in.
func sumSorted(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	var total float64
	for _, v := range sorted {
		total += v
	}
	return total
}

func sortedDates(m map[string][]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func checkDateKey(record, key string) error {
	if _, err := domain.ParseDateKey(key); err != nil {
		return invalid(ErrInvalidDate, record, "%v", err)
	}
	return nil
}
