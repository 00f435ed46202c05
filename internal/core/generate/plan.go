package generate

import (
	"fmt"

	"synthetic-data-generator/internal/core/types"
)

type Plan struct {
	Counts  []int64
	Dropped int64
}

func (p Plan) Total() int64 {
	var total int64
	for _, c := range p.Counts {
		total += c
	}
	return total
}

// PlanPartitions splits total records over files output files.
func PlanPartitions(total int64, files int, policy RemainderPolicy) Plan {
	base := total / int64(files)
	remainder := total % int64(files)

	plan := Plan{Counts: make([]int64, files)}
	for i := range plan.Counts {
		plan.Counts[i] = base
		if policy != RemainderDrop && int64(i) < remainder {
			plan.Counts[i]++
		}
	}
	if policy == RemainderDrop {
		plan.Dropped = remainder
	}
	return plan
}

func FileName(kind types.Kind, index int, extension string) string {
	return fmt.Sprintf("worker_%s%d.%s", kind.Letter(), index, extension)
}
