package trex

import (
	"fmt"
	"sort"
	"strings"
)

// Captures maps a capture slot to the exact substring that slot matched on
// the successful match path. Slot 0 is the whole match; slots 1..N follow the
// order in which groups open in the pattern. A group that never matched has
// no entry, which is distinct from a group that matched the empty string.
type Captures map[int]string

// String renders the table with slots in ascending order, e.g.
// {0: "bcddc", 1: "b", 2: "cddc", 3: "c"}.
func (c Captures) String() string {
	slots := make([]int, 0, len(c))
	for slot := range c {
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	var builder strings.Builder
	builder.WriteString("{")
	for i, slot := range slots {
		if i > 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%d: %q", slot, c[slot])
	}
	builder.WriteString("}")
	return builder.String()
}
