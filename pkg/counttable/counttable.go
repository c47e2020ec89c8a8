// Package counttable implements the sparse observation tables used to
// aggregate per-read repeat evidence. A table maps a repeat-unit count to
// the number of reads observed with that count.
package counttable

import (
	"fmt"
	"slices"
	"strings"
)

// Table is a sparse mapping from a non-negative element (a number of repeat
// units) to an observation count. The zero value is not usable; construct
// tables with New or FromCounts.
type Table struct {
	counts map[int]int
}

// New returns an empty table.
func New() *Table {
	return &Table{counts: make(map[int]int)}
}

// FromCounts returns a table seeded with the given element counts.
// Entries with non-positive counts are ignored.
func FromCounts(counts map[int]int) *Table {
	table := New()

	for element, count := range counts {
		if count > 0 {
			table.counts[element] = count
		}
	}

	return table
}

// Increment adds one observation of element.
func (t *Table) Increment(element int) {
	t.counts[element]++
}

// Add adds count observations of element.
func (t *Table) Add(element, count int) {
	if count <= 0 {
		return
	}

	t.counts[element] += count
}

// Count returns the number of observations of element (0 if never seen).
func (t *Table) Count(element int) int {
	return t.counts[element]
}

// NonzeroElements returns the elements with at least one observation,
// in ascending order.
func (t *Table) NonzeroElements() []int {
	elements := make([]int, 0, len(t.counts))

	for element := range t.counts {
		elements = append(elements, element)
	}

	slices.Sort(elements)

	return elements
}

// TotalCount returns the total number of observations across all elements.
func (t *Table) TotalCount() int {
	var total int

	for _, count := range t.counts {
		total += count
	}

	return total
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	clone := New()

	for element, count := range t.counts {
		clone.counts[element] = count
	}

	return clone
}

// String renders the table as "{element: count, ...}" in element order.
func (t *Table) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	for i, element := range t.NonzeroElements() {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%d: %d", element, t.counts[element])
	}

	sb.WriteString("}")

	return sb.String()
}

// CollapseTop returns a copy of the table where all observations of elements
// above cutoff are merged into the cutoff bucket. The input table is not
// modified.
func CollapseTop(t *Table, cutoff int) *Table {
	collapsed := New()

	for element, count := range t.counts {
		if element > cutoff {
			collapsed.counts[cutoff] += count
		} else {
			collapsed.counts[element] += count
		}
	}

	return collapsed
}
