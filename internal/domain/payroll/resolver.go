package payroll

import (
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// The head-office sheet does not keep a stable column order between
// months, so its schema carries label patterns instead of letters. The
// resolver reads the two header rows (parent labels, then subheaders),
// flattens them into a searchable index and binds each pattern to a
// column. Fields that match nothing and have no default column are
// reported back as unresolved rather than silently read as zero.

type headerEntry struct {
	key string
	col int
}

// resolveColumns binds every pattern of sc to a column letter using the
// header index at headerRow. The second result lists fields that could
// not be bound.
func resolveColumns(b *Book, sc Schema, headerRow int) (map[Field]string, []Field) {
	entries := buildHeaderIndex(b, headerRow)

	cols := make(map[Field]string, len(sc.Patterns))
	var unresolved []Field
	for _, p := range sc.Patterns {
		if col, ok := findColumn(entries, p.Labels); ok {
			cols[p.Field] = col
			continue
		}
		if p.Default != "" {
			cols[p.Field] = p.Default
			continue
		}
		unresolved = append(unresolved, p.Field)
	}
	return cols, unresolved
}

// findColumn tries each candidate label in order against the index and
// returns the letter of the leftmost entry containing it.
func findColumn(entries []headerEntry, labels []string) (string, bool) {
	for _, label := range labels {
		for _, e := range entries {
			if strings.Contains(e.key, label) {
				name, err := excelize.ColumnNumberToName(e.col)
				if err != nil {
					continue
				}
				return name, true
			}
		}
	}
	return "", false
}

// buildHeaderIndex flattens the two header rows into entries. A parent
// label contributes its own entry for every column it covers, directly
// or through a merged range. A subheader cell contributes a combined
// "parent subheader" entry; its parent is the cell directly above, else
// the merged range spanning its column, else the nearest non-empty
// parent to its left. Entries are ordered by column, parents before
// combined keys at the same column.
func buildHeaderIndex(b *Book, headerRow int) []headerEntry {
	parents := map[int]string{}
	for i, cell := range b.Row(headerRow) {
		if v := normalizeLabel(cell); v != "" {
			parents[i+1] = v
		}
	}

	for _, mc := range b.MergedRanges() {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		if headerRow < startRow || headerRow > endRow {
			continue
		}
		label := normalizeLabel(mc.GetCellValue())
		if label == "" {
			continue
		}
		for col := startCol; col <= endCol; col++ {
			if parents[col] == "" {
				parents[col] = label
			}
		}
	}

	var entries []headerEntry
	for col, label := range parents {
		entries = append(entries, headerEntry{key: label, col: col})
	}

	for i, cell := range b.Row(headerRow + 1) {
		sub := normalizeLabel(cell)
		if sub == "" {
			continue
		}
		col := i + 1
		parent := parents[col]
		if parent == "" {
			for left := col - 1; left >= 1; left-- {
				if parents[left] != "" {
					parent = parents[left]
					break
				}
			}
		}
		key := sub
		if parent != "" {
			key = parent + " " + sub
		}
		entries = append(entries, headerEntry{key: key, col: col})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].col != entries[j].col {
			return entries[i].col < entries[j].col
		}
		return len(entries[i].key) < len(entries[j].key)
	})
	return entries
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
