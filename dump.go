package skiplist

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Fdump renders the list's lanes to w as a table, one row per level from the
// highest occupied down to the base lane. Each column is a base-lane
// position; a cell shows the key when the node reaches that level and is
// blank otherwise. At most maxNodes columns are rendered.
func (l *SkipList[K, V]) Fdump(w io.Writer, maxNodes int) {
	if maxNodes <= 0 {
		maxNodes = 16
	}

	var keys []string
	heights := make(map[int]int)
	idx := 0
	for x := l.head.forward[0]; x != l.tail && idx < maxNodes; x = x.forward[0] {
		keys = append(keys, fmt.Sprintf("%v", x.key))
		heights[idx] = len(x.forward)
		idx++
	}

	header := append([]string{"Level"}, keys...)
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)

	for level := l.highest; level >= 0; level-- {
		row := []string{fmt.Sprintf("%d", level)}
		for i, key := range keys {
			if heights[i] > level {
				row = append(row, key)
			} else {
				row = append(row, "")
			}
		}
		table.Append(row)
	}
	table.Render()
}
