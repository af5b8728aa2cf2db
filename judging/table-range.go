package judging

import (
	"strconv"
	"strings"
)

// MaxRangeSize bounds a single "A-B" token; larger ranges are treated as malformed.
const MaxRangeSize = 10000

// ParseTableNumbers expands a table list such as "1, 3-5, A12" into table numbers.
// Ranges are inclusive and numeric; ranges with non-numeric bounds are dropped.
func ParseTableNumbers(spec string) []string {
	tableNumbers := make([]string, 0)
	seen := make(map[string]bool)
	add := func(table string) {
		if !seen[table] {
			seen[table] = true
			tableNumbers = append(tableNumbers, table)
		}
	}
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !strings.Contains(token, "-") {
			add(token)
			continue
		}
		bounds := strings.SplitN(token, "-", 2)
		start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			continue
		}
		if start < 0 || end < start || end-start >= MaxRangeSize {
			continue
		}
		// break before i++ so an end of MaxInt cannot wrap
		for i := start; ; i++ {
			add(strconv.Itoa(i))
			if i == end {
				break
			}
		}
	}
	return tableNumbers
}
