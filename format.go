package dateset

import (
	"fmt"
	"strings"
)

// String lists each interval as "from <start> to <end>", joined by " and\n".
// The empty set renders as "".
func (s DateSet) String() string {
	parts := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		parts[i] = fmt.Sprintf("from %s to %s", iv.start, iv.end)
	}
	return strings.Join(parts, " and\n")
}

func (s DateSet) GoString() string {
	earliest, ok := s.Earliest()
	if !ok {
		return "DateSet[0](none, none)"
	}
	latest, _ := s.Latest()
	return fmt.Sprintf("DateSet[%d](%s, %s)", len(s.intervals), earliest, latest)
}
