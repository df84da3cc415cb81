package flare

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

/*
	Describe renders everything committed under the active incident, one
	fact per line, sorted by type name so output is deterministic.  It
	exists for the "nobody matched this" moment: the outermost boundary
	prints it, files it in an error report, and exits.

	The result is never empty.  A failure nobody attached facts to still
	gets a line saying so (though in practice Raise's own Origin fact
	means there is always at least one), and a context with no kit or no
	live incident says that instead.
*/
func Describe(ctx context.Context) string {
	k := kitFrom(ctx)
	if k == nil || k.current == 0 {
		return "no failure is being tracked in this context"
	}
	var lines []string
	for rt, entry := range k.slots {
		if entry.incident != k.current {
			continue
		}
		lines = append(lines, fmt.Sprintf("\t%s = %v", rt, entry.value))
	}
	if len(lines) == 0 {
		return fmt.Sprintf("failure context (incident %d): none recorded", k.current)
	}
	sort.Strings(lines)
	return fmt.Sprintf("failure context (incident %d):\n%s", k.current, strings.Join(lines, "\n"))
}
