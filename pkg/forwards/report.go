package forwards

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const ruleWidth = 60

// Sorted returns the per-channel stats ordered by descending total
// amount. Ties keep first-seen order.
func (s *Summary) Sorted() []ChannelStat {
	out := make([]ChannelStat, len(s.stats))
	copy(out, s.stats)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalMsat > out[j].TotalMsat
	})
	return out
}

// Render writes the channel volume report: one row per outgoing
// channel sorted by descending total, a grand-total row, and the
// distinct channel count.
func (s *Summary) Render(w io.Writer) {
	fmt.Fprintln(w, "Channel Out ID Analysis")
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(w, "%-15s %-20s %-10s %-15s\n",
		"Channel ID", "Total Sent (msat)", "Count", "Avg per Forward")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	for _, stat := range s.Sorted() {
		fmt.Fprintf(w, "%-15s %19s %9d %14s\n",
			stat.ChannelID,
			groupThousands(stat.TotalMsat),
			stat.Count,
			groupThousands(stat.AvgMsat()),
		)
	}

	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "%-15s %19s %9d %14s\n",
		"TOTAL",
		groupThousands(s.TotalMsat),
		s.Forwards,
		groupThousands(s.AvgMsat()),
	)
	fmt.Fprintf(w, "\nUnique channels: %d\n", s.UniqueChannels())
}

// groupThousands formats n with comma separators, e.g. 1234567 ->
// "1,234,567".
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
