// Package forwards aggregates sim-ln forwarded-payment records by
// outgoing channel and renders the per-channel volume report.
package forwards

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/lnresearch/simtools/pkg/fsio"
)

// Column names consumed from the forwards CSV. Any other columns in
// the file are ignored.
const (
	amountColumn  = "outgoing_amt"
	channelColumn = "channel_out_id"
)

// ChannelStat is the accumulated volume of one outgoing channel.
type ChannelStat struct {
	ChannelID string
	TotalMsat int64
	Count     int64
}

// AvgMsat is the mean forward size, rounded to the nearest msat.
func (s ChannelStat) AvgMsat() int64 {
	if s.Count == 0 {
		return 0
	}
	return roundDiv(s.TotalMsat, s.Count)
}

// Summary holds per-channel stats in first-seen order plus grand totals.
type Summary struct {
	stats     []ChannelStat
	index     map[string]int
	TotalMsat int64
	Forwards  int64
}

// Channels returns the per-channel stats in first-seen order.
func (s *Summary) Channels() []ChannelStat {
	return s.stats
}

// UniqueChannels returns the number of distinct outgoing channels seen.
func (s *Summary) UniqueChannels() int {
	return len(s.stats)
}

// AvgMsat is the overall mean forward size, rounded to the nearest msat.
func (s *Summary) AvgMsat() int64 {
	if s.Forwards == 0 {
		return 0
	}
	return roundDiv(s.TotalMsat, s.Forwards)
}

func (s *Summary) add(channelID string, amt int64) {
	i, ok := s.index[channelID]
	if !ok {
		i = len(s.stats)
		s.stats = append(s.stats, ChannelStat{ChannelID: channelID})
		s.index[channelID] = i
	}
	s.stats[i].TotalMsat += amt
	s.stats[i].Count++
	s.TotalMsat += amt
	s.Forwards++
}

// Aggregate reads the forwards CSV at path and accumulates per-channel
// totals. The file must carry a header row naming at least the
// outgoing_amt and channel_out_id columns. A file with a header but no
// data rows yields ErrNoData.
func Aggregate(path string) (*Summary, error) {
	rc, err := fsio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return aggregate(rc, path)
}

func aggregate(r io.Reader, path string) (*Summary, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ReportError{Op: "aggregate", Path: path, Cause: ErrNoData}
	}
	if err != nil {
		return nil, &ReportError{Op: "aggregate", Path: path, Cause: err}
	}

	amtIdx, chanIdx := -1, -1
	for i, name := range header {
		switch name {
		case amountColumn:
			amtIdx = i
		case channelColumn:
			chanIdx = i
		}
	}
	if amtIdx < 0 {
		return nil, &ReportError{Op: "aggregate", Path: path, Column: amountColumn, Cause: ErrMissingColumn}
	}
	if chanIdx < 0 {
		return nil, &ReportError{Op: "aggregate", Path: path, Column: channelColumn, Cause: ErrMissingColumn}
	}

	summary := &Summary{index: make(map[string]int)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ReportError{Op: "aggregate", Path: path, Cause: err}
		}

		amt, err := strconv.ParseInt(record[amtIdx], 10, 64)
		if err != nil {
			return nil, &ReportError{Op: "aggregate", Path: path, Column: amountColumn, Cause: err}
		}
		summary.add(record[chanIdx], amt)
	}

	if summary.Forwards == 0 {
		return nil, &ReportError{Op: "aggregate", Path: path, Cause: ErrNoData}
	}
	return summary, nil
}

// roundDiv divides total by count rounding half away from zero.
func roundDiv(total, count int64) int64 {
	if total >= 0 {
		return (total + count/2) / count
	}
	return (total - count/2) / count
}
