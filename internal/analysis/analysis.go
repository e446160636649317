// Package analysis provides read-only reporting over captured provenance
// sessions: per-operation call statistics, frequent call sequences, and
// JSONL/DOT exports. It never mutates its input.
package analysis

import (
	"sort"
	"strings"
	"time"

	"github.com/petersancho/semreg/internal/provenance"
)

// windowSize is the length of the contiguous operation-id windows mined
// for common call sequences.
const windowSize = 3

// topSequences caps how many sequences a report carries.
const topSequences = 10

// OpStats aggregates every call of one operation within a session.
type OpStats struct {
	OpID        string        `json:"opId"`
	Calls       int           `json:"calls"`
	AvgDuration time.Duration `json:"avgDuration"`
	ErrorRate   float64       `json:"errorRate"`
}

// Sequence is a contiguous run of operation ids and how often it
// occurred across the session.
type Sequence struct {
	Ops   []string `json:"ops"`
	Count int      `json:"count"`
}

// SessionReport summarizes one captured session.
type SessionReport struct {
	SessionID string `json:"sessionId"`
	Entries   int    `json:"entries"`
	Errors    int    `json:"errors"`

	// Ops is sorted by call count, most called first, ties by id.
	Ops []OpStats `json:"ops"`

	// Sequences holds the most frequent length-3 windows, ranked by
	// frequency with ties broken by first appearance.
	Sequences []Sequence `json:"sequences"`
}

// AnalyzeSession computes per-operation statistics and common call
// sequences in one linear pass over the session's entries.
func AnalyzeSession(session provenance.SessionTrace) SessionReport {
	type opTally struct {
		calls  int
		total  time.Duration
		errors int
	}
	type seqTally struct {
		ops       []string
		count     int
		firstSeen int
	}

	ops := make(map[string]*opTally)
	seqs := make(map[string]*seqTally)
	report := SessionReport{
		SessionID: session.ID,
		Entries:   len(session.Entries),
	}

	for i, entry := range session.Entries {
		tally := ops[entry.OpID]
		if tally == nil {
			tally = &opTally{}
			ops[entry.OpID] = tally
		}
		tally.calls++
		tally.total += entry.Duration
		if entry.Failed() {
			tally.errors++
			report.Errors++
		}

		if i+windowSize <= len(session.Entries) {
			window := make([]string, windowSize)
			for j := range window {
				window[j] = session.Entries[i+j].OpID
			}
			key := strings.Join(window, "|")
			seq := seqs[key]
			if seq == nil {
				seq = &seqTally{ops: window, firstSeen: i}
				seqs[key] = seq
			}
			seq.count++
		}
	}

	for opID, tally := range ops {
		report.Ops = append(report.Ops, OpStats{
			OpID:        opID,
			Calls:       tally.calls,
			AvgDuration: tally.total / time.Duration(tally.calls),
			ErrorRate:   float64(tally.errors) / float64(tally.calls),
		})
	}
	sort.Slice(report.Ops, func(i, j int) bool {
		if report.Ops[i].Calls != report.Ops[j].Calls {
			return report.Ops[i].Calls > report.Ops[j].Calls
		}
		return report.Ops[i].OpID < report.Ops[j].OpID
	})

	ranked := make([]*seqTally, 0, len(seqs))
	for _, seq := range seqs {
		ranked = append(ranked, seq)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].firstSeen < ranked[j].firstSeen
	})
	if len(ranked) > topSequences {
		ranked = ranked[:topSequences]
	}
	for _, seq := range ranked {
		report.Sequences = append(report.Sequences, Sequence{Ops: seq.ops, Count: seq.count})
	}

	return report
}
