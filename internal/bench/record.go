// Package bench models the per-variant records produced by the truvari
// benchmarking step: match states, SV types, size bins, and the derived
// performance metrics.
package bench

import "sort"

// State classifies a benchmark record against the truth set.
type State string

const (
	StateTPBase State = "tpbase"
	StateTP     State = "tp"
	StateFP     State = "fp"
	StateFN     State = "fn"
)

// States lists all match states in their fixed reporting order. The plot
// panels follow this order.
var States = []State{StateTPBase, StateTP, StateFP, StateFN}

// SizeBins is the canonical size-bin order used by the benchmarking tool.
var SizeBins = []string{
	"[0,50)",
	"[50,100)",
	"[100,200)",
	"[200,300)",
	"[300,400)",
	"[400,600)",
	"[600,800)",
	"[800,1k)",
	"[1k,2.5k)",
	"[2.5k,5k)",
	">=5k",
}

// Record is one benchmarked variant.
type Record struct {
	Chrom   string
	Start   int
	End     int
	State   State
	SVType  string
	SizeBin string
}

// ResultSet holds all records from one benchmarking run.
type ResultSet struct {
	Records []Record
}

// ByState returns the records matching the given state.
func (rs *ResultSet) ByState(s State) []Record {
	var out []Record
	for _, r := range rs.Records {
		if r.State == s {
			out = append(out, r)
		}
	}
	return out
}

// CountTable is a (size bin, SV type) cross-tabulation of record counts.
// Categories with zero records are dropped entirely, so both axes list only
// values that actually occur in the input.
type CountTable struct {
	SizeBins []string
	SVTypes  []string

	counts map[string]map[string]int
}

// Count returns the number of records in the given cell.
func (t *CountTable) Count(sizeBin, svType string) int {
	return t.counts[sizeBin][svType]
}

// CrossTab tabulates record counts per size bin and SV type. Size bins keep
// the canonical order; bins not in the canonical list sort after it. SV types
// are sorted lexically.
func CrossTab(records []Record) *CountTable {
	t := &CountTable{counts: map[string]map[string]int{}}

	svSeen := map[string]bool{}
	for _, r := range records {
		if t.counts[r.SizeBin] == nil {
			t.counts[r.SizeBin] = map[string]int{}
		}
		t.counts[r.SizeBin][r.SVType]++
		svSeen[r.SVType] = true
	}

	for _, bin := range SizeBins {
		if t.counts[bin] != nil {
			t.SizeBins = append(t.SizeBins, bin)
		}
	}
	var extra []string
	for bin := range t.counts {
		if rank(bin) < 0 {
			extra = append(extra, bin)
		}
	}
	sort.Strings(extra)
	t.SizeBins = append(t.SizeBins, extra...)

	for sv := range svSeen {
		t.SVTypes = append(t.SVTypes, sv)
	}
	sort.Strings(t.SVTypes)

	return t
}

func rank(bin string) int {
	for i, b := range SizeBins {
		if b == bin {
			return i
		}
	}
	return -1
}
