package aggregate

import "keyword-dashboard/internal/domain"

type SourceResult struct {
	Source  domain.Source
	Records []domain.KeywordRecord
}

func (s SourceResult) Count() int { return len(s.Records) }

func (s SourceResult) Volume() int64 {
	var total int64
	for _, r := range s.Records {
		total += r.Volume
	}
	return total
}

// Result holds every source in configuration order.
type Result struct {
	Sources []SourceResult
}

func (r *Result) TotalRecords() int {
	n := 0
	for _, s := range r.Sources {
		n += s.Count()
	}
	return n
}

func (r *Result) TotalVolume() int64 {
	var total int64
	for _, s := range r.Sources {
		total += s.Volume()
	}
	return total
}

// Self returns the operator's own source, if one is configured.
func (r *Result) Self() (SourceResult, bool) {
	for _, s := range r.Sources {
		if s.Source.IsSelf() {
			return s, true
		}
	}
	return SourceResult{}, false
}

func (r *Result) Competitors() []SourceResult {
	var out []SourceResult
	for _, s := range r.Sources {
		if !s.Source.IsSelf() {
			out = append(out, s)
		}
	}
	return out
}
