package domain

// DomainStats holds hit/miss counters for one cache domain.
type DomainStats struct {
	Hits   uint64
	Misses uint64
}

// Rate returns the hit rate in percent, 0 when the domain was never queried.
func (s DomainStats) Rate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Stats is a point-in-time snapshot of cache behaviour across domains.
type Stats struct {
	Enabled     bool
	MemoryUsage int64
	MemoryMax   int64
	Sizes       map[CacheDomain]int
	PerDomain   map[CacheDomain]DomainStats
}

// OverallRate returns the aggregate hit rate across all domains in percent.
func (s Stats) OverallRate() float64 {
	var hits, total uint64
	for _, ds := range s.PerDomain {
		hits += ds.Hits
		total += ds.Hits + ds.Misses
	}
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}
