package web

import (
	"sync/atomic"
	"time"
)

type Status struct {
	startUnixNano int64
	packetsBuilt  uint64
	rejected      uint64
	lastBuildNano int64
}

func NewStatus() *Status {
	s := &Status{}
	atomic.StoreInt64(&s.startUnixNano, time.Now().UTC().UnixNano())
	return s
}

func (s *Status) MarkBuilt(nowUTC time.Time) {
	if nowUTC.IsZero() {
		nowUTC = time.Now().UTC()
	}
	atomic.StoreInt64(&s.lastBuildNano, nowUTC.UnixNano())
	atomic.AddUint64(&s.packetsBuilt, 1)
}

func (s *Status) MarkRejected() {
	atomic.AddUint64(&s.rejected, 1)
}

type StatusSnapshot struct {
	Service      string `json:"service"`
	NowUTC       string `json:"now_utc"`
	UptimeSec    int64  `json:"uptime_sec"`
	PacketsBuilt uint64 `json:"packets_built_total"`
	Rejected     uint64 `json:"rejected_total"`
	LastBuildUTC string `json:"last_build_utc,omitempty"`
}

func (s *Status) Snapshot(nowUTC time.Time) StatusSnapshot {
	if nowUTC.IsZero() {
		nowUTC = time.Now().UTC()
	}
	start := time.Unix(0, atomic.LoadInt64(&s.startUnixNano)).UTC()
	last := atomic.LoadInt64(&s.lastBuildNano)

	snap := StatusSnapshot{
		Service:      "esp-gen",
		NowUTC:       nowUTC.UTC().Format(time.RFC3339Nano),
		UptimeSec:    int64(nowUTC.Sub(start).Seconds()),
		PacketsBuilt: atomic.LoadUint64(&s.packetsBuilt),
		Rejected:     atomic.LoadUint64(&s.rejected),
	}
	if last != 0 {
		snap.LastBuildUTC = time.Unix(0, last).UTC().Format(time.RFC3339Nano)
	}
	return snap
}
