// Package observability aggregates runtime counters for the telemetry
// worker. Counters are atomic so hot paths never contend on a lock.
package observability

import "sync/atomic"

type Metrics struct {
	registrations  uint64
	rejected       uint64
	disconnects    uint64
	publicRouted   uint64
	privateRouted  uint64
	broadcasts     uint64
	storageFailed  uint64
	censoredWords  uint64
}

// Snapshot is a point-in-time copy of every counter, safe to log or marshal.
type Snapshot struct {
	Registrations         uint64 `json:"registrations"`
	RejectedRegistrations uint64 `json:"rejected_registrations"`
	Disconnects           uint64 `json:"disconnects"`
	PublicRouted          uint64 `json:"public_routed"`
	PrivateRouted         uint64 `json:"private_routed"`
	Broadcasts            uint64 `json:"broadcasts"`
	StorageFailures       uint64 `json:"storage_failures"`
	CensoredWords         uint64 `json:"censored_words"`
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) IncrRegistrations() { atomic.AddUint64(&m.registrations, 1) }

func (m *Metrics) IncrRejectedRegistrations() { atomic.AddUint64(&m.rejected, 1) }

func (m *Metrics) IncrDisconnects() { atomic.AddUint64(&m.disconnects, 1) }

func (m *Metrics) IncrPublicRouted() { atomic.AddUint64(&m.publicRouted, 1) }

func (m *Metrics) IncrPrivateRouted() { atomic.AddUint64(&m.privateRouted, 1) }

func (m *Metrics) IncrBroadcasts() { atomic.AddUint64(&m.broadcasts, 1) }

func (m *Metrics) IncrStorageFailures() { atomic.AddUint64(&m.storageFailed, 1) }

func (m *Metrics) AddCensoredWords(n uint64) { atomic.AddUint64(&m.censoredWords, n) }

func (m *Metrics) GetLatest() Snapshot {
	return Snapshot{
		Registrations:         atomic.LoadUint64(&m.registrations),
		RejectedRegistrations: atomic.LoadUint64(&m.rejected),
		Disconnects:           atomic.LoadUint64(&m.disconnects),
		PublicRouted:          atomic.LoadUint64(&m.publicRouted),
		PrivateRouted:         atomic.LoadUint64(&m.privateRouted),
		Broadcasts:            atomic.LoadUint64(&m.broadcasts),
		StorageFailures:       atomic.LoadUint64(&m.storageFailed),
		CensoredWords:         atomic.LoadUint64(&m.censoredWords),
	}
}
