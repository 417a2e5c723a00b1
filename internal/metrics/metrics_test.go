package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestDisabledNoIncrement(t *testing.T) {
	m := New(Config{Enabled: false})
	m.Inc(MetricLoginSuccess)

	if got := m.Value(MetricLoginSuccess); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestEnabledIncrement(t *testing.T) {
	m := New(Config{Enabled: true})
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)

	if got := m.Value(MetricLoginSuccess); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestConcurrentIncrementSafe(t *testing.T) {
	m := New(Config{Enabled: true})

	const goroutines = 32
	const perG = 4000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				m.Inc(MetricTransferSuccess)
			}
		}()
	}
	wg.Wait()

	want := uint64(goroutines * perG)
	if got := m.Value(MetricTransferSuccess); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestHistogramBucketCorrectness(t *testing.T) {
	m := New(Config{
		Enabled:       true,
		EnableLatency: true,
	})

	observations := []time.Duration{
		5 * time.Millisecond,
		10 * time.Millisecond,
		25 * time.Millisecond,
		50 * time.Millisecond,
		100 * time.Millisecond,
		250 * time.Millisecond,
		500 * time.Millisecond,
		700 * time.Millisecond,
	}

	for _, d := range observations {
		m.Observe(MetricTransferLatency, d)
	}

	snap := m.SnapshotNow()
	buckets := snap.Histograms[MetricTransferLatency]
	if len(buckets) != histBucketCount {
		t.Fatalf("expected %d buckets, got %d", histBucketCount, len(buckets))
	}
	for i, v := range buckets {
		if v != 1 {
			t.Fatalf("bucket %d = %d, want 1", i, v)
		}
	}
}

func TestObserveIgnoresOtherIDs(t *testing.T) {
	m := New(Config{Enabled: true, EnableLatency: true})
	m.Observe(MetricLoginSuccess, time.Millisecond)

	snap := m.SnapshotNow()
	for i, v := range snap.Histograms[MetricTransferLatency] {
		if v != 0 {
			t.Fatalf("bucket %d = %d, want 0", i, v)
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	m := New(Config{Enabled: true})
	m.Inc(MetricLogout)

	snap := m.SnapshotNow()
	m.Inc(MetricLogout)

	if got := snap.Counters[MetricLogout]; got != 1 {
		t.Fatalf("snapshot mutated after the fact: %d", got)
	}
	if got := m.Value(MetricLogout); got != 2 {
		t.Fatalf("live value = %d, want 2", got)
	}
}
