package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/infrastructure/snapshot"
)

// Monitor periodically samples the snapshot store for the health endpoint.
type Monitor struct {
	store *snapshot.Store

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(store *snapshot.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Store
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	ok, counts := m.checkStore()
	status := Status{
		Store:     ok,
		Counts:    counts,
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkStore() (bool, snapshot.Counts) {
	if m.store == nil {
		return false, snapshot.Counts{}
	}
	counts, err := m.store.Counts()
	if err != nil {
		m.logger.Warn("snapshot store check failed", zap.Error(err))
		return false, counts
	}
	return true, counts
}
