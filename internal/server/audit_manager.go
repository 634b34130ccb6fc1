package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/articurated/ordermanagement/internal/kafka"
)

// AuditManager batches audit entries and publishes them to the audit topic
// from a small worker pool. Entries are best-effort: a full pipeline or a
// broker failure degrades to local logging, never blocks a request.
type AuditManager struct {
	workerCount int
	batchSize   int
	timeout     time.Duration

	producer kafka.Producer
	logger   *zap.Logger

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

func NewAuditManager(workerCount, batchSize int, timeout time.Duration, producer kafka.Producer, logger *zap.Logger) *AuditManager {
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		producer:    producer,
		logger:      logger.With(zap.String("component", "audit_manager")),
		inputChan:   make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.logger.Info("starting audit manager")
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("audit manager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("audit manager shutdown interrupted")
		}
	})
}

func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	select {
	case m.inputChan <- entry:
	default:
		// Pipeline full; drop to the local log instead of blocking the
		// request path.
		m.logger.Warn("audit pipeline full, entry logged locally",
			zap.String("method", entry.Method),
			zap.String("path", entry.Path))
	}
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	batchCopy := make([]AuditLogEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		m.publishBatch(context.Background(), batchCopy)
	}
}

func (m *AuditManager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batchChan:
			if !ok {
				return
			}
			m.publishBatch(ctx, batch)
		case <-m.shutdownCh:
			// Drain what is already batched before exiting.
			for {
				select {
				case batch, ok := <-m.batchChan:
					if !ok {
						return
					}
					m.publishBatch(context.Background(), batch)
				default:
					return
				}
			}
		}
	}
}

func (m *AuditManager) publishBatch(ctx context.Context, batch []AuditLogEntry) {
	for _, entry := range batch {
		value, err := json.Marshal(entry)
		if err != nil {
			m.logger.Error("failed to marshal audit entry", zap.Error(err))
			continue
		}
		if err := m.producer.SendMessage(ctx, TopicAuditLogs, []byte(entry.EntityID), value); err != nil {
			m.logger.Warn("failed to publish audit entry, logged locally",
				zap.String("method", entry.Method),
				zap.String("path", entry.Path),
				zap.Error(err))
		}
	}
}
