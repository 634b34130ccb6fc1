package server

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_kafka "github.com/articurated/ordermanagement/internal/kafka/mocks"
)

func TestAuditManagerPublishesEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := mock_kafka.NewMockProducer(ctrl)

	var mu sync.Mutex
	var published []AuditLogEntry
	producer.EXPECT().
		SendMessage(gomock.Any(), TopicAuditLogs, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []byte, value []byte) error {
			var entry AuditLogEntry
			require.NoError(t, json.Unmarshal(value, &entry))
			mu.Lock()
			published = append(published, entry)
			mu.Unlock()
			return nil
		}).
		AnyTimes()

	m := NewAuditManager(2, 3, 50*time.Millisecond, producer, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	for i := 0; i < 5; i++ {
		m.LogEntry(ctx, AuditLogEntry{
			Timestamp: time.Now().UTC(),
			Method:    "POST",
			Path:      "/orders",
			Actor:     "ops",
		})
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(published) == 5
	}, 2*time.Second, 10*time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	m.Shutdown(shutdownCtx)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, published, 5)
	assert.Equal(t, "/orders", published[0].Path)
}

func TestAuditManagerDropsWhenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := mock_kafka.NewMockProducer(ctrl)

	// Never started: the input channel fills up and LogEntry must not block.
	m := NewAuditManager(1, 1, 50*time.Millisecond, producer, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			m.LogEntry(context.Background(), AuditLogEntry{Method: "GET", Path: "/orders"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("LogEntry blocked on a full pipeline")
	}
}
