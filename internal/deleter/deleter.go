package deleter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wikidot-applications-deleter/internal/logger"
)

const (
	// DefaultBatchSize keeps each request well below Wikidot's limit of 996 messages
	DefaultBatchSize = 100
	// DefaultBatchDelay es la pausa entre lotes
	DefaultBatchDelay = 1500 * time.Millisecond
)

// ErrBatchFailed marca el aborto de una ejecución por un lote fallido
var ErrBatchFailed = errors.New("batch delete failed")

// Remover is the host's bulk-delete command
type Remover interface {
	RemoveMessages(ctx context.Context, ids []string) error
}

// BeforeBatch runs before each batch is sent. An error aborts the run.
type BeforeBatch func(ctx context.Context, index, count, size int) error

// Partition corta ids en lotes consecutivos de como mucho size elementos
func Partition(ids []string, size int) [][]string {
	if size <= 0 {
		size = DefaultBatchSize
	}
	if len(ids) == 0 {
		return nil
	}
	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end:end])
	}
	return batches
}

// DeleteInBatches removes ids batch by batch, strictly in order. The first failure
// stops the run: later batches are not sent and earlier ones stay deleted.
func DeleteInBatches(ctx context.Context, r Remover, ids []string, size int, before BeforeBatch) error {
	batches := Partition(ids, size)
	for i, batch := range batches {
		if before != nil {
			if err := before(ctx, i, len(batches), len(batch)); err != nil {
				return fmt.Errorf("%w: before batch %d of %d: %w", ErrBatchFailed, i+1, len(batches), err)
			}
		}
		if err := r.RemoveMessages(ctx, batch); err != nil {
			logger.Debug("Deletes failed")
			logger.Error("batch %d of %d (%d messages): %v", i+1, len(batches), len(batch), err)
			return fmt.Errorf("%w: batch %d of %d: %w", ErrBatchFailed, i+1, len(batches), err)
		}
		logger.Debug("Deleted batch %d of %d (%d messages)", i+1, len(batches), len(batch))
	}
	return nil
}

// Pacer es la pausa fija entre lotes
type Pacer struct {
	Delay time.Duration
}

// Wait bloquea durante Delay cuando hay más de un lote
func (p Pacer) Wait(ctx context.Context, count int) error {
	if count <= 1 || p.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(p.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
