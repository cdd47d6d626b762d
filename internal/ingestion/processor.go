package ingestion

import (
	"context"
	"sync"
	"time"

	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
	"fleet-equipment-tracker/internal/logger"

	"go.uber.org/zap"
)

// Processor applies status updates from external workorder processes to
// equipment records through a bounded worker pool. Demand matching only
// ever reads Equipment; this feed is how those records change.
type Processor struct {
	equipmentRepo domainEquipment.Repository

	updates chan *StatusUpdateMessage

	workerCount int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	metrics *MetricsTracker
}

// NewProcessor creates a new status-update processor
func NewProcessor(equipmentRepo domainEquipment.Repository, workerCount, bufferSize int) *Processor {
	if workerCount <= 0 {
		workerCount = 4
	}
	if bufferSize <= 0 {
		bufferSize = 256
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Processor{
		equipmentRepo: equipmentRepo,
		updates:       make(chan *StatusUpdateMessage, bufferSize),
		workerCount:   workerCount,
		ctx:           ctx,
		cancel:        cancel,
		metrics:       NewMetricsTracker(),
	}
}

// Start launches the worker pool.
func (p *Processor) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	logger.Info("Status feed processor started",
		zap.Int("workers", p.workerCount),
		zap.Int("buffer", cap(p.updates)),
	)
}

// Stop drains the workers and waits for them to finish.
func (p *Processor) Stop() {
	p.cancel()
	p.wg.Wait()
	logger.Info("Status feed processor stopped")
}

// Enqueue hands a message to the pool. Messages are dropped when the
// buffer is full; the feed is advisory and the broker redelivers on QoS 1.
func (p *Processor) Enqueue(msg *StatusUpdateMessage) {
	p.metrics.Update(func(m *FeedMetrics) {
		m.MessagesReceived++
		m.BufferSize = len(p.updates)
	})

	select {
	case p.updates <- msg:
	default:
		p.metrics.Update(func(m *FeedMetrics) { m.MessagesFailed++ })
		logger.Warn("Status feed buffer full, dropping update",
			zap.Int64("equipment_id", msg.EquipmentID),
		)
	}
}

// Metrics returns a snapshot of feed counters.
func (p *Processor) Metrics() FeedMetrics {
	return p.metrics.Snapshot()
}

func (p *Processor) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case msg := <-p.updates:
			if err := p.apply(msg); err != nil {
				p.metrics.Update(func(m *FeedMetrics) { m.MessagesFailed++ })
				logger.Warn("Failed to apply status update",
					zap.Int("worker", id),
					zap.Int64("equipment_id", msg.EquipmentID),
					zap.Error(err),
				)
				continue
			}

			p.metrics.Update(func(m *FeedMetrics) {
				m.MessagesProcessed++
				m.LastProcessedAt = time.Now()
			})
		}
	}
}

func (p *Processor) apply(msg *StatusUpdateMessage) error {
	if err := ValidateStatusUpdate(msg); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status := domainEquipment.Status(msg.Status)
	if err := p.equipmentRepo.UpdateStatus(ctx, msg.EquipmentID, status); err != nil {
		return err
	}
	p.metrics.Update(func(m *FeedMetrics) { m.StatusChanges++ })

	if msg.StartDate == nil && msg.EndDate == nil && msg.NextMaintenanceDate == nil {
		return nil
	}

	// Absent date fields keep their stored values, so the write merges
	// the message onto the current record.
	current, err := p.equipmentRepo.GetByID(ctx, msg.EquipmentID)
	if err != nil {
		return err
	}

	start, end, next := current.StartDate, current.EndDate, current.NextMaintenanceDate
	if msg.StartDate != nil {
		start = parseDate(msg.StartDate)
	}
	if msg.EndDate != nil {
		end = parseDate(msg.EndDate)
	}
	if msg.NextMaintenanceDate != nil {
		next = parseDate(msg.NextMaintenanceDate)
	}

	if err := p.equipmentRepo.UpdateOccupancy(ctx, msg.EquipmentID, start, end, next); err != nil {
		return err
	}
	p.metrics.Update(func(m *FeedMetrics) { m.OccupancyChanges++ })

	return nil
}
