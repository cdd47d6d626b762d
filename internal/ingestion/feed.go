package ingestion

import (
	"encoding/json"
	"time"

	"fleet-equipment-tracker/internal/config"
	domainEquipment "fleet-equipment-tracker/internal/domain/equipment"
	"fleet-equipment-tracker/internal/logger"
	"fleet-equipment-tracker/pkg/mqtt"

	"go.uber.org/zap"
)

// Feed subscribes to the equipment status topic and pipes decoded
// messages into the processor.
type Feed struct {
	client    *mqtt.Client
	processor *Processor
	topic     string
	qos       byte
}

// NewFeed creates the MQTT status feed from configuration.
func NewFeed(cfg *config.MQTTConfig, equipmentRepo domainEquipment.Repository) *Feed {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "fleet-equipment-tracker"
	}

	client := mqtt.NewClient(&mqtt.Config{
		Broker:               cfg.Broker,
		ClientID:             clientID,
		Username:             cfg.Username,
		Password:             cfg.Password,
		CleanSession:         true,
		KeepAlive:            cfg.KeepAlive,
		ConnectTimeout:       cfg.ConnectTimeout,
		AutoReconnect:        true,
		MaxReconnectInterval: time.Minute,
	}, logger.Logger)

	return &Feed{
		client:    client,
		processor: NewProcessor(equipmentRepo, cfg.WorkerCount, cfg.BufferSize),
		topic:     cfg.StatusTopic,
		qos:       byte(cfg.QoS),
	}
}

// Start connects to the broker, starts the worker pool, and subscribes.
func (f *Feed) Start() error {
	f.processor.Start()

	if err := f.client.Connect(); err != nil {
		f.processor.Stop()
		return err
	}

	return f.client.Subscribe(f.topic, f.qos, f.handleMessage)
}

// Stop unsubscribes and drains the processor.
func (f *Feed) Stop() {
	if err := f.client.Unsubscribe(f.topic); err != nil {
		logger.Warn("Failed to unsubscribe from status topic", zap.Error(err))
	}
	f.client.Disconnect()
	f.processor.Stop()
}

// Metrics exposes processor counters for the health endpoint.
func (f *Feed) Metrics() FeedMetrics {
	return f.processor.Metrics()
}

func (f *Feed) handleMessage(topic string, payload []byte) {
	var msg StatusUpdateMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		logger.Warn("Dropping malformed status update",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}

	f.processor.Enqueue(&msg)
}
