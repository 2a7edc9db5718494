package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aescanero/dago-node-drafter/internal/config"
)

// messageTimeout bounds rendering, export and publishing of one message.
// It is independent of the worker context so shutdown lets the in-flight
// message complete.
const messageTimeout = 30 * time.Second

// streamClient is the subset of the Redis client the worker uses
type streamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
}

// Worker represents the drafter worker
type Worker struct {
	id            string
	config        *config.Config
	redisClient   streamClient
	processor     *Processor
	logger        *zap.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	streamKey     string
	consumerGroup string
	resultStream  string
}

// NewWorker creates a new worker
func NewWorker(
	cfg *config.Config,
	redisClient *redis.Client,
	processor *Processor,
	logger *zap.Logger,
) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	return &Worker{
		id:            cfg.WorkerID,
		config:        cfg,
		redisClient:   redisClient,
		processor:     processor,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		streamKey:     cfg.StreamKey,
		consumerGroup: cfg.ConsumerGroup,
		resultStream:  cfg.ResultStream,
	}
}

// Start starts the worker
func (w *Worker) Start() error {
	w.logger.Info("starting drafter worker",
		zap.String("worker_id", w.id),
		zap.String("stream_key", w.streamKey),
		zap.String("consumer_group", w.consumerGroup),
	)

	// Create consumer group if it doesn't exist
	if err := w.ensureConsumerGroup(); err != nil {
		return fmt.Errorf("failed to ensure consumer group: %w", err)
	}

	w.wg.Add(1)
	go w.processWork()

	w.logger.Info("drafter worker started", zap.String("worker_id", w.id))
	return nil
}

// Stop stops the worker and waits for the in-flight message to finish
func (w *Worker) Stop(ctx context.Context) error {
	w.logger.Info("stopping drafter worker", zap.String("worker_id", w.id))

	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("drafter worker stopped", zap.String("worker_id", w.id))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker did not stop in time: %w", ctx.Err())
	}
}

// ensureConsumerGroup creates the consumer group if it doesn't exist
func (w *Worker) ensureConsumerGroup() error {
	err := w.redisClient.XGroupCreateMkStream(w.ctx, w.streamKey, w.consumerGroup, "0").Err()
	if err != nil {
		// BUSYGROUP error means the group already exists, which is fine
		if err.Error() == "BUSYGROUP Consumer Group name already exists" {
			w.logger.Debug("consumer group already exists",
				zap.String("group", w.consumerGroup),
			)
			return nil
		}
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	w.logger.Info("created consumer group",
		zap.String("group", w.consumerGroup),
		zap.String("stream", w.streamKey),
	)
	return nil
}

// processWork processes work from the Redis stream
func (w *Worker) processWork() {
	defer w.wg.Done()
	w.logger.Info("starting work processing loop")

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info("work processing loop stopped")
			return
		default:
			streams, err := w.redisClient.XReadGroup(w.ctx, &redis.XReadGroupArgs{
				Group:    w.consumerGroup,
				Consumer: w.id,
				Streams:  []string{w.streamKey, ">"},
				Count:    1,
				Block:    w.config.BlockTime,
			}).Result()

			if err != nil {
				if err == redis.Nil || w.ctx.Err() != nil {
					continue
				}
				w.logger.Error("failed to read from stream",
					zap.Error(err),
				)
				time.Sleep(time.Second)
				continue
			}

			for _, stream := range streams {
				for _, message := range stream.Messages {
					w.handleMessage(message)
				}
			}
		}
	}
}

// handleMessage handles a single render request message. A message whose
// outcome could not be published is left pending so it is redelivered.
func (w *Worker) handleMessage(message redis.XMessage) {
	messageID := message.ID
	w.logger.Info("processing render request",
		zap.String("message_id", messageID),
	)

	request, err := parseRenderRequest(message.Values)
	if err != nil {
		w.logger.Error("failed to parse render request",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
		w.acknowledgeMessage(messageID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	result, err := w.processor.Process(ctx, request)
	if err != nil {
		w.logger.Warn("render request failed",
			zap.String("message_id", messageID),
			zap.String("request_id", request.RequestID),
			zap.String("kind", request.Kind),
			zap.Error(err),
		)
		if err := w.publishError(ctx, request, err); err != nil {
			w.logger.Error("failed to publish error event, leaving message pending",
				zap.String("message_id", messageID),
				zap.String("request_id", request.RequestID),
				zap.Error(err),
			)
			return
		}
	} else if err := w.publishResult(ctx, result); err != nil {
		w.logger.Error("failed to publish render result, leaving message pending",
			zap.String("message_id", messageID),
			zap.String("request_id", request.RequestID),
			zap.Error(err),
		)
		return
	}

	w.acknowledgeMessage(messageID)
}

// publishResult publishes a rendered document
func (w *Worker) publishResult(ctx context.Context, result *RenderResult) error {
	event := map[string]interface{}{
		"result":    result,
		"timestamp": time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = w.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: w.resultStream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if err != nil {
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	w.logger.Info("published rendered document",
		zap.String("request_id", result.RequestID),
		zap.String("kind", result.Kind),
		zap.Int("lines", result.LineCount),
		zap.String("exported_to", result.ExportedTo),
	)

	return nil
}

// publishError publishes an error event
func (w *Worker) publishError(ctx context.Context, request *RenderRequest, err error) error {
	errorEvent := map[string]interface{}{
		"request_id": request.RequestID,
		"kind":       request.Kind,
		"error":      err.Error(),
		"code":       errorCode(err),
		"timestamp":  time.Now().UTC(),
	}

	data, marshalErr := json.Marshal(errorEvent)
	if marshalErr != nil {
		return fmt.Errorf("failed to marshal error event: %w", marshalErr)
	}

	// Publish error to a separate stream
	_, publishErr := w.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: w.resultStream + ".errors",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if publishErr != nil {
		return fmt.Errorf("failed to publish error event: %w", publishErr)
	}

	return nil
}

// acknowledgeMessage acknowledges a message from the stream
func (w *Worker) acknowledgeMessage(messageID string) {
	// The worker context may already be cancelled during shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := w.redisClient.XAck(ctx, w.streamKey, w.consumerGroup, messageID).Err()
	if err != nil {
		w.logger.Error("failed to acknowledge message",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
	}
}
