package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifelink/lifelink-api/internal/api/metrics"
	"github.com/lifelink/lifelink-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
	defaultTimeout = 30 * time.Second
)

// Dispatcher routes chat jobs to a fixed set of workers using consistent
// hashing on the session id, so one session's messages are answered in the
// order they were sent.
type Dispatcher struct {
	workers []chan ports.ChatJob
	client  ports.ChatClient
	timeout time.Duration
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, client ports.ChatClient, timeout time.Duration, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	d := &Dispatcher{
		workers: make([]chan ports.ChatJob, numWorkers),
		client:  client,
		timeout: timeout,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ChatJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands job to the worker responsible for its session. It blocks
// while that worker's buffer is full and gives up when ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, job ports.ChatJob) error {
	idx := d.shardIndex(job.SessionID)
	select {
	case d.workers[idx] <- job:
	case <-ctx.Done():
		return ctx.Err()
	}
	metrics.ChatQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// shardIndex maps a session id deterministically to a worker index.
func (d *Dispatcher) shardIndex(sessionID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ChatJob) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.ChatQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.handle(ctx, id, job)
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, id int, job ports.ChatJob) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	text, err := d.client.SendMessage(ctx, job.Text)
	metrics.ChatLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		d.log.Error().Err(err).
			Str("session_id", job.SessionID).
			Int("worker_id", id).
			Msg("chat request failed")
	}

	// Reply has room for one value; a requester that gave up never blocks us.
	select {
	case job.Reply <- ports.ChatReply{Text: text, Err: err}:
	default:
	}
}
