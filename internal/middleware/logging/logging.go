package logging

import (
	"net/http"
	"time"

	"github.com/VinothKuppanna/gastimator/internal/common"
	"github.com/VinothKuppanna/gastimator/pkg/data/model"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	"github.com/nsqio/go-nsq"
)

const (
	NSQApiRequestTopic = "api_requests"
	component          = "gastimator"
)

// Publisher is satisfied by *nsq.Producer.
type Publisher interface {
	Publish(topic string, body []byte) error
}

type handler struct {
	publisher Publisher
	logger    log.Logger
}

// New returns the request logging middleware. publisher may be nil, in which
// case requests are only logged locally.
func New(publisher Publisher, logger log.Logger) *handler {
	return &handler{publisher, log.With(logger, "component", "http")}
}

// NewProducer connects the request log archive to nsqd at address.
func NewProducer(address string) (*nsq.Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, err
	}
	if err = producer.Ping(); err != nil {
		producer.Stop()
		return nil, err
	}
	return producer, nil
}

func (h *handler) logging(next http.Handler) http.Handler {
	fn := func(resp http.ResponseWriter, req *http.Request) {
		start := time.Now()
		wrapped := common.WrapResponse(resp)
		next.ServeHTTP(wrapped, req)
		took := time.Since(start)

		entry := model.LogEntry{
			Topic:      NSQApiRequestTopic,
			Severity:   "INFO",
			Message:    http.StatusText(wrapped.Status()),
			Component:  component,
			Method:     req.Method,
			Path:       req.URL.Path,
			Status:     wrapped.Status(),
			DurationMs: took.Milliseconds(),
			Time:       start.UTC(),
		}
		logger := level.Info(h.logger)
		if errorMsg := wrapped.Error(); len(errorMsg) > 0 {
			logger = level.Error(h.logger)
			entry.Severity = "ERROR"
			entry.Message = string(errorMsg)
		}
		_ = logger.Log("method", req.Method, "path", req.URL.Path, "status", wrapped.Status(), "took", took)
		go h.archiveLog(entry)
	}
	return http.HandlerFunc(fn)
}

func (h *handler) archiveLog(entry model.LogEntry) {
	if h.publisher == nil {
		return
	}
	bytes, err := entry.Bytes()
	if err != nil {
		_ = level.Error(h.logger).Log("msg", "failed to marshal log entry", "err", err)
		return
	}
	if err = h.publisher.Publish(NSQApiRequestTopic, bytes); err != nil {
		_ = level.Error(h.logger).Log("msg", "failed to publish log entry", "topic", NSQApiRequestTopic, "err", err)
	}
}

func (h *handler) Setup(router *mux.Router) {
	router.Use(h.logging)
}
