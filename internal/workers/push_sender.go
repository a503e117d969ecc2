package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"roadassist/internal/config"
	"roadassist/internal/domain"
	"roadassist/internal/redis"
	"roadassist/pkg/e"
)

// PushSender drains the push queue and delivers committed notifications to
// the push gateway. Delivery here is best-effort: the notification rows are
// already durable inside the request's transaction.
type PushSender struct {
	logger *slog.Logger
	cfg    config.PushConfig
	queue  *redis.PushQueue
	http   *http.Client
}

func NewPushSender(logger *slog.Logger, cfg config.PushConfig, q *redis.PushQueue) *PushSender {
	return &PushSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *PushSender) Run(ctx context.Context) {
	if s.cfg.Disabled {
		s.logger.Info("pushSender disabled")
		return
	}

	s.logger.Info("pushSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("pushSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending push",
			slog.String("notification_id", payload.NotificationID.String()),
			slog.String("account_id", payload.AccountID.String()),
		)
		s.sendWithRetry(ctx, payload)
	}
}

func (s *PushSender) sendWithRetry(ctx context.Context, p domain.PushPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal push payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create push request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("push delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
