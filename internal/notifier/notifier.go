package notifier

import (
	"sync"

	"go.uber.org/zap"

	"moneymornings-backend/internal/domain/application"
)

const queueSize = 64

// Notifier is the outbound email queue: a buffered channel drained by
// a single worker goroutine. Delivery is at-most-once — a failed send
// is logged and dropped, a full queue drops the newest entry, and
// nothing is persisted across restarts.
type Notifier struct {
	mailer       Mailer
	dashboardURL string
	log          *zap.Logger

	queue chan application.Application
	once  sync.Once
	done  chan struct{}
}

func New(m Mailer, dashboardURL string, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	n := &Notifier{
		mailer:       m,
		dashboardURL: dashboardURL,
		log:          log,
		queue:        make(chan application.Application, queueSize),
		done:         make(chan struct{}),
	}
	go n.run()
	return n
}

// Enqueue hands an application to the worker without blocking the
// caller. When the queue is full the notification is dropped.
func (n *Notifier) Enqueue(a application.Application) {
	select {
	case n.queue <- a:
	default:
		n.log.Warn("notification queue full, dropping email",
			zap.String("id", a.AppID))
	}
}

// Close stops accepting work and waits for the worker to drain what
// was already queued.
func (n *Notifier) Close() {
	n.once.Do(func() { close(n.queue) })
	<-n.done
}

func (n *Notifier) run() {
	defer close(n.done)
	for a := range n.queue {
		if err := n.mailer.Send(subjectFor(a), bodyFor(a, n.dashboardURL)); err != nil {
			n.log.Error("failed to send email notification",
				zap.String("id", a.AppID),
				zap.Error(err))
			continue
		}
		n.log.Info("email notification sent", zap.String("id", a.AppID))
	}
}
