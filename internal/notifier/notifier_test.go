package notifier

import (
	"errors"
	"sync"
	"testing"

	domain "moneymornings-backend/internal/domain/application"
)

type mockMailer struct {
	mu       sync.Mutex
	subjects []string
	err      error
	gate     chan struct{} // when set, Send blocks until closed
}

func (m *mockMailer) Send(subject, body string) error {
	if m.gate != nil {
		<-m.gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects = append(m.subjects, subject)
	return m.err
}

func (m *mockMailer) sent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subjects)
}

func TestNotifier_DeliversQueued(t *testing.T) {
	m := &mockMailer{}
	n := New(m, "http://localhost:8080", nil)

	n.Enqueue(domain.Application{AppID: "a1", FirstName: "Ann", LastName: "Lee"})
	n.Enqueue(domain.Application{AppID: "a2", FirstName: "Bob", LastName: "Kim"})
	n.Close()

	if got := m.sent(); got != 2 {
		t.Fatalf("sent = %d, want 2", got)
	}
	if m.subjects[0] != "New Application Submitted - Ann Lee" {
		t.Fatalf("subject = %q", m.subjects[0])
	}
}

func TestNotifier_SendFailureIsSwallowed(t *testing.T) {
	m := &mockMailer{err: errors.New("relay down")}
	n := New(m, "http://localhost:8080", nil)

	n.Enqueue(domain.Application{AppID: "a1"})
	n.Close() // must not panic or hang

	if got := m.sent(); got != 1 {
		t.Fatalf("sent = %d, want 1", got)
	}
}

func TestNotifier_EnqueueNeverBlocks(t *testing.T) {
	m := &mockMailer{gate: make(chan struct{})}
	n := New(m, "http://localhost:8080", nil)

	// The worker stalls on its first delivery, so overfilling the
	// buffer must drop entries; a blocking Enqueue would hang here.
	total := queueSize + 10
	for i := 0; i < total; i++ {
		n.Enqueue(domain.Application{AppID: "x"})
	}

	close(m.gate)
	n.Close()

	if got := m.sent(); got >= total {
		t.Fatalf("sent = %d, want fewer than %d (overflow must drop)", got, total)
	}
	if got := m.sent(); got == 0 {
		t.Fatal("nothing delivered")
	}
}

func TestNotifier_CloseIsIdempotent(t *testing.T) {
	n := New(&mockMailer{}, "http://localhost:8080", nil)
	n.Close()
	n.Close() // second call must not panic
}
