package utils

import (
	"context"
	"log"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const drainTimeout = 15 * time.Second

// ShutdownManager closes the gateway's collaborators in reverse registration
// order once SIGINT or SIGTERM arrives, so the HTTP server drains before the
// redis connection underneath it goes away.
type ShutdownManager struct {
	mu    sync.Mutex
	tasks []namedTask
}

type namedTask struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager returns a context cancelled on SIGINT/SIGTERM and the
// manager that runs the registered cleanup afterwards.
func NewShutdownManager(parent context.Context) (context.Context, *ShutdownManager) {
	ctx, _ := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	return ctx, &ShutdownManager{}
}

func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.tasks = append(sm.tasks, namedTask{name: name, fn: fn})
}

// Wait blocks until the signal context is done, then runs every task with a
// shared drain deadline. It returns once all cleanup finished.
func (sm *ShutdownManager) Wait(ctx context.Context) {
	<-ctx.Done()
	log.Println("[SHUTDOWN] Signal received, draining...")

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	sm.mu.Lock()
	tasks := make([]namedTask, len(sm.tasks))
	copy(tasks, sm.tasks)
	sm.mu.Unlock()

	for i := len(tasks) - 1; i >= 0; i-- {
		if err := tasks[i].fn(drainCtx); err != nil {
			log.Printf("[SHUTDOWN] %s: %v", tasks[i].name, err)
			continue
		}
		log.Printf("[SHUTDOWN] %s stopped", tasks[i].name)
	}
	log.Println("[SHUTDOWN] Graceful shutdown complete")
}
