// Package shutdown останавливает процесс по сигналам SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Wait блокируется до первого SIGINT или SIGTERM, после чего параллельно
// запускает хуки остановки. Возврат происходит, когда все хуки завершились
// либо истек timeout.
func Wait(timeout time.Duration, hooks ...func(context.Context) error) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var running sync.WaitGroup
	for _, hook := range hooks {
		running.Add(1)
		go func(fn func(context.Context) error) {
			defer running.Done()
			_ = fn(ctx)
		}(hook)
	}

	finished := make(chan struct{})
	go func() {
		running.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-ctx.Done():
	}
}
