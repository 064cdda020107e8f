package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Service is a long-running component whose Start blocks until the
// context is cancelled or the service fails.
type Service interface {
	Name() string
	Start(ctx context.Context) error
}

type Group []Service

// Start runs every service and blocks until all of them return. The
// first failure cancels the rest; all errors are collected.
func (g Group) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errCh := make(chan error, len(g))

	for _, svc := range g {
		wg.Add(1)
		go func(svc Service) {
			defer wg.Done()
			slog.Info("starting service", "name", svc.Name())
			if err := svc.Start(ctx); err != nil {
				errCh <- err
				cancel()
			}
			slog.Info("service stopped", "name", svc.Name())
		}(svc)
	}

	wg.Wait()
	close(errCh)

	var result *multierror.Error
	for err := range errCh {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
