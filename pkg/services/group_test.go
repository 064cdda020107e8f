package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	name string
	err  error
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Start(ctx context.Context) error {
	if s.err != nil {
		return s.err
	}
	<-ctx.Done()
	return nil
}

func TestGroup_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	group := Group{&stubService{name: "a"}, &stubService{name: "b"}}

	done := make(chan error, 1)
	go func() { done <- group.Start(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("group did not stop after cancel")
	}
}

func TestGroup_FailureCancelsTheRest(t *testing.T) {
	boom := errors.New("boom")
	group := Group{
		&stubService{name: "healthy"},
		&stubService{name: "failing", err: boom},
	}

	done := make(chan error, 1)
	go func() { done <- group.Start(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("healthy service was not cancelled after failure")
	}
}
