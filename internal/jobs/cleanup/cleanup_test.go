package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	cutoffs chan time.Time
}

func (f *fakeRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoffs <- cutoff
	return 1, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestJob_RunsImmediatelyWithRetentionCutoff(t *testing.T) {
	repo := &fakeRepo{cutoffs: make(chan time.Time, 1)}
	job := New(repo, 3, time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Run(ctx)
		close(done)
	}()

	var cutoff time.Time
	select {
	case cutoff = <-repo.cutoffs:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not run on start")
	}

	// срез ретенции отстоит от текущего момента на retentionYears лет
	want := time.Now().AddDate(-3, 0, 0)
	assert.WithinDuration(t, want, cutoff, time.Minute)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop on context cancel")
	}
}

func TestJob_StopsBeforeTick(t *testing.T) {
	repo := &fakeRepo{cutoffs: make(chan time.Time, 2)}
	job := New(repo, 1, time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Run(ctx)
		close(done)
	}()

	require.NotNil(t, <-repo.cutoffs)
	cancel()
	<-done

	// после отмены контекста второго прохода не было
	assert.Empty(t, repo.cutoffs)
}
