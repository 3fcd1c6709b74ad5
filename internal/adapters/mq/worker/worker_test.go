package worker_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/okian/proctor/internal/adapters/mq/worker"
	"github.com/okian/proctor/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

type mockQueue struct {
	ch   chan model.Submission
	once sync.Once
}

func newMockQueue(n int) *mockQueue {
	return &mockQueue{ch: make(chan model.Submission, n)}
}

func (q *mockQueue) Dequeue(context.Context) <-chan model.Submission { return q.ch }

func (q *mockQueue) Close() error {
	q.once.Do(func() { close(q.ch) })
	return nil
}

type mockScorer struct {
	fail map[string]error
}

func (s *mockScorer) ScoreSubmission(_ context.Context, sub model.Submission) (model.Scorecard, error) {
	if err, ok := s.fail[sub.SubmissionID]; ok {
		return model.Scorecard{}, err
	}
	return model.Scorecard{Marine: sub.Marine, SubmissionID: sub.SubmissionID}, nil
}

type mockRecorder struct {
	mu    sync.Mutex
	cards map[string]model.Scorecard
	err   error
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{cards: make(map[string]model.Scorecard)}
}

func (r *mockRecorder) Upsert(_ context.Context, c model.Scorecard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.cards[c.Marine.ID] = c
	return nil
}

func (r *mockRecorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cards)
}

func sub(i int) model.Submission {
	return model.Submission{
		SubmissionID: fmt.Sprintf("s-%d", i),
		Marine:       model.Marine{ID: fmt.Sprintf("m-%d", i)},
	}
}

func TestInMemoryWorker(t *testing.T) {
	convey.Convey("Given a worker over a queue with three submissions", t, func() {
		q := newMockQueue(10)
		rec := newMockRecorder()
		scorer := &mockScorer{fail: map[string]error{"s-2": errors.New("bad input")}}
		w := worker.NewInMemoryWorker(q, scorer, rec, worker.WithName("w-test"))

		for i := 1; i <= 3; i++ {
			q.ch <- sub(i)
		}
		_ = q.Close()

		convey.Convey("When it runs until the queue closes", func() {
			w.Run(context.Background())

			convey.Convey("Then scorable submissions are recorded and failures skipped", func() {
				convey.So(rec.len(), convey.ShouldEqual, 2)
				_, ok := rec.cards["m-2"]
				convey.So(ok, convey.ShouldBeFalse)
			})

			convey.Convey("Then Shutdown returns at once", func() {
				convey.So(w.Shutdown(context.Background()), convey.ShouldBeNil)
			})
		})
	})

	convey.Convey("Given a worker whose recorder fails", t, func() {
		q := newMockQueue(1)
		rec := newMockRecorder()
		rec.err = errors.New("store down")
		w := worker.NewInMemoryWorker(q, &mockScorer{}, rec)

		q.ch <- sub(1)
		_ = q.Close()
		w.Run(context.Background())

		convey.So(rec.len(), convey.ShouldEqual, 0)
	})

	convey.Convey("Given an idle worker", t, func() {
		q := newMockQueue(1)
		w := worker.NewInMemoryWorker(q, &mockScorer{}, newMockRecorder())
		go w.Run(context.Background())

		convey.Convey("When it is shut down", func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			convey.So(w.Shutdown(ctx), convey.ShouldBeNil)
			convey.So(w.Shutdown(ctx), convey.ShouldBeNil)
		})
	})
}

func TestPool(t *testing.T) {
	convey.Convey("Given a pool of four workers", t, func() {
		q := newMockQueue(200)
		rec := newMockRecorder()
		p := worker.NewPool(4, q, &mockScorer{}, rec)
		convey.So(p.Size(), convey.ShouldEqual, 4)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		p.Start(ctx)

		for i := 0; i < 100; i++ {
			q.ch <- sub(i)
		}

		convey.Convey("When the pool is shut down", func() {
			err := p.Shutdown(context.Background())

			convey.Convey("Then every queued submission was processed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rec.len(), convey.ShouldEqual, 100)
			})
		})
	})

	convey.Convey("Given a non-positive worker count", t, func() {
		p := worker.NewPool(0, newMockQueue(1), &mockScorer{}, newMockRecorder())

		convey.So(p.Size(), convey.ShouldBeGreaterThan, 0)
	})
}
