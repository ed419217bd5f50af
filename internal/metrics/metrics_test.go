package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("GET", "GET /questions", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "GET /questions", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "GET /questions", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "GET /questions", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "GET /questions", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestQuizOutcome(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.QuizOutcome(QuizQuestion)
	m.QuizOutcome(QuizGameEnded)
	m.QuizOutcome(QuizQuestion)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.quiz.WithLabelValues(QuizQuestion)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quiz.WithLabelValues(QuizGameEnded)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Second)
		m.QuizOutcome(QuizExhausted)
	})
}
