package probe

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type logged struct {
	next Prober
	log  *zap.Logger
}

// WithLogging wraps p so every read is logged at debug level.
func WithLogging(p Prober, log *zap.Logger) Prober {
	if log == nil {
		return p
	}
	return &logged{next: p, log: log.Named("probe")}
}

func (l *logged) Read(q Query) (Value, bool) {
	v, ok := l.next.Read(q)
	if !ok {
		l.log.Debug("fact absent", zap.Stringer("query", q))
		return v, false
	}
	l.log.Debug("fact read", zap.Stringer("query", q), zap.String("value", v.String()))
	return v, true
}

// Recorder wraps a Prober and remembers every fact that was present.
type Recorder struct {
	next Prober

	mu     sync.Mutex
	values map[string]Value
}

// NewRecorder returns a Recorder reading through p.
func NewRecorder(p Prober) *Recorder {
	return &Recorder{next: p, values: make(map[string]Value)}
}

// Read forwards to the wrapped Prober and records present facts.
func (r *Recorder) Read(q Query) (Value, bool) {
	v, ok := r.next.Read(q)
	if ok {
		r.mu.Lock()
		r.values[q.String()] = v
		r.mu.Unlock()
	}
	return v, ok
}

// Len returns the number of distinct facts recorded so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Snapshot returns the recorded facts in their on-disk form.
func (r *Recorder) Snapshot(host string) *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := &Snapshot{
		Taken:  time.Now().UTC(),
		Host:   host,
		Values: make(map[string]interface{}, len(r.values)),
	}
	for k, v := range r.values {
		if v.IsNumber() {
			n, _ := v.Uint()
			snap.Values[k] = n
		} else {
			snap.Values[k] = v.String()
		}
	}
	return snap
}
