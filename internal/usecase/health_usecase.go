package usecase

import "context"

// Pinger is any dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	deps map[string]Pinger
}

// NewHealthUsecase reports "ok" or "down" per named dependency. Nil pingers are
// reported as "disabled" and do not affect overall health.
func NewHealthUsecase(deps map[string]Pinger) HealthUsecase {
	return &healthUsecase{deps: deps}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"status": "ok"}
	healthy := true
	for name, dep := range u.deps {
		switch {
		case dep == nil:
			status[name] = "disabled"
		case dep.Ping(ctx) != nil:
			status[name] = "down"
			healthy = false
		default:
			status[name] = "ok"
		}
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
