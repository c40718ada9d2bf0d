package lifecycle

import (
	"fmt"
	"math"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/notification"
	"github.com/jsamuelsen11/project-lifecycle-service/internal/domain/project"
)

// Contribute records a reported contribution of amount. The amount must be
// a positive finite number. FundingUpdated is always emitted; threshold and
// completion events are emitted only when crossed by this contribution.
func (e *Engine) Contribute(p project.Project, amount float64) (Result, error) {
	if !isFinite(amount) || amount <= 0 {
		return Result{}, fmt.Errorf("%w: contribution must be positive, got %v", domain.ErrInvalidAmount, amount)
	}

	next := p.Clone()
	next.Raised += amount
	if !isFinite(next.Raised) {
		return Result{}, fmt.Errorf("%w: contribution of %v overflows raised (raised %v)",
			domain.ErrInvalidAmount, amount, p.Raised)
	}
	next.Supporters++

	return e.applyFunding(&p, &next, amount), nil
}

// AdjustFunding applies a corrective change to the reported raised amount.
// delta may be negative but not zero, and the corrected total must stay
// non-negative. Events follow the same edge-triggered rules as Contribute,
// so dropping below the threshold and climbing back fires it again, once.
func (e *Engine) AdjustFunding(p project.Project, delta float64) (Result, error) {
	if !isFinite(delta) || delta == 0 {
		return Result{}, fmt.Errorf("%w: adjustment must be non-zero, got %v", domain.ErrInvalidAmount, delta)
	}
	if p.Raised+delta < 0 {
		return Result{}, fmt.Errorf("%w: adjustment of %v would make raised negative (raised %v)",
			domain.ErrInvalidAmount, delta, p.Raised)
	}

	next := p.Clone()
	next.Raised += delta
	if !isFinite(next.Raised) {
		return Result{}, fmt.Errorf("%w: adjustment of %v overflows raised (raised %v)",
			domain.ErrInvalidAmount, delta, p.Raised)
	}

	return e.applyFunding(&p, &next, delta), nil
}

func (e *Engine) applyFunding(prev, next *project.Project, amount float64) Result {
	crossings := e.fundingEvents(prev, next)
	e.touch(next)

	payload := fundingPayload(next)
	payload[notification.KeyAmount] = formatAmount(amount)

	events := make([]notification.Event, 0, 1+len(crossings))
	events = append(events, e.event(prev, notification.KindFundingUpdated, next.Recipients(), payload))
	events = append(events, crossings...)

	return Result{Project: *next, Events: events}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
