package provisioning

import (
	"fmt"
	"time"
)

// Phase is one gate in the provisioning workflow.
type Phase interface {
	// Name identifies the phase in logs and error messages.
	Name() string
	// Provision runs the phase. A non-nil error aborts the pipeline.
	Provision(ctx *Context) error
}

// Phases returns the full workflow in execution order.
func Phases() []Phase {
	return []Phase{
		NewPreflightPhase(),
		NewParameterPhase(),
		NewCapacityPhase(),
		NewUniquenessPhase(),
		NewProvisionPhase(),
		NewRegisterPhase(),
	}
}

// Run executes the phases strictly sequentially. The first failure marks
// the result record as failed and short-circuits the remaining phases.
func Run(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning of volume %q with %d phases...",
		ctx.Request.Name, len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.Observer.Printf("[%s] starting", name)

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Printf("[%s] failed: %v", name, err)
			ctx.Result.Fail(err.Error())
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.Printf("[%s] completed in %v", name, time.Since(phaseStart).Round(time.Millisecond))
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
