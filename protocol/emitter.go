package protocol

import (
	"fmt"
	"io"
	"strings"

	"railbot/planner"
)

// Emit renders one turn's plan onto the host stream: the actions joined by
// ";", or WAIT for an empty plan, followed by a newline.
func Emit(w io.Writer, plan planner.Plan) error {
	if len(plan) == 0 {
		plan = planner.Plan{planner.Wait{}}
	}
	rendered := make([]string, len(plan))
	for i, action := range plan {
		rendered[i] = action.Protocol()
	}
	if _, err := fmt.Fprintln(w, strings.Join(rendered, ";")); err != nil {
		return fmt.Errorf("failed to emit actions: %w", err)
	}
	return nil
}
