package sanitizer

import (
	"fmt"

	"github.com/Easy-Infra-Ltd/eunicode/src/config"
)

// BuildPipeline creates the step chain for the named operations, keeping
// their order.
func BuildPipeline(ops []string) (*Pipeline, error) {
	if err := config.ValidateOperations(ops); err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(ops))
	for _, op := range ops {
		switch op {
		case config.OpStrip:
			steps = append(steps, HTMLStep{})
		case config.OpDefang:
			steps = append(steps, DefangStep{})
		case config.OpCensor:
			steps = append(steps, CensorStep{})
		case config.OpSlugify:
			steps = append(steps, SlugStep{})
		default:
			return nil, fmt.Errorf("no step for operation %q", op)
		}
	}

	return NewPipeline(steps...), nil
}
