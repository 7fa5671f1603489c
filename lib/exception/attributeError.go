package exception

import "fmt"

// AttributeResolutionError signals an unresolvable font family or size. It is
// always recovered internally by substituting a default and never surfaces to
// editing callers.
type AttributeResolutionError struct {
	*AppError
	Family string
}

func NewAttributeResolutionError(family string) *AttributeResolutionError {
	return &AttributeResolutionError{
		AppError: &AppError{
			Code:    "ATTRIBUTE_RESOLUTION_FAILURE",
			Message: fmt.Sprintf("font family '%s' could not be resolved", family),
		},
		Family: family,
	}
}
