package get_available_slots

import "fmt"

// validateRequest checks the request fields
func validateRequest(req *Request) error {
	if !req.ResourceType.Valid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, req.ResourceType)
	}
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
