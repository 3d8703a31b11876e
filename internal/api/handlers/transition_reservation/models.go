package transition_reservation

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Status string `json:"status"` // "approved" | "rejected" | "cancelled" | "completed"
	Reason string `json:"reason,omitempty"`
}
