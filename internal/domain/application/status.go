package application

// ===============================
// Application Status
// ===============================

// Status is free-form in storage; these are the conventional values the
// guarded transition graph understands.
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusScreening Status = "Screening"
	StatusInterview Status = "Interview"
	StatusOffered   Status = "Offered"
	StatusRejected  Status = "Rejected"
	StatusAccepted  Status = "Accepted"
	StatusSelected  Status = "Selected"
	StatusOnHold    Status = "OnHold"
)

func InitialStatus() Status {
	return StatusApplied
}

// EntersSelected is true for a change into Selected from anything else.
func EntersSelected(previous, next string) bool {
	return next == string(StatusSelected) && previous != string(StatusSelected)
}
