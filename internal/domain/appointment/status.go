package appointment

// Status is the appointment lifecycle state. The wire values are the
// Spanish labels the clients of this API have always seen.
type Status string

const (
	StatusBooked     Status = "Reservado"
	StatusInProgress Status = "EnProceso"
	StatusCompleted  Status = "Completado"
	StatusCancelled  Status = "Cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusBooked, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active statuses block a barber's time; terminal ones never do.
func (s Status) Active() bool {
	return s == StatusBooked || s == StatusInProgress
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ActiveStatuses is the status filter for "existing" appointments in
// overlap queries.
var ActiveStatuses = []string{string(StatusBooked), string(StatusInProgress)}

func InitialStatus() Status {
	return StatusBooked
}

// transitions is the legal edge set of the lifecycle machine. Terminal
// states have no outgoing edges, for any role.
var transitions = map[Status][]Status{
	StatusBooked:     {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

func EdgeAllowed(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransition is the full authorization matrix over (role, from, to).
// The edge itself must be legal; on top of that clients may only cancel,
// barbers may start, complete and cancel, admins may take any legal edge.
func CanTransition(role Role, from, to Status) bool {
	if !EdgeAllowed(from, to) {
		return false
	}

	switch role {
	case RoleClient:
		return to == StatusCancelled
	case RoleBarber:
		if to == StatusCancelled {
			return true
		}
		return (from == StatusBooked && to == StatusInProgress) ||
			(from == StatusInProgress && to == StatusCompleted)
	case RoleAdmin:
		return true
	}
	return false
}
