package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []Status{StatusBooked, StatusInProgress, StatusCompleted, StatusCancelled}
var allRoles = []Role{RoleClient, RoleBarber, RoleAdmin}

func TestEdgeAllowed(t *testing.T) {
	assert.True(t, EdgeAllowed(StatusBooked, StatusInProgress))
	assert.True(t, EdgeAllowed(StatusBooked, StatusCancelled))
	assert.True(t, EdgeAllowed(StatusInProgress, StatusCompleted))
	assert.True(t, EdgeAllowed(StatusInProgress, StatusCancelled))

	assert.False(t, EdgeAllowed(StatusBooked, StatusCompleted), "no skipping EnProceso")
	assert.False(t, EdgeAllowed(StatusCompleted, StatusBooked))
	assert.False(t, EdgeAllowed(StatusBooked, StatusBooked))
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		for _, to := range allStatuses {
			for _, role := range allRoles {
				assert.False(t, CanTransition(role, from, to),
					"%s: %s -> %s must be rejected", role, from, to)
			}
		}
	}
}

func TestClientMayOnlyCancel(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if to == StatusCancelled {
				continue
			}
			assert.False(t, CanTransition(RoleClient, from, to),
				"client: %s -> %s", from, to)
		}
	}

	assert.True(t, CanTransition(RoleClient, StatusBooked, StatusCancelled))
	assert.True(t, CanTransition(RoleClient, StatusInProgress, StatusCancelled))
}

func TestBarberTransitions(t *testing.T) {
	assert.True(t, CanTransition(RoleBarber, StatusBooked, StatusInProgress))
	assert.True(t, CanTransition(RoleBarber, StatusInProgress, StatusCompleted))
	assert.True(t, CanTransition(RoleBarber, StatusBooked, StatusCancelled))
	assert.True(t, CanTransition(RoleBarber, StatusInProgress, StatusCancelled))

	assert.False(t, CanTransition(RoleBarber, StatusBooked, StatusCompleted))
}

func TestAdminIsBoundToLegalEdges(t *testing.T) {
	assert.True(t, CanTransition(RoleAdmin, StatusBooked, StatusInProgress))
	assert.True(t, CanTransition(RoleAdmin, StatusInProgress, StatusCompleted))

	// Admin privileges do not resurrect illegal edges.
	assert.False(t, CanTransition(RoleAdmin, StatusCompleted, StatusBooked))
	assert.False(t, CanTransition(RoleAdmin, StatusCancelled, StatusBooked))
	assert.False(t, CanTransition(RoleAdmin, StatusBooked, StatusCompleted))
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusBooked.Active())
	assert.True(t, StatusInProgress.Active())
	assert.False(t, StatusCompleted.Active())

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusBooked.Terminal())

	assert.False(t, Status("scheduled").Valid())
	assert.Equal(t, StatusBooked, InitialStatus())
}

func TestValidRating(t *testing.T) {
	for _, ok := range []float64{0, 0.5, 3, 4.5, 5} {
		assert.True(t, ValidRating(ok), "%v", ok)
	}
	for _, bad := range []float64{-0.5, 0.3, 4.75, 5.5} {
		assert.False(t, ValidRating(bad), "%v", bad)
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range allRoles {
		got, ok := ParseRole(string(role))
		assert.True(t, ok)
		assert.Equal(t, role, got)
	}

	_, ok := ParseRole("user")
	assert.False(t, ok, "legacy role strings are not accepted")
}
