package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusPredicates(t *testing.T) {
	tests := []struct {
		status    AppointmentStatus
		pending   bool
		confirmed bool
		terminal  bool
	}{
		{AppointmentStatusPending, true, false, false},
		{AppointmentStatusConfirmed, false, true, false},
		{AppointmentStatusCompleted, false, false, true},
		{AppointmentStatusCancelled, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.pending, a.IsPending())
			assert.Equal(t, tt.confirmed, a.IsConfirmed())
			assert.Equal(t, tt.terminal, a.IsTerminal())
		})
	}
}
