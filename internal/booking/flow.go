package booking

import (
	"time"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

// State of the reservation dialog.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateValidating
	StateValid
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateValidating:
		return "validating"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// CreateInput is what a confirmed flow hands to the create command.
type CreateInput struct {
	CourtID   string
	StartTime time.Time
	EndTime   time.Time
}

// ReserveFlow drives the booking dialog: Closed -> Open (slot clicked)
// -> Validating on every end-time edit -> Valid or Invalid -> Closed on
// confirm or cancel. Validation is synchronous; canceling never has
// side effects.
type ReserveFlow struct {
	clock    Clock
	settings domain.ClubSettings
	caps     domain.Capabilities

	state   State
	courtID string
	start   time.Time
	end     time.Time
	lastErr error
}

func NewReserveFlow(clock Clock, settings domain.ClubSettings, caps domain.Capabilities) *ReserveFlow {
	return &ReserveFlow{clock: clock, settings: settings, caps: caps, state: StateClosed}
}

// Open enters the dialog from a calendar-slot click. The end time
// defaults to one hour after the clicked slot and is validated right away.
func (f *ReserveFlow) Open(courtID string, start time.Time) {
	if f.state != StateClosed {
		return
	}
	f.courtID = courtID
	f.start = start
	f.state = StateOpen
	f.SetEnd(start.Add(time.Hour))
}

// SetEnd records an end-time edit and re-runs validation.
func (f *ReserveFlow) SetEnd(end time.Time) {
	if f.state == StateClosed {
		return
	}
	f.end = end
	f.state = StateValidating
	if err := Validate(f.start, f.end, f.settings, f.caps, f.clock.Now()); err != nil {
		f.lastErr = err
		f.state = StateInvalid
		return
	}
	f.lastErr = nil
	f.state = StateValid
}

// Confirm closes the dialog and yields the create-command input.
// Only a Valid flow can confirm.
func (f *ReserveFlow) Confirm() (CreateInput, error) {
	if f.state != StateValid {
		if f.lastErr != nil {
			return CreateInput{}, f.lastErr
		}
		return CreateInput{}, domain.ErrInvalidRange
	}
	in := CreateInput{CourtID: f.courtID, StartTime: f.start, EndTime: f.end}
	f.reset()
	return in, nil
}

// Cancel closes the dialog from any state without side effects.
func (f *ReserveFlow) Cancel() { f.reset() }

func (f *ReserveFlow) State() State { return f.state }

// Err returns the violation that put the flow in StateInvalid, nil otherwise.
func (f *ReserveFlow) Err() error { return f.lastErr }

func (f *ReserveFlow) reset() {
	*f = ReserveFlow{clock: f.clock, settings: f.settings, caps: f.caps, state: StateClosed}
}
