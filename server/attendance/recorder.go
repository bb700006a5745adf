package attendance

import "fmt"
import "log"
import "time"
import "strings"
import "github.com/google/uuid"
import "github.com/gymadmin/api/server/members"
import "github.com/gymadmin/api/server/metrics"

// Roster loads the current membership for access decisions.
type Roster interface {
	ActiveMembers() ([]members.Member, error)
}

// Log persists processed events locally.
type Log interface {
	InsertAttendance(event Event) error
}

// Mirror forwards processed events to the remote datastore.
type Mirror interface {
	PushAttendance(event Event) error
}

// ErrDuplicate reports a scan that was already processed.
var ErrDuplicate = fmt.Errorf("duplicate scan event")

// ErrInvalidEvent reports a scan payload the recorder refuses to process.
var ErrInvalidEvent = fmt.Errorf("invalid scan event")

// Recorder runs the full pipeline for one scan: validate, dedupe, decide,
// persist, mirror.
type Recorder struct {
	Seen   SeenStore
	Roster Roster
	Log    Log
	Mirror Mirror
}

// Record processes one incoming event, returning the stored form.
func (r *Recorder) Record(event Event) (Event, error) {
	event.BiometricID = strings.TrimSpace(event.BiometricID)

	if event.BiometricID == "" {
		return Event{}, fmt.Errorf("%w: missing biometric id", ErrInvalidEvent)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.ID == "" {
		event.ID = fmt.Sprintf("%s", uuid.New())
	}

	if r.Seen != nil {
		fresh, e := r.Seen.Observe(event.Key())

		if e != nil {
			return Event{}, e
		}

		if !fresh {
			log.Printf("skipping duplicate scan '%s'", event.Key())
			metrics.ObserveDuplicate()
			return Event{}, ErrDuplicate
		}
	}

	if event.Reason == "" {
		r.decide(&event)
	}

	if e := r.Log.InsertAttendance(event); e != nil {
		log.Printf("failed storing attendance '%s': %s", event.ID, e)
		return Event{}, e
	}

	if r.Mirror != nil {
		// the record is already stored locally, so a mirror failure only loses the upstream copy
		if e := r.Mirror.PushAttendance(event); e != nil {
			log.Printf("failed mirroring attendance '%s' upstream: %s", event.ID, e)
			metrics.ObserveMirrorFailure()
		}
	}

	log.Printf("recorded attendance '%s' for '%s' (allowed %t, reason %s)", event.ID, event.BiometricID, event.Allowed, event.Reason)
	metrics.ObserveEvent(event.Reason)

	return event, nil
}

// decide fills in the access outcome for scans the bridge forwarded without one.
func (r *Recorder) decide(event *Event) {
	list, e := r.Roster.ActiveMembers()

	if e != nil {
		log.Printf("unable to load members for decision: %s", e)
		event.Allowed = false
		event.Reason = "unknown_user"
		return
	}

	roster := members.NewRoster(list, event.Timestamp)
	member, ok := roster.Find(event.BiometricID)

	if !ok {
		event.Allowed = false
		event.Reason = "unknown_user"

		if event.MemberName == "" {
			event.MemberName = fmt.Sprintf("User %s", event.BiometricID)
		}

		return
	}

	decision := member.Access(event.Timestamp)
	event.Allowed = decision.Allowed
	event.Reason = decision.Reason
	event.MemberID = &member.ID

	if event.MemberName == "" {
		event.MemberName = member.Name
	}
}
