package attendance

import "fmt"
import "time"

// Event is one attendance scan, in the shape the biometric bridge posts it.
type Event struct {
	ID          string    `json:"id"`
	BiometricID string    `json:"biometricId"`
	MemberID    *int64    `json:"memberId"`
	MemberName  string    `json:"memberName"`
	Allowed     bool      `json:"allowed"`
	Reason      string    `json:"reason"`
	Timestamp   time.Time `json:"timestamp"`
}

// Key identifies an event for duplicate suppression, matching the bridge's
// uid-timestamp scheme.
func (e Event) Key() string {
	return fmt.Sprintf("%s-%s", e.BiometricID, e.Timestamp.UTC().Format(time.RFC3339))
}
