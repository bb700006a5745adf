package members

import "time"
import "strings"

// Roster indexes members by biometric id and splits them into allowed and
// denied sets, the same partition the access device is configured with.
type Roster struct {
	Allowed []string
	Denied  []string
	byID    map[string]Member
}

// NewRoster evaluates every member against the access rules at the given time.
// Members without a biometric id are skipped.
func NewRoster(list []Member, now time.Time) Roster {
	roster := Roster{byID: make(map[string]Member, len(list))}

	for _, member := range list {
		id := strings.TrimSpace(member.BiometricID)

		if id == "" {
			continue
		}

		roster.byID[id] = member

		if member.Access(now).Allowed {
			roster.Allowed = append(roster.Allowed, id)
			continue
		}

		roster.Denied = append(roster.Denied, id)
	}

	return roster
}

// Find returns the member enrolled with the given biometric id.
func (r Roster) Find(biometricID string) (Member, bool) {
	member, ok := r.byID[biometricID]
	return member, ok
}
