package members

import "fmt"
import "time"

const (
	statusActive   = "active"
	paymentPending = "pending"
	paymentOverdue = "overdue"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// Member is a row from the members table carrying a biometric enrollment.
type Member struct {
	ID            int64
	Name          string
	BiometricID   string
	Status        string
	StartDate     string
	ExpiryDate    string
	PaymentStatus string
}

// Decision is the outcome of evaluating a member against the access rules.
type Decision struct {
	Allowed bool
	Reason  string
}

// parseWhen tolerates the mixed date formats found in the dashboard database.
// Values that fail to parse do not restrict access.
func parseWhen(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if when, e := time.Parse(layout, value); e == nil {
			return when, true
		}
	}

	return time.Time{}, false
}

// Access applies the membership rules: active status, inside the membership
// window, payments current.
func (m Member) Access(now time.Time) Decision {
	statusOk := m.Status == statusActive

	startOk := true

	if start, ok := parseWhen(m.StartDate); ok {
		startOk = !now.Before(start)
	}

	endOk := true

	if expiry, ok := parseWhen(m.ExpiryDate); ok {
		endOk = !now.After(expiry)
	}

	paymentOk := m.PaymentStatus != paymentPending && m.PaymentStatus != paymentOverdue

	if statusOk && startOk && endOk && paymentOk {
		return Decision{Allowed: true, Reason: "allowed"}
	}

	if !statusOk {
		return Decision{Reason: "inactive"}
	}

	if !paymentOk {
		return Decision{Reason: fmt.Sprintf("payment_%s", m.PaymentStatus)}
	}

	return Decision{Reason: "expired"}
}
