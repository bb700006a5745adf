package storage

import "os"
import "time"
import "path/filepath"
import "database/sql"
import "github.com/gymadmin/api/server/attendance"
import "github.com/gymadmin/api/server/heatmap"
import "github.com/gymadmin/api/server/members"
import _ "modernc.org/sqlite"

const membersSchema = `
CREATE TABLE IF NOT EXISTS members (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	biometric_id TEXT,
	status TEXT NOT NULL DEFAULT 'active',
	start_date TEXT,
	expiry_date TEXT,
	payment_status TEXT,
	deleted_at TEXT
)`

const attendanceSchema = `
CREATE TABLE IF NOT EXISTS attendance (
	id TEXT PRIMARY KEY,
	biometric_id TEXT NOT NULL,
	member_id INTEGER,
	member_name TEXT,
	allowed INTEGER NOT NULL,
	reason TEXT,
	timestamp TEXT NOT NULL
)`

const activeMembersQuery = `
SELECT id, name, biometric_id, status,
       COALESCE(start_date, ''), COALESCE(expiry_date, ''), COALESCE(payment_status, '')
FROM members
WHERE biometric_id IS NOT NULL
AND biometric_id != ''
AND (deleted_at IS NULL OR deleted_at = '')`

// Store wraps the local sqlite database shared with the dashboard.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating parent directories and tables as
// needed.
func Open(path string) (*Store, error) {
	if e := os.MkdirAll(filepath.Dir(path), 0o755); e != nil {
		return nil, e
	}

	db, e := sql.Open("sqlite", path)

	if e != nil {
		return nil, e
	}

	for _, schema := range []string{membersSchema, attendanceSchema} {
		if _, e := db.Exec(schema); e != nil {
			db.Close()
			return nil, e
		}
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ActiveMembers returns every non-deleted member with a biometric enrollment.
func (s *Store) ActiveMembers() ([]members.Member, error) {
	rows, e := s.db.Query(activeMembersQuery)

	if e != nil {
		return nil, e
	}

	defer rows.Close()

	var list []members.Member

	for rows.Next() {
		member := members.Member{}
		e := rows.Scan(&member.ID, &member.Name, &member.BiometricID, &member.Status, &member.StartDate, &member.ExpiryDate, &member.PaymentStatus)

		if e != nil {
			return nil, e
		}

		list = append(list, member)
	}

	return list, rows.Err()
}

// InsertAttendance persists one processed scan event.
func (s *Store) InsertAttendance(event attendance.Event) error {
	_, e := s.db.Exec(
		"INSERT INTO attendance (id, biometric_id, member_id, member_name, allowed, reason, timestamp) VALUES (?, ?, ?, ?, ?, ?, ?)",
		event.ID,
		event.BiometricID,
		event.MemberID,
		event.MemberName,
		event.Allowed,
		event.Reason,
		event.Timestamp.UTC().Format(time.RFC3339),
	)

	return e
}

// VisitCounts buckets allowed visits by weekday and hour for the heatmap.
// Timestamps that fail to parse are skipped.
func (s *Store) VisitCounts() ([]heatmap.Record, error) {
	rows, e := s.db.Query("SELECT timestamp FROM attendance WHERE allowed = 1")

	if e != nil {
		return nil, e
	}

	defer rows.Close()

	type bucket struct {
		day  string
		hour int
	}

	counts := map[bucket]int{}

	for rows.Next() {
		var value string

		if e := rows.Scan(&value); e != nil {
			return nil, e
		}

		when, e := time.Parse(time.RFC3339, value)

		if e != nil {
			continue
		}

		counts[bucket{day: heatmap.DayName(when.Weekday()), hour: when.Hour()}]++
	}

	if e := rows.Err(); e != nil {
		return nil, e
	}

	records := make([]heatmap.Record, 0, len(counts))

	for key, count := range counts {
		records = append(records, heatmap.Record{Day: key.day, Hour: key.hour, Count: count})
	}

	return records, nil
}
