package storage

import "time"
import "testing"
import "path/filepath"
import "github.com/franela/goblin"
import "github.com/gymadmin/api/server/attendance"

func TestStore(t *testing.T) {
	g := goblin.Goblin(t)

	var store *Store

	open := func() *Store {
		opened, e := Open(filepath.Join(t.TempDir(), "nested", "data.db"))

		if e != nil {
			t.Fatalf("unable to open store: %s", e)
		}

		return opened
	}

	g.Describe("ActiveMembers", func() {
		g.BeforeEach(func() {
			store = open()
		})

		g.AfterEach(func() {
			store.Close()
		})

		g.It("returns only non-deleted members with a biometric id", func() {
			inserts := []string{
				"INSERT INTO members (name, biometric_id, status, payment_status) VALUES ('Ada', '11', 'active', 'paid')",
				"INSERT INTO members (name, biometric_id, status, payment_status) VALUES ('Max', '', 'active', 'paid')",
				"INSERT INTO members (name, status, payment_status) VALUES ('Sam', 'active', 'paid')",
				"INSERT INTO members (name, biometric_id, status, payment_status, deleted_at) VALUES ('Eve', '14', 'active', 'paid', '2024-01-01')",
			}

			for _, insert := range inserts {
				_, e := store.db.Exec(insert)
				g.Assert(e == nil).Eql(true)
			}

			list, e := store.ActiveMembers()
			g.Assert(e == nil).Eql(true)
			g.Assert(len(list)).Eql(1)
			g.Assert(list[0].Name).Eql("Ada")
			g.Assert(list[0].BiometricID).Eql("11")
		})
	})

	g.Describe("attendance", func() {
		g.BeforeEach(func() {
			store = open()
		})

		g.AfterEach(func() {
			store.Close()
		})

		g.It("round trips events into visit counts", func() {
			memberID := int64(1)
			wednesday := time.Date(2024, time.March, 6, 9, 15, 0, 0, time.UTC)

			events := []attendance.Event{
				{ID: "a", BiometricID: "11", MemberID: &memberID, Allowed: true, Reason: "allowed", Timestamp: wednesday},
				{ID: "b", BiometricID: "12", Allowed: true, Reason: "allowed", Timestamp: wednesday.Add(time.Minute * 10)},
				{ID: "c", BiometricID: "13", Allowed: false, Reason: "payment_overdue", Timestamp: wednesday},
			}

			for _, event := range events {
				g.Assert(store.InsertAttendance(event) == nil).Eql(true)
			}

			records, e := store.VisitCounts()
			g.Assert(e == nil).Eql(true)
			g.Assert(len(records)).Eql(1)
			g.Assert(records[0].Day).Eql("Wed")
			g.Assert(records[0].Hour).Eql(9)
			g.Assert(records[0].Count).Eql(2)
		})

		g.It("rejects duplicate event ids", func() {
			event := attendance.Event{ID: "a", BiometricID: "11", Allowed: true, Timestamp: time.Now()}
			g.Assert(store.InsertAttendance(event) == nil).Eql(true)
			g.Assert(store.InsertAttendance(event) == nil).Eql(false)
		})
	})
}
