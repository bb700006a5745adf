package server

import "log"
import "fmt"
import "time"
import "net/http"
import "github.com/gymadmin/api/server/attendance"
import "github.com/gymadmin/api/server/datastore"
import "github.com/gymadmin/api/server/env"
import "github.com/gymadmin/api/server/routes"
import "github.com/gymadmin/api/server/routing"
import "github.com/gymadmin/api/server/storage"

type server struct {
	routes routing.Multiplex
}

// datastoreMirror adapts the lazy accessor to the recorder's Mirror port.
type datastoreMirror struct {
	accessor *datastore.Accessor
}

func (m *datastoreMirror) PushAttendance(event attendance.Event) error {
	client, e := m.accessor.Handle()

	if e != nil {
		return e
	}

	upsert := datastore.AttendanceUpsert{
		BiometricID: event.BiometricID,
		MemberID:    event.MemberID,
		MemberName:  event.MemberName,
		Allowed:     event.Allowed,
		Reason:      event.Reason,
		Timestamp:   event.Timestamp.UTC().Format(time.RFC3339),
	}

	return client.PushAttendance(upsert)
}

func (s *server) init(options env.ServerConfig) error {
	store, e := storage.Open(options.Storage.DatabasePath)

	if e != nil {
		return e
	}

	// Initialize services
	seen, e := attendance.NewRedisSeenStore(options)

	if e != nil {
		return e
	}

	if options.Startup.ClearSeenEvents {
		if e := seen.Purge(); e != nil {
			return e
		}
	}

	accessor := datastore.NewAccessor(options.Datastore)

	recorder := &attendance.Recorder{
		Seen:   seen,
		Roster: store,
		Log:    store,
		Mirror: &datastoreMirror{accessor: accessor},
	}

	s.routes = append(s.routes, routes.NewAttendanceRouter(recorder, store)...)
	s.routes = append(s.routes, routes.NewStatusRouter()...)

	for _, config := range s.routes {
		log.Printf("handling '%s %s'", config.Method, config.Pattern)
	}

	return nil
}

func (s *server) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	log.Printf("request %s %v", request.Method, request.URL)

	handler := s.routes.Match(request)

	if handler == nil {
		response.WriteHeader(404)
		fmt.Fprintf(response, "not-found\n")
		log.Printf("404: %s %s", request.Method, request.URL.Path)
		return
	}

	handler(response, request)
}

// New constructs the gymadmin http.Server
func New(options env.ServerConfig) (*http.Server, error) {
	handler := &server{}

	if e := handler.init(options); e != nil {
		return nil, e
	}

	return &http.Server{Handler: handler, Addr: options.Server.Addr}, nil
}
