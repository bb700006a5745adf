package routes

import "log"
import "errors"
import "net/http"
import "encoding/json"
import "github.com/gymadmin/api/server/attendance"
import "github.com/gymadmin/api/server/heatmap"
import "github.com/gymadmin/api/server/routing"

const (
	eventPattern   = "/api/biometric/attendance-event"
	heatmapPattern = "/api/attendance/heatmap"
)

// VisitSource provides the aggregated visit counts behind the heatmap.
type VisitSource interface {
	VisitCounts() ([]heatmap.Record, error)
}

type attendanceRouter struct {
	recorder *attendance.Recorder
	visits   VisitSource
}

func (router *attendanceRouter) event(response http.ResponseWriter, request *http.Request) {
	event := attendance.Event{}
	decoder := json.NewDecoder(request.Body)

	if e := decoder.Decode(&event); e != nil {
		log.Printf("unable to decode attendance event: %s", e)
		response.WriteHeader(422)
		return
	}

	stored, e := router.recorder.Record(event)

	if errors.Is(e, attendance.ErrDuplicate) {
		response.Header().Add("Content-Type", "application/json")
		json.NewEncoder(response).Encode(map[string]interface{}{"success": true, "duplicate": true})
		return
	}

	if errors.Is(e, attendance.ErrInvalidEvent) {
		log.Printf("rejected attendance event: %s", e)
		response.WriteHeader(422)
		return
	}

	if e != nil {
		log.Printf("failed recording attendance event: %s", e)
		response.WriteHeader(500)
		return
	}

	response.Header().Add("Content-Type", "application/json")
	json.NewEncoder(response).Encode(map[string]interface{}{"success": true, "event": stored})
}

func (router *attendanceRouter) heatmap(response http.ResponseWriter, request *http.Request) {
	records, e := router.visits.VisitCounts()

	if e != nil {
		log.Printf("unable to load visit counts: %s", e)
		response.WriteHeader(500)
		return
	}

	response.Header().Add("Content-Type", "application/json")
	json.NewEncoder(response).Encode(heatmap.Build(records))
}

// NewAttendanceRouter returns the routes that receive scans from the
// biometric bridge and serve the attendance heatmap.
func NewAttendanceRouter(recorder *attendance.Recorder, visits VisitSource) routing.Multiplex {
	router := &attendanceRouter{recorder: recorder, visits: visits}

	return routing.Multiplex{
		routing.RouteConfig{Method: "POST", Pattern: eventPattern, Handler: router.event},
		routing.RouteConfig{Method: "GET", Pattern: heatmapPattern, Handler: router.heatmap},
	}
}
