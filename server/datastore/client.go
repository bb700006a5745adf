package datastore

import "fmt"
import "path"
import "time"
import "bytes"
import "net/url"
import "net/http"
import "encoding/json"

const attendancePath = "/rest/v1/attendance"

// AttendanceUpsert is the wire form of an attendance record pushed upstream.
type AttendanceUpsert struct {
	BiometricID string `json:"biometricId"`
	MemberID    *int64 `json:"memberId"`
	MemberName  string `json:"memberName"`
	Allowed     bool   `json:"allowed"`
	Reason      string `json:"reason"`
	Timestamp   string `json:"timestamp"`
}

// Client talks to the remote datastore over its rest interface.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

// NewClient validates the endpoint and returns a ready client.
func NewClient(endpoint, token string) (*Client, error) {
	base, e := url.Parse(endpoint)

	if e != nil {
		return nil, e
	}

	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("datastore url '%s' is missing a scheme or host", endpoint)
	}

	return &Client{base: base, token: token, http: &http.Client{Timeout: time.Second * 10}}, nil
}

// PushAttendance mirrors one attendance record to the remote datastore.
func (c *Client) PushAttendance(record AttendanceUpsert) error {
	buffer := bytes.NewBufferString("")
	encoder := json.NewEncoder(buffer)

	if e := encoder.Encode(record); e != nil {
		return e
	}

	destination := *c.base
	destination.Path = path.Join(destination.Path, attendancePath)

	request, e := http.NewRequest("POST", destination.String(), buffer)

	if e != nil {
		return e
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	result, e := c.http.Do(request)

	if e != nil {
		return e
	}

	defer result.Body.Close()

	if result.StatusCode >= 300 {
		return fmt.Errorf("datastore rejected attendance record: %s", result.Status)
	}

	return nil
}
