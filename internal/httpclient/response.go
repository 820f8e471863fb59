package httpclient

import (
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Response is a fully-buffered HTTP response with its measured timing.
type Response struct {
	StatusCode   int
	Status       string
	Headers      http.Header
	ResponseTime time.Duration

	body []byte
}

func newResponse(httpResp *http.Response) (*Response, error) {
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		body:       body,
	}, nil
}

// Body returns the buffered response body.
func (r *Response) Body() []byte {
	return r.body
}

// BodyString returns the buffered response body as a string.
func (r *Response) BodyString() string {
	return string(r.body)
}

// BodyJSON unmarshals the response body into v.
func (r *Response) BodyJSON(v interface{}) error {
	return json.Unmarshal(r.body, v)
}

// GetHeader returns the value of the named response header.
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
