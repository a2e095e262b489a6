package domain

import "net/http"

// CodeTimeout is the status reported for a request that never got an HTTP answer.
const CodeTimeout = 0

// Response is the outcome of one platform round trip. When Err is nil the
// platform answered with Code and Body; otherwise the request failed in
// transport, Code is CodeTimeout and Body carries the error text.
type Response struct {
	Code   int
	Header http.Header
	Body   string
	Err    error
}

func NewResponse(code int, header http.Header, body string) Response {
	return Response{
		Code:   code,
		Header: header,
		Body:   body,
	}
}

func TransportFailure(err error) Response {
	return Response{
		Code: CodeTimeout,
		Body: err.Error(),
		Err:  err,
	}
}

func (r Response) Online() bool {
	return r.Err == nil
}
