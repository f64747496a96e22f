package posts

// Request is the closed set of operations the posts screen can issue.
type Request interface {
	isRequest()
}

type GetPost struct{}

type SendPost struct {
	Text string
}

func (GetPost) isRequest()  {}
func (SendPost) isRequest() {}

// Response is the closed set of results a Request can produce.
type Response interface {
	isResponse()
}

type GetPostResponse struct {
	Text string
}

type SendPostResponse struct {
	Text string
}

func (GetPostResponse) isResponse()  {}
func (SendPostResponse) isResponse() {}
