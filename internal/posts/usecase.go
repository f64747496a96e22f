package posts

// getPostText is the canned body returned for every GetPost. There is
// no backend yet; this stands in for a posts API client.
const getPostText = "Get Post Response"

// UseCase synthesizes responses synchronously. It emits exactly once
// per request and cannot fail.
type UseCase struct{}

func NewUseCase() *UseCase {
	return &UseCase{}
}

func (u *UseCase) Transform(req Request, emit func(Response)) {
	switch r := req.(type) {
	case GetPost:
		emit(GetPostResponse{Text: getPostText})
	case SendPost:
		emit(SendPostResponse{Text: r.Text})
	}
}
