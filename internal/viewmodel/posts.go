package viewmodel

import (
	"fmt"

	"github.com/trknhr/postflow/internal/logger"
	"github.com/trknhr/postflow/internal/posts"
	"github.com/trknhr/postflow/internal/relay"
	"github.com/trknhr/postflow/internal/usecase"
	"github.com/trknhr/postflow/internal/viewstate"
)

// sentReceipt is what the send channel reports instead of the echoed
// text.
// TODO: surface the echoed text once a real posts backend replaces the
// canned use case.
const sentReceipt = 10

// PostsViewModel mediates between the posts screen and its use case.
// Each logical request kind gets its own output channel; Request
// publishes Loading on the matching channel, runs the use case, and
// publishes the mapped result. Channels never interact.
type PostsViewModel struct {
	uc usecase.UseCase[posts.Request, posts.Response]

	// GetPost carries the fetched post body.
	GetPost *relay.Relay[viewstate.State[string]]
	// SendPost carries the delivery receipt for a sent post.
	SendPost *relay.Relay[viewstate.State[int]]
}

func NewPosts(uc usecase.UseCase[posts.Request, posts.Response]) *PostsViewModel {
	return &PostsViewModel{
		uc:       uc,
		GetPost:  relay.New[viewstate.State[string]](),
		SendPost: relay.New[viewstate.State[int]](),
	}
}

// Request drives one request cycle on the channel matching req's kind.
// Subscribers observe Loading followed by Finished, or Error if the use
// case misbehaves; a failure never escapes to the caller.
func (vm *PostsViewModel) Request(req posts.Request) {
	switch req.(type) {
	case posts.GetPost:
		vm.GetPost.Publish(viewstate.Loading[string]())
		vm.run(req, func(res posts.Response) {
			out, ok := res.(posts.GetPostResponse)
			if !ok {
				vm.GetPost.Publish(viewstate.Errored[string](fmt.Errorf("unexpected response %T for get post", res)))
				return
			}
			vm.GetPost.Publish(viewstate.Finished(out.Text))
		}, func(err error) {
			vm.GetPost.Publish(viewstate.Errored[string](err))
		})
	case posts.SendPost:
		vm.SendPost.Publish(viewstate.Loading[int]())
		vm.run(req, func(res posts.Response) {
			if _, ok := res.(posts.SendPostResponse); !ok {
				vm.SendPost.Publish(viewstate.Errored[int](fmt.Errorf("unexpected response %T for send post", res)))
				return
			}
			vm.SendPost.Publish(viewstate.Finished(sentReceipt))
		}, func(err error) {
			vm.SendPost.Publish(viewstate.Errored[int](err))
		})
	default:
		logger.Warn("ignoring unknown request %T", req)
	}
}

// run is the error boundary around the use case: a panicking Transform
// surfaces as an Error state on the channel instead of crashing the
// caller.
func (vm *PostsViewModel) run(req posts.Request, deliver func(posts.Response), fail func(error)) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("use case panicked on %T: %v", req, rec)
			fail(fmt.Errorf("use case failed: %v", rec))
		}
	}()
	vm.uc.Transform(req, deliver)
}
