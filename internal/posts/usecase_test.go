package posts_test

import (
	"testing"

	"github.com/trknhr/postflow/internal/posts"
)

func TestTransform_GetPost(t *testing.T) {
	uc := posts.NewUseCase()

	var got []posts.Response
	uc.Transform(posts.GetPost{}, func(res posts.Response) {
		got = append(got, res)
	})

	if len(got) != 1 {
		t.Fatalf("expected exactly one emission, got %d", len(got))
	}
	res, ok := got[0].(posts.GetPostResponse)
	if !ok {
		t.Fatalf("expected GetPostResponse, got %T", got[0])
	}
	if res.Text != "Get Post Response" {
		t.Errorf("unexpected text: %q", res.Text)
	}
}

func TestTransform_SendPostEchoesText(t *testing.T) {
	uc := posts.NewUseCase()

	for _, text := range []string{"hello", "", "git commit -m 'wip'"} {
		var got []posts.Response
		uc.Transform(posts.SendPost{Text: text}, func(res posts.Response) {
			got = append(got, res)
		})

		if len(got) != 1 {
			t.Fatalf("expected exactly one emission for %q, got %d", text, len(got))
		}
		res, ok := got[0].(posts.SendPostResponse)
		if !ok {
			t.Fatalf("expected SendPostResponse, got %T", got[0])
		}
		if res.Text != text {
			t.Errorf("expected echoed text %q, got %q", text, res.Text)
		}
	}
}
