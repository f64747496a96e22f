package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trknhr/postflow/internal/config"
	"github.com/trknhr/postflow/internal/posts"
	"github.com/trknhr/postflow/internal/viewmodel"
	"github.com/trknhr/postflow/internal/viewstate"
)

func newTestModel() (*sessionModel, *viewmodel.PostsViewModel) {
	vm := viewmodel.NewPosts(posts.NewUseCase())
	return NewSessionModel(vm, config.Default()), vm
}

func TestSubscriptionsForwardStatesIntoLoop(t *testing.T) {
	m, vm := newTestModel()

	vm.Request(posts.GetPost{})

	first := <-m.states
	if st, ok := first.(getStateMsg); !ok || !viewstate.State[string](st).IsLoading() {
		t.Fatalf("expected loading on get channel first, got %#v", first)
	}

	second := <-m.states
	st, ok := second.(getStateMsg)
	if !ok {
		t.Fatalf("expected getStateMsg, got %#v", second)
	}
	if v, ok := viewstate.State[string](st).Value(); !ok || v != "Get Post Response" {
		t.Errorf("expected finished post body, got %s", viewstate.State[string](st))
	}
}

func TestStateMsgsDriveTheView(t *testing.T) {
	m, _ := newTestModel()

	next, cmd := m.Update(getStateMsg(viewstate.Loading[string]()))
	m = next.(*sessionModel)
	if cmd == nil {
		t.Fatal("state msg must re-arm the channel wait")
	}
	if !strings.Contains(m.View(), "fetching post") {
		t.Errorf("loading state should show the busy indicator:\n%s", m.View())
	}

	next, _ = m.Update(getStateMsg(viewstate.Finished("hello world")))
	m = next.(*sessionModel)
	if !strings.Contains(m.View(), "post: hello world") {
		t.Errorf("finished state should render the value:\n%s", m.View())
	}

	next, _ = m.Update(sendStateMsg(viewstate.Finished(10)))
	m = next.(*sessionModel)
	if !strings.Contains(m.View(), "receipt 10") {
		t.Errorf("send receipt should be rendered:\n%s", m.View())
	}
}

func TestEnterIssuesSendPost(t *testing.T) {
	m, _ := newTestModel()
	m.input.SetValue("my first post")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter with text should issue a request")
	}
	cmd() // runs the view-model request synchronously

	first := <-m.states
	if st, ok := first.(sendStateMsg); !ok || !viewstate.State[int](st).IsLoading() {
		t.Fatalf("expected loading on send channel, got %#v", first)
	}
}

func TestQuitDisposesSubscriptions(t *testing.T) {
	m, vm := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}

	vm.Request(posts.GetPost{})
	if len(m.states) != 0 {
		t.Errorf("no states should reach a torn-down screen, found %d", len(m.states))
	}
}
