package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trknhr/postflow/internal/config"
	"github.com/trknhr/postflow/internal/posts"
	"github.com/trknhr/postflow/internal/relay"
	"github.com/trknhr/postflow/internal/viewmodel"
	"github.com/trknhr/postflow/internal/viewstate"
)

var (
	dimStyle  = lipgloss.NewStyle().Faint(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle = lipgloss.NewStyle().Faint(true)
)

// sessionModel is the posts screen. It subscribes to both view-model
// channels on construction, forwards published states into the Bubble
// Tea loop, and renders whatever the current state of each channel is.
type sessionModel struct {
	vm     *viewmodel.PostsViewModel
	bag    relay.Bag
	states chan tea.Msg

	input      textinput.Model
	spin       spinner.Model
	accent     lipgloss.Color
	initialGet bool

	getState  viewstate.State[string]
	sendState viewstate.State[int]

	width  int
	height int
}

func NewSessionModel(vm *viewmodel.PostsViewModel, cfg config.Config) *sessionModel {
	accent := lipgloss.Color(cfg.UI.Accent)

	input := textinput.New()
	input.Placeholder = "Type a post and press enter..."
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(accent)

	m := &sessionModel{
		vm:         vm,
		states:     make(chan tea.Msg, 8),
		input:      input,
		spin:       spin,
		accent:     accent,
		initialGet: cfg.UI.InitialGet,
	}

	// Subscriptions live until teardown; the bag releases them so no
	// state is delivered into a dead screen.
	m.bag.Add(vm.GetPost.Subscribe(func(s viewstate.State[string]) {
		m.states <- getStateMsg(s)
	}))
	m.bag.Add(vm.SendPost.Subscribe(func(s viewstate.State[int]) {
		m.states <- sendStateMsg(s)
	}))

	return m
}

func (m *sessionModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick, m.waitForState()}
	if m.initialGet {
		cmds = append(cmds, m.requestCmd(posts.GetPost{}))
	}
	return tea.Batch(cmds...)
}

// requestCmd runs one view-model request off the update loop. The
// resulting states come back through the subscription channel.
func (m *sessionModel) requestCmd(req posts.Request) tea.Cmd {
	return func() tea.Msg {
		m.vm.Request(req)
		return nil
	}
}

func (m *sessionModel) waitForState() tea.Cmd {
	return func() tea.Msg {
		return <-m.states
	}
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.bag.Dispose()
			return m, tea.Quit

		case tea.KeyCtrlG:
			return m, m.requestCmd(posts.GetPost{})

		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.input.Reset()
				return m, m.requestCmd(posts.SendPost{Text: text})
			}

		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

	case getStateMsg:
		m.getState = viewstate.State[string](msg)
		return m, m.waitForState()

	case sendStateMsg:
		m.sendState = viewstate.State[int](msg)
		return m, m.waitForState()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *sessionModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.accent).Render("Postflow")

	s := title + "\n\n"
	s += m.renderGet() + "\n"
	s += m.renderSend() + "\n\n"
	s += m.input.View() + "\n\n"
	s += helpStyle.Render("enter = send post / ctrl+g = get post / ctrl+c = quit")
	return s
}

func (m *sessionModel) renderGet() string {
	out := ""
	m.getState.Match(viewstate.Cases[string]{
		None:     func() { out = dimStyle.Render("post: press ctrl+g to fetch") },
		Loading:  func() { out = m.spin.View() + " fetching post..." },
		Finished: func(text string) { out = "post: " + text },
		Error:    func(err error) { out = errStyle.Render("post: " + err.Error()) },
	})
	return out
}

func (m *sessionModel) renderSend() string {
	out := ""
	m.sendState.Match(viewstate.Cases[int]{
		None:     func() { out = dimStyle.Render("send: nothing sent yet") },
		Loading:  func() { out = m.spin.View() + " sending post..." },
		Finished: func(n int) { out = "send: delivered, receipt " + strconv.Itoa(n) },
		Error:    func(err error) { out = errStyle.Render("send: " + err.Error()) },
	})
	return out
}
