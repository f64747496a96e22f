package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/trknhr/postflow/internal/posts"
	"github.com/trknhr/postflow/internal/relay"
	"github.com/trknhr/postflow/internal/viewmodel"
	"github.com/trknhr/postflow/internal/viewstate"
)

// NewRequestCmd runs a single request through the same view-model
// wiring the TUI uses and prints each state the channels publish, so
// the flow can be exercised from scripts.
func NewRequestCmd() *cobra.Command {
	var sendText string

	cmd := &cobra.Command{
		Use:   "request [get|send]",
		Short: "Run one request headless and print the observed states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vm := viewmodel.NewPosts(posts.NewUseCase())
			out := cmd.OutOrStdout()

			var bag relay.Bag
			defer bag.Dispose()

			bag.Add(vm.GetPost.Subscribe(func(s viewstate.State[string]) {
				printState(out, "get", s)
			}))
			bag.Add(vm.SendPost.Subscribe(func(s viewstate.State[int]) {
				printState(out, "send", s)
			}))

			switch args[0] {
			case "get":
				vm.Request(posts.GetPost{})
			case "send":
				vm.Request(posts.SendPost{Text: sendText})
			default:
				return fmt.Errorf("unknown request kind: %s", args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sendText, "text", "hello", "payload for the send request")

	return cmd
}

func printState[T any](w io.Writer, channel string, s viewstate.State[T]) {
	fmt.Fprintf(w, "%s: %s\n", channel, s)
}
