package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the built-in demo script with a live dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := buildDemoNetwork()
			_, cues, runtime := demoScript()

			n.Start()
			defer n.Stop()
			runScript(n, cues)

			p := tea.NewProgram(newDashboard(n))
			done := make(chan struct{})
			go func() {
				time.Sleep(runtime + 500*time.Millisecond)
				p.Send(tea.Quit())
				close(done)
			}()

			_, err := p.Run()
			<-done
			return err
		},
	}
}
