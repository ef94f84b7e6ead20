package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newRecordCmd() *cobra.Command {
	var reportPath, snapshotPath string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Run the built-in demo script headless and write a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := buildDemoNetwork()
			_, cues, runtime := demoScript()

			n.Record(true)
			n.Start()
			runScript(n, cues)
			time.Sleep(runtime + 500*time.Millisecond)
			n.Stop()

			if err := os.WriteFile(reportPath, []byte(n.SaveRecord()), 0o644); err != nil {
				return err
			}

			snap := n.TakeSnapshot()
			f, err := os.Create(snapshotPath)
			if err != nil {
				return err
			}
			defer f.Close()
			return snap.WriteYAML(f)
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "memnetdemo-report.txt", "path to write the textual activation report")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "memnetdemo-snapshot.yaml", "path to write the final YAML snapshot")
	return cmd
}
