package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/tweener"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Run a tween script and print the callbacks it produced",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		script, err := tweener.LoadScript(data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		s := newScheduler(nil)
		defer s.Dispose()
		if err := script.Run(s); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		for _, ev := range script.Trace() {
			fmt.Fprintln(out, ev)
		}
		st := s.Stats()
		global.logger.Info("replay finished",
			zap.String("script", args[0]),
			zap.Int("frames", script.Frames()),
			zap.Int("events", len(script.Trace())),
			zap.Int("live_slots", st.Slots),
			zap.Int("live_tokens", st.Tokens),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
