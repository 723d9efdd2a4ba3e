// log.go implements the "memepicker log" command.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jumpinjune/memepicker/internal/log"
)

func newLogCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show events recorded with --log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			l, err := log.NewLogger(dir)
			if err != nil {
				return err
			}

			var events []log.LogEvent
			if sessionID != "" {
				events, err = l.ReadSession(sessionID)
			} else {
				events, err = l.ReadAll()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No events recorded.")
				return nil
			}
			for _, e := range events {
				fmt.Fprintln(out, formatEvent(e))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Only show events from this session")
	return cmd
}

func formatEvent(e log.LogEvent) string {
	fields := []string{e.Time.Format("2006-01-02 15:04:05"), e.Session, e.Event}
	if e.Mood != "" {
		fields = append(fields, "mood="+e.Mood)
	}
	if e.AnimatedOnly {
		fields = append(fields, "animated")
	}
	if e.Image != "" {
		fields = append(fields, "image="+e.Image)
	}
	if e.Matches > 0 {
		fields = append(fields, fmt.Sprintf("matches=%d", e.Matches))
	}
	if e.Error != "" {
		fields = append(fields, "error="+e.Error)
	}
	return strings.Join(fields, " ")
}
