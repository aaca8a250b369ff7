package cmd

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sarchlab/clarus/list"
	"github.com/sarchlab/clarus/monitoring"
	"github.com/spf13/cobra"
)

func newMonitorCmd() *cobra.Command {
	monitorCmd := &cobra.Command{
		Use:   "monitor NAME=LIST...",
		Short: "Serve lists for inspection until interrupted.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := intFlag(cmd, "port", envMonitorPort)
			if err != nil {
				return err
			}

			openBrowser, _ := cmd.Flags().GetBool("browser")

			m := monitoring.NewMonitor().
				WithPortNumber(port).
				WithBrowser(openBrowser)

			for _, arg := range args {
				name, text, found := strings.Cut(arg, "=")
				if !found {
					return fmt.Errorf("argument %q is not NAME=LIST", arg)
				}

				l, err := list.Parse(text, list.ParseString)
				if err != nil {
					return fmt.Errorf("list %s: %w", name, err)
				}

				m.RegisterList(name, l)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(),
				syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m.StartServer()

			<-ctx.Done()

			return nil
		},
	}

	monitorCmd.Flags().Int("port", 0,
		"Port of the monitoring server, 0 for a random port ("+
			envMonitorPort+")")
	monitorCmd.Flags().Bool("browser", false,
		"Open the monitoring page in a browser")

	return monitorCmd
}
