package cmd

import (
	"fmt"

	"github.com/sarchlab/clarus/datarecording"
	"github.com/sarchlab/clarus/list"
	"github.com/spf13/cobra"
)

func addDBFlag(cmd *cobra.Command) {
	cmd.Flags().String("db", "clarus",
		"Database to use, without the .sqlite3 extension ("+envDB+")")
}

func newRecordCmd() *cobra.Command {
	recordCmd := &cobra.Command{
		Use:   "record NAME LIST",
		Short: "Record a snapshot of a list into a database.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recorder := datarecording.New(stringFlag(cmd, "db", envDB))
			lists := datarecording.NewListRecorder(recorder)

			err := withElements(cmd, args[1],
				func(l *list.List[float64]) error {
					lists.Record(args[0], l)
					return nil
				},
				func(l *list.List[string]) error {
					lists.Record(args[0], l)
					return nil
				})
			if err != nil {
				recorder.Close()
				return err
			}

			return recorder.Close()
		},
	}

	addElementFlags(recordCmd)
	addDBFlag(recordCmd)

	return recordCmd
}

func newLoadCmd() *cobra.Command {
	loadCmd := &cobra.Command{
		Use:   "load [NAME]",
		Short: "Print a recorded list, or the names of all recorded lists.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := datarecording.NewReader(stringFlag(cmd, "db", envDB))
			defer reader.Close()

			if len(args) == 0 {
				return printNames(cmd, reader)
			}

			useStrings, _ := cmd.Flags().GetBool("strings")
			if useStrings {
				return printRecorded(cmd, reader, args[0], list.ParseString)
			}

			return printRecorded(cmd, reader, args[0], list.ParseFloat)
		},
	}

	addElementFlags(loadCmd)
	addDBFlag(loadCmd)
	loadCmd.Flags().Bool("history", false,
		"Print every snapshot, oldest first")

	return loadCmd
}

func printNames(cmd *cobra.Command, reader datarecording.DataReader) error {
	names, err := datarecording.RecordedNames(cmd.Context(), reader)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}

	return nil
}

func printRecorded[T any](
	cmd *cobra.Command,
	reader datarecording.DataReader,
	name string,
	parse list.Parser[T],
) error {
	history, _ := cmd.Flags().GetBool("history")
	if !history {
		l, err := datarecording.LoadList(cmd.Context(), reader, name, parse)
		if err != nil {
			return err
		}

		return printList(cmd, l)
	}

	snapshots, err := datarecording.LoadHistory(cmd.Context(), reader, name, parse)
	if err != nil {
		return err
	}

	for s := range snapshots.Values() {
		err = printList(cmd, s)
		if err != nil {
			return err
		}
	}

	return nil
}
