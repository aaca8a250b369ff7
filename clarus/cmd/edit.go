package cmd

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/sarchlab/clarus/hooking"
	"github.com/sarchlab/clarus/list"
	"github.com/spf13/cobra"
)

func addElementFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strings", false,
		"Treat elements as strings instead of numbers")
}

// withElements parses text as a list of numbers, or of strings if the
// --strings flag is set, and hands it to the matching function.
func withElements(
	cmd *cobra.Command,
	text string,
	numbers func(l *list.List[float64]) error,
	strs func(l *list.List[string]) error,
) error {
	useStrings, _ := cmd.Flags().GetBool("strings")
	if useStrings {
		l, err := list.Parse(text, list.ParseString)
		if err != nil {
			return err
		}

		return strs(l)
	}

	l, err := list.Parse(text, list.ParseFloat)
	if err != nil {
		return err
	}

	return numbers(l)
}

func printList[T any](cmd *cobra.Command, l *list.List[T]) error {
	_, err := l.WriteTo(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout())

	return err
}

func newSortCmd() *cobra.Command {
	sortCmd := &cobra.Command{
		Use:   "sort LIST",
		Short: "Print a list in sorted order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withElements(cmd, args[0],
				func(l *list.List[float64]) error {
					return printList(cmd, sortList(cmd, l))
				},
				func(l *list.List[string]) error {
					return printList(cmd, sortList(cmd, l))
				})
		},
	}

	addElementFlags(sortCmd)
	sortCmd.Flags().Bool("desc", false, "Sort in descending order")
	sortCmd.Flags().Bool("stable", false,
		"Keep equal elements in their original order")

	return sortCmd
}

func sortList[T cmp.Ordered](cmd *cobra.Command, l *list.List[T]) *list.List[T] {
	desc, _ := cmd.Flags().GetBool("desc")
	stable, _ := cmd.Flags().GetBool("stable")

	compare := cmp.Compare[T]
	if desc {
		compare = func(a, b T) int { return cmp.Compare(b, a) }
	}

	switch {
	case stable:
		list.SortStableFunc(l, compare)
	case desc:
		list.SortFunc(l, compare)
	default:
		list.Sort(l)
	}

	return l
}

func newSliceCmd() *cobra.Command {
	sliceCmd := &cobra.Command{
		Use:   "slice LIST START END",
		Short: "Print the elements from START up to END-1.",
		Long: "Print the elements from START up to END-1. Negative bounds " +
			"count from the end of the list. Put -- before negative " +
			"arguments so they are not read as flags.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseBounds(args[1], args[2])
			if err != nil {
				return err
			}

			return withElements(cmd, args[0],
				func(l *list.List[float64]) error {
					return printRange(cmd, l, start, end)
				},
				func(l *list.List[string]) error {
					return printRange(cmd, l, start, end)
				})
		},
	}

	addElementFlags(sliceCmd)

	return sliceCmd
}

func printRange[T any](cmd *cobra.Command, l *list.List[T], start, end int) error {
	r, err := l.Range(start, end)
	if err != nil {
		return err
	}

	return printList(cmd, r)
}

func newRemoveCmd() *cobra.Command {
	removeCmd := &cobra.Command{
		Use:   "remove LIST INDEX",
		Short: "Print a list without the elements starting at INDEX.",
		Long: "Print a list without --count elements starting at INDEX. " +
			"A negative index counts from the end of the list. Put -- " +
			"before it so it is not read as a flag.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			count, _ := cmd.Flags().GetInt("count")

			return withElements(cmd, args[0],
				func(l *list.List[float64]) error {
					return printRemoved(cmd, l, index, count)
				},
				func(l *list.List[string]) error {
					return printRemoved(cmd, l, index, count)
				})
		},
	}

	addElementFlags(removeCmd)
	removeCmd.Flags().Int("count", 1, "Number of elements to remove")
	removeCmd.Flags().Bool("trace", false,
		"Report the list operations to stderr")

	return removeCmd
}

func printRemoved[T any](
	cmd *cobra.Command,
	l *list.List[T],
	index, count int,
) error {
	trace, _ := cmd.Flags().GetBool("trace")

	tracer := hooking.NewOpCountTracer()
	if trace {
		l.AcceptHook(tracer)
	}

	err := l.RemoveN(index, count)
	if err != nil {
		return err
	}

	for _, pos := range tracer.GetPosNames() {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d operations, %d elements\n",
			pos, tracer.GetOpCount(pos), tracer.GetItemCount(pos))
	}

	return printList(cmd, l)
}

func parseBounds(a, b string) (int, int, error) {
	start, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, err
	}

	end, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, err
	}

	return start, end, nil
}
