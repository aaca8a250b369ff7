package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/sarchlab/clarus/httppost"
	"github.com/sarchlab/clarus/list"
	"github.com/spf13/cobra"
)

func newPostCmd() *cobra.Command {
	postCmd := &cobra.Command{
		Use:   "post PATH [BYTES]",
		Short: "Post a list of bytes, or a file, and print the response.",
		Long: "Post a list of bytes such as [104, 105], or the file given " +
			"with --file, to PATH on the host and print the response body.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			host := stringFlag(cmd, "host", envHost)
			contentType, _ := cmd.Flags().GetString("content-type")
			file, _ := cmd.Flags().GetString("file")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			client := httppost.NewClient().WithTimeout(timeout)

			var (
				rsp string
				err error
			)

			switch {
			case file != "" && len(args) == 1:
				rsp, err = client.PostFile(cmd.Context(),
					host, args[0], contentType, file)
			case file == "" && len(args) == 2:
				var data *list.List[byte]

				data, err = list.Parse(args[1], list.ParseByte)
				if err != nil {
					return err
				}

				rsp, err = client.Post(cmd.Context(),
					host, args[0], contentType, data)
			default:
				return errors.New("give either BYTES or --file")
			}

			if rsp != "" {
				fmt.Fprintln(cmd.OutOrStdout(), rsp)
			}

			return err
		},
	}

	postCmd.Flags().String("host", "localhost:8080",
		"Host to post to ("+envHost+")")
	postCmd.Flags().String("content-type", "application/octet-stream",
		"Content type of the body")
	postCmd.Flags().String("file", "", "Post the content of this file")
	postCmd.Flags().Duration("timeout", 30*time.Second, "Request timeout")

	return postCmd
}
