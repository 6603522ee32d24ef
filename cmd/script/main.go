// Command script is the command-line front end for the embeddable
// scripting core: run a file, drop into a REPL, or serve evaluation
// requests over HTTP.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oarkflow/script"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "script",
		Short: "Run, explore, and serve the embeddable scripting language",
	}
	root.AddCommand(newRunCmd(), newReplCmd(), newServeCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Parse, type-check, and execute a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			program, err := script.Compile(f)
			if err != nil {
				return err
			}
			result, err := program.Run()
			if err != nil {
				return err
			}
			fmt.Println(result.String())
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate one expression statement per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(os.Stdin)
			fmt.Print("> ")
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					fmt.Print("> ")
					continue
				}
				value, err := script.EvalString(line)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
				} else {
					fmt.Println(value.String())
				}
				fmt.Print("> ")
			}
			fmt.Println()
			return scanner.Err()
		},
	}
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve script evaluation over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8088", "address to listen on")
	return cmd
}
