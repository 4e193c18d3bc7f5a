// Command dsdemo runs scripted scenarios against the containers of the dslib
// module and prints their state along the way.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/segmentio/dslib/alloc"
	"github.com/segmentio/dslib/container"
	"github.com/spf13/cobra"
)

var (
	trace      bool
	maxObjects int64
)

var rootCmd = &cobra.Command{
	Use:   "dsdemo [command]",
	Short: "exercise the dslib containers",
	Long: `
  Runs scripted scenarios against the list, stack, queue and tree containers,
  printing their contents after each step. Allocation tracing goes to the glog
  output (use --logtostderr to see it in the terminal).
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		alloc.EnableTracing(trace)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		alloc.DumpState()
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "run every scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range demoCmds {
			if err := c.RunE(cmd, args); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&trace, "trace", false, "log every allocation and release")
	flags.Int64Var(&maxObjects, "max-objects", 0, "maximum number of live objects per container, 0 for unlimited")
	// glog registers its flags on the standard flag set.
	flags.AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(demoCmds...)
	rootCmd.AddCommand(allCmd)
}

// options returns the container options selected by the command line flags.
func options() []container.Option {
	if maxObjects > 0 {
		return []container.Option{
			container.WithAllocator(alloc.NewLimit(alloc.MaxObjects(maxObjects))),
		}
	}
	return nil
}

func main() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
