package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"hylo/internal/prof"
)

func addProfileFlags(flags *pflag.FlagSet) {
	flags.String("cpuprofile", "", "write a CPU profile to file")
	flags.String("memprofile", "", "write a heap profile to file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to file")
}

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	opts.CPU, _ = flags.GetString("cpuprofile")
	opts.Mem, _ = flags.GetString("memprofile")
	opts.Trace, _ = flags.GetString("runtime-trace")
	return prof.Start(opts)
}
