package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hylo/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk token cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every cached token stream",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cacheDir, _ := cmd.Root().PersistentFlags().GetString("cache-dir")
		var (
			cache *driver.DiskCache
			err   error
		)
		if cacheDir != "" {
			cache, err = driver.OpenDiskCacheAt(cacheDir)
		} else {
			cache, err = driver.OpenDiskCache("hylo")
		}
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("clean cache: %w", err)
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "cleaned %s\n", cache.Dir())
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
}
