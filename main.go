// Package main is the entry point for the trendscope CLI.
package main

import (
	"trendscope/cmd"
	"trendscope/internal/contract"
	"trendscope/internal/iocache"
)

// main wires the global persistence manager into the command layer, runs the
// root command, and tears down stores and profiling before exiting.
func main() {
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	// Cleanup runs before LogFatal since LogFatal exits the process.
	iocache.CloseStores()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
