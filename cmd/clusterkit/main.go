// Package main provides the clusterkit CLI entry point.
package main

import "github.com/hupe1980/clusterkit/internal/cli"

func main() {
	cli.Execute()
}
