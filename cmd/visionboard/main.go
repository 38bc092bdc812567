// Package main は visionboard CLI のエントリポイントです。
package main

import (
	"os"

	"github.com/shouni/vision-board-kit/cmd/visionboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
