// timespan converts human-readable durations to exact seconds and back.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jparise/timespan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
