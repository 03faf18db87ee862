// Command billionfib computes a very large Fibonacci number with fast
// doubling over a Karatsuba multiplier, writes its decimal digits to a file
// and prints the first terms of the sequence.
package main

import (
	"context"
	"os"

	"github.com/agbru/billionfib/internal/app"
	apperrors "github.com/agbru/billionfib/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.HandleError(err, 0, os.Stderr, nil))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
