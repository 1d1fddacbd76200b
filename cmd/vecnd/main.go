// Command vecnd evaluates fixed-size vector operations.
//
// Vectors are passed as single arguments of whitespace-separated numbers:
//
//	vecnd dot "1 2 3" "4 5 6"            # 32
//	vecnd mul --scalar 2 "1 2 3"         # 2 4 6
//	vecnd -p 3 --verb f angle "1 0" "0 1"  # 1.571
//	vecnd norm -- "-3 4"                 # 5
//
// Use "--" before a vector whose first number is negative.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
