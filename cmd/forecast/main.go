// Command forecast projects a household's liquid balance month by month from a
// snapshot document of assets, income and expenses.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
