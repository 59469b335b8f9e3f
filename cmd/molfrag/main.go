// SPDX-License-Identifier: MIT

// Command molfrag fragments molecules given as SMILES.
//
//	molfrag fragment 'CC(C)(C)C1CCCCC1' --separate
//	molfrag fragment --input library.smi --output json --workers 8
//	molfrag settings
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "molfrag:", err)
		os.Exit(1)
	}
}
