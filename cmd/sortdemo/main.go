// Command sortdemo shuffles a permutation of 0..n-1, runs every sort in
// lvsort/sorting over a copy of it, and looks for a target value with both
// search.Linear and search.Binary.
//
// Usage:
//
//	sortdemo [--size 100] [--seed 1] [--generator shuffle|cycle]
//	         [--target -1] [--algorithms bubble,insertion,quick,merge] [--stats]
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
