// Package lvsort is a small, readable collection of the classic comparison
// sorts and searches, written to be studied as much as used.
//
// 🚀 What is lvsort?
//
//	A pure-Go, generic library over any cmp.Ordered element type:
//		• Exchange sort: Bubble
//		• Incremental insertion: Insertion
//		• Divide and conquer by partitioning: Partition + Quick / QuickRange
//		• Divide and conquer by merging: Merge + MergeSort
//		• Searching: Linear, Binary / BinaryRange, BinaryRecursive
//
// ✨ Why lvsort?
//
//   - Textbook behaviour: Bubble never exits early, Quick
//     always pivots on the last element, Merge prefers the right run on ties.
//   - Optional Stats counters (comparisons, exchanges, passes, depth) make
//     the cost of each strategy visible without changing results.
//   - Bounded stack: Quick recurses only into its smaller side and Binary
//     is iterative, so adversarial input cannot blow the stack.
//
// Under the hood, everything is organized in two packages:
//
//	sorting/  Exchange, Bubble, Insertion, Partition, Quick, QuickRange, Merge, MergeSort
//	search/   Linear, Binary, BinaryRange, BinaryRecursive, Contains
//
// and one command:
//
//	cmd/sortdemo  shuffles 0..n-1, runs every sort, searches for a target
//
// Quick example:
//
//	data := []int{5, 3, 8, 1, 9, 2}
//	sorting.Quick(data)               // [1 2 3 5 8 9]
//	i, ok := search.Binary(data, 8)   // 4 true
//
//	go get github.com/katalvlaran/lvsort
package lvsort
