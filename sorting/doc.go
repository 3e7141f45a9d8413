// Package sorting implements the four classic comparison sorts, written for
// reading first and speed second.
//
// 🚀 What is inside?
//
//	Four strategies over any cmp.Ordered element type:
//	  • Bubble       repeated adjacent exchanges (exchange sort)
//	  • Insertion    a sorted prefix grown by backward shifting
//	  • Quick        divide-and-conquer around a Lomuto Partition
//	  • MergeSort    divide-and-conquer with Merge of sorted halves
//
//	plus the building blocks they share: Exchange, Partition and Merge.
//
// ✨ Behaviour at a glance:
//
//	| Algorithm | In place | Stable | Time (avg)  | Time (worst) | Stack    |
//	|-----------|----------|--------|-------------|--------------|----------|
//	| Bubble    | yes      | yes    | Θ(n²)       | Θ(n²)        | O(1)     |
//	| Insertion | yes      | yes    | O(n²)       | O(n²)        | O(1)     |
//	| Quick     | yes      | no     | O(n log n)  | O(n²)        | O(log n) |
//	| MergeSort | no       | no¹    | Θ(n log n)  | Θ(n log n)   | O(log n) |
//
//	¹ Merge takes from the right input on ties, so equal elements leave
//	  MergeSort in reverse input order.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsort/sorting"
//
//	data := []int{5, 3, 8, 1, 9, 2}
//	sorting.Quick(data)                 // data is now [1 2 3 5 8 9]
//	out := sorting.MergeSort(input)     // input untouched, out is new
//
//	var st sorting.Stats
//	sorting.Bubble(data, sorting.WithStats(&st))
//	fmt.Println(st.Comparisons, st.Exchanges)
//
// In-place sorts (Bubble, Insertion, Quick, QuickRange) mutate the slice they
// are given and return it for convenience; the caller's variable already
// holds the result. MergeSort never mutates its input.
//
// Contract violations:
//
//	Exchange, Partition and QuickRange panic with an error wrapping
//	ErrIndexOutOfRange when given indices outside the slice. An empty range
//	(start >= end) passed to QuickRange is not a violation; it is the base
//	case and returns immediately.
//
// Thread safety:
//
//	No package state exists. Concurrent calls on distinct slices are safe;
//	sorting the same slice from several goroutines is a data race.
package sorting
