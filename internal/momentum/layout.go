// ABOUTME: Pure slot layout for chart points sharing a time bucket
// ABOUTME: Independent of any rendering canvas so collision layout is testable
package momentum

// LayoutSlots returns symmetric slot offsets for n items sharing a bucket,
// in draw order for items pre-sorted by value descending: the highest value
// takes the center, later items alternate right then left, spreading
// outward. n <= 0 returns nil.
//
//	n=1: [0]
//	n=2: [0, 1]
//	n=3: [0, 1, -1]
//	n=4: [0, 1, -1, 2]
func LayoutSlots(n int) []int {
	if n <= 0 {
		return nil
	}
	offsets := make([]int, n)
	for i := 1; i < n; i++ {
		mag := (i + 1) / 2
		if i%2 == 1 {
			offsets[i] = mag
		} else {
			offsets[i] = -mag
		}
	}
	return offsets
}
