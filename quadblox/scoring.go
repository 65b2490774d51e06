package quadblox

import "fmt"

// lineClearPoints is indexed by the number of rows removed by one lock.
var lineClearPoints = [...]int{0, 1, 3, 6, 12}

// Points returns the score for clearing rows rows with a single lock.
func Points(rows int) int {
	if rows < 0 || rows >= len(lineClearPoints) {
		panic(fmt.Sprintf("impossible line clear: %d rows", rows))
	}
	return lineClearPoints[rows]
}
