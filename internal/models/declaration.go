package models

// TestDeclaration is one graded test extracted from the autograding
// workflow definition. The extraction order is load-bearing: it fixes
// the per-test column order for the whole batch.
type TestDeclaration struct {
	Name     string
	ID       string
	MaxScore int
}

func TotalAvailable(declarations []TestDeclaration) int {
	total := 0
	for i := range declarations {
		total += declarations[i].MaxScore
	}
	return total
}
