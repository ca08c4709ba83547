package a

func fragileOne(x int) int { // want `function fragileOne intersects fragile cluster 3:0-5:200`
	return x * 3
}

func safe(x int) int {
	return x * 5
}

type T struct{ n int }

func (t *T) Method(k int) int { // want `function \(\*T\)\.Method intersects fragile cluster 13:0-15:200`
	return k * 2
}

func outside(k int) int {
	return k + 1
}
