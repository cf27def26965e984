package oned

// modulo10 computes the UPC/EAN style check digit. When evenStart is true the
// digits at odd indices are weighted 3, otherwise the digits at even indices.
func modulo10(digits []int, evenStart bool) int {
	evens, odds := 0, 0
	for i, d := range digits {
		if i%2 == 0 {
			evens += d
		} else {
			odds += d
		}
	}
	var sum int
	if evenStart {
		sum = evens + odds*3
	} else {
		sum = evens*3 + odds
	}
	return (10 - sum%10) % 10
}

// eanSupplementChecksum selects the parity row of a five digit supplement.
// It is never encoded.
func eanSupplementChecksum(digits []int) int {
	odd, even := 0, 0
	for i, d := range digits {
		if i%2 == 0 {
			odd += d
		} else {
			even += d
		}
	}
	return (odd*3 + even*9) % 10
}

// weightedChecksum sums indices weighted 1, 2, ... maxWeight from the right,
// wrapping back to 1 after maxWeight.
func weightedChecksum(indices []int, maxWeight, modulus int) int {
	weight := 1
	total := 0
	for i := len(indices) - 1; i >= 0; i-- {
		total += indices[i] * weight
		weight++
		if weight > maxWeight {
			weight = 1
		}
	}
	return total % modulus
}

func modulo43(indices []int) int {
	total := 0
	for _, idx := range indices {
		total += idx
	}
	return total % 43
}

// code128Checksum weights every unit by its position, with the start unit
// and the first data unit both weighted 1.
func code128Checksum(units []int) int {
	total := 0
	for i, u := range units {
		total += u * max(1, i)
	}
	return total % 103
}
