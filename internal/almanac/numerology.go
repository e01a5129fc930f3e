package almanac

// Master numbers are exempt from further digit reduction.
func isMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// Reduce performs numerological digit-sum reduction: master numbers pass
// through unchanged; anything else is summed until a single digit remains.
func Reduce(n int) int {
	if isMaster(n) {
		return n
	}
	for n > 9 {
		n = digitSum(n)
		if isMaster(n) {
			return n
		}
	}
	return n
}

// LifePath computes the Life Path number for a birth date. Month, day, and
// year digit-sum are each reduced independently (preserving masters), then
// their sum is reduced iteratively — a master number reached at any step
// halts further reduction. A zero result maps to 1.
func LifePath(d Date) int {
	month := Reduce(d.Month)
	day := Reduce(d.Day)
	year := Reduce(digitSum(d.Year))

	total := Reduce(month) + Reduce(day) + Reduce(year)
	for total > 9 && !isMaster(total) {
		total = digitSum(total)
	}
	if total == 0 {
		return 1
	}
	return total
}
