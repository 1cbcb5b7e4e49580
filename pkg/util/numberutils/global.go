package numberutils

// ZipLength is the number of digits of a US ZIP code.
const ZipLength = 5

// IsDigits checks if the given string contains only ASCII digits (0-9).
// Other Unicode decimal digits are rejected.
func IsDigits(str string) bool {
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return false
		}
	}
	return true
}

// IsValidZip reports whether s is exactly five ASCII digits.
// It never trims or pads, so "02134" is valid and " 2134" is not.
func IsValidZip(s string) bool {
	return len(s) == ZipLength && IsDigits(s)
}
