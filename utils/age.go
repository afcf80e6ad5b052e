package utils

import "time"

// AgeAt returns the whole years elapsed between birth and ref, counting a
// year only once the birthday has occurred. The result is negative when
// birth is after ref; callers decide how to treat that.
func AgeAt(birth, ref time.Time) int {
	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	return years
}
