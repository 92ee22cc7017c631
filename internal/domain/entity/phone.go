package entity

import "strings"

// NormalizePhone strips everything but digits from a phone value.
// Lookups compare phones in this form so that "(11) 98765-4321" and
// "11987654321" resolve to the same booking.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders a digits-only Brazilian mobile number in the
// "(DD) DDDDD-DDDD" display form used on the booking form. Values that
// are not 10 or 11 digits long are returned unchanged.
func FormatPhone(phone string) string {
	digits := NormalizePhone(phone)
	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	}
	return phone
}
