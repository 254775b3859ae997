package utils

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// PhoneDigits returns the number in E.164 form without the leading '+', as
// WhatsApp deep links expect. Numbers libphonenumber cannot parse fall back to
// their bare digits.
func PhoneDigits(phone, region string) string {
	if p, err := libphonenumber.Parse(phone, region); err == nil && libphonenumber.IsValidNumber(p) {
		return strings.TrimPrefix(libphonenumber.Format(p, libphonenumber.E164), "+")
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
