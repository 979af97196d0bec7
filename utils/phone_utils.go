package utils

import (
	"crypto/rand"
	"encoding/binary"
	"regexp"
	"strings"
)

var indianMobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

// cleanPhoneNumber strips spaces, dashes and plus signs
func cleanPhoneNumber(phoneNumber string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "+", "")
	return replacer.Replace(phoneNumber)
}

// ValidatePhoneNumber reports whether the input is a valid 10-digit
// Indian mobile number starting with 6-9
func ValidatePhoneNumber(phoneNumber string) bool {
	return indianMobileRegex.MatchString(cleanPhoneNumber(phoneNumber))
}

// FormatPhoneNumber strips formatting characters and drops a leading "91"
// country code from 12-digit inputs. Idempotent.
func FormatPhoneNumber(phoneNumber string) string {
	cleanNumber := cleanPhoneNumber(phoneNumber)
	if strings.HasPrefix(cleanNumber, "91") && len(cleanNumber) == 12 {
		return cleanNumber[2:]
	}
	return cleanNumber
}

// GenerateOTP returns a 6-digit numeric one-time passcode sampled
// uniformly over [100000, 999999]
func GenerateOTP() string {
	// Largest multiple of 900000 representable in a uint32. Draws at or
	// above it are rejected so every residue is equally likely.
	const limit = uint32(4294800000)

	var raw uint32
	for {
		if err := binary.Read(rand.Reader, binary.BigEndian, &raw); err != nil {
			panic("generate random otp failed")
		}
		if raw < limit {
			break
		}
	}

	n := 100000 + int(raw%900000)
	digits := []byte{
		byte('0' + n/100000%10),
		byte('0' + n/10000%10),
		byte('0' + n/1000%10),
		byte('0' + n/100%10),
		byte('0' + n/10%10),
		byte('0' + n%10),
	}
	return string(digits)
}
