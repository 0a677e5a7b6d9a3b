// Package payref generates payment reference numbers for checkout attempts.
//
// A reference has the form PAY-<8 digits>-<6 uppercase alphanumerics>: the digit
// block is the tail of the current unix timestamp in milliseconds, the suffix is
// random. Uniqueness is probabilistic; the orders table primary key catches the
// residual collision case.
package payref

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"time"
)

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// New returns a fresh payment reference, e.g. PAY-73528190-X4K2ZQ.
func New() (string, error) {
	const op = "payref.New"

	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	digits := millis[len(millis)-8:]

	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}

	return fmt.Sprintf("PAY-%s-%s", digits, string(buf)), nil
}
