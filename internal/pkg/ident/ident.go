// Package ident generates the human-readable identifiers used on orders and
// warranty contracts: a prefix, the current date and a 4-digit random suffix,
// e.g. ORD-20250424-4821 or KC-20250424-1034.
package ident

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	OrderPrefix    = "ORD"
	ContractPrefix = "KC"
)

func Generate(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, now.Format("20060102"), 1000+rand.IntN(9000))
}

func OrderNumber(now time.Time) string {
	return Generate(OrderPrefix, now)
}

func ContractNumber(now time.Time) string {
	return Generate(ContractPrefix, now)
}
