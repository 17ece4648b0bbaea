/*
Package amount converts U.S. style monetary strings to float64 values and
renders float64 values back into display strings.

# Parsing

[ParseUS] accepts strings of the form DDD,DDD,DDD.CC. It never fails:
fragments that are not numbers contribute zero, a minus sign anywhere in the
input negates the result and discards everything before it, and fractions
longer than six digits are dropped. Import code for historical ledger files
depends on this behavior, so it must not be tightened. Callers that want
validation use [ParseUSStrict], which reports [ErrMalformedAmount].

# Formatting

A [Printer] renders currency amounts with two decimals and share quantities
with three. [Flags] selects the mode and whether the currency symbol or the
"shrs" suffix is printed. Every call returns a new string.

Rounding is the fixed-point rounding of the exact binary value, as done by
strconv.FormatFloat: 0.125 prints as "0.12" and 2.005, which is stored as
2.00499999..., prints as "2.00".
*/
package amount
