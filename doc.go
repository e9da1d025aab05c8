/*
Package bigint implements arbitrary-precision signed integers in
two's-complement form.
Negative values, bitwise operations and shifts behave exactly as they would
for a fixed-width two's-complement integer that is always wide enough to
hold the result.

# Representation

[Int] is a struct with a single field: a sequence of 64-bit unsigned limbs,
least significant limb first.

  - The sequence is never empty. Zero is a single limb with a value of 0,
    and the zero value of [Int] is treated as such.
  - The sign is the top bit of the most significant limb.
    For example, -1 is the single limb 0xffffffffffffffff, while 2^63 needs
    two limbs: 0x8000000000000000 followed by 0.
  - The most significant limbs may repeat the sign without changing the value.
    Such redundant limbs are tolerated, and [Int.Compact] removes them.

Every bit beyond the current width of an integer is conceptually equal to
its sign bit.
A shorter operand is extended with its "fill word", which is 0 for
non-negative values and 0xffffffffffffffff for negative ones.
Limbs are materialized only when the current width would otherwise
misrepresent the sign of a result.

# Operations

Each operation is available in two forms:

  - value-returning methods, such as [Int.Add] or [Int.Lsh],
    which never modify their operands;
  - in-place methods, such as [Int.AddAssign] or [Int.LshAssign],
    which replace the limbs of the receiver and return it.

Increment and decrement come in prefix ([Int.Inc], [Int.Dec]) and postfix
([Int.PostInc], [Int.PostDec]) flavours.

Multiplication uses shift-and-add, and division uses binary long division
that produces the quotient and the remainder together.
Division truncates towards zero and the remainder has the sign of the
dividend, as for the built-in integer types.
Right shifts are arithmetic.

Comparison ([Int.Cmp], [Int.Equal]) is numeric and ignores redundant limbs.

# Conversions

The package provides methods for converting integers:

  - from native integers:
    [New], [NewFromInt], [NewFromInt8], [NewFromInt16], [NewFromInt32],
    [NewFromInt64], [NewFromUint], [NewFromUint8], [NewFromUint16],
    [NewFromUint32], [NewFromUint64].
  - to native integers:
    [Int.Int64], [Int.Int32], [Int.Int16], [Int.Int8],
    [Int.Uint64], [Int.Uint32], [Int.Uint16], [Int.Uint8].
  - from/to [big.Int]:
    [NewFromBigInt], [Int.BigInt].
  - from/to [uint256.Int]:
    [NewFromUint256], [Int.Uint256].

There is no parsing from strings.
[Int.String] and [Int.Format] render a fixed-width hexadecimal dump of
the limbs, which is meant for diagnostics.

# Errors

Operations never overflow, they grow the integer instead.
The only error is [ErrDivisionByZero], which is returned by [Int.Quo],
[Int.Rem], [Int.QuoRem], [Int.QuoAssign] and [Int.RemAssign].
The in-place methods leave the receiver unchanged when they fail.
[Int.MustQuo], [Int.MustRem] and [Int.MustQuoRem] panic instead.

[big.Int]: https://pkg.go.dev/math/big#Int
[uint256.Int]: https://pkg.go.dev/github.com/holiman/uint256#Int
*/
package bigint
