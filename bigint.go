package bigint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"fortio.org/safecast"
	"github.com/holiman/uint256"
)

// Int type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
//
// An integer is stored in two's-complement form as a sequence of 64-bit
// limbs, least significant limb first.
// The sign of the integer is the top bit of its most significant limb,
// so negative values, bitwise operations and shifts behave exactly like
// those of a fixed-width integer that is as wide as needed.
// An integer grows by one limb whenever an operation would otherwise
// misrepresent the sign of the result.
//
// Limbs are never modified once they belong to an integer.
// Methods with pointer receivers replace the limbs of the receiver instead
// of writing into them, hence copying an Int with an assignment is
// equivalent to a deep copy.
// It is safe to use an Int from multiple goroutines as long as none of them
// calls a method with a pointer receiver.
type Int struct {
	v vec // limbs of the integer, nil is treated as a single zero limb
}

var (
	// ErrDivisionByZero is returned by [Int.Quo], [Int.Rem], [Int.QuoRem]
	// and their in-place counterparts when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")

	errDivisionByZero = ErrDivisionByZero
	errEmptyVector    = errors.New("empty limb vector")
)

// limbs returns the limbs of x, substituting a single zero limb for
// the zero value.
func (x Int) limbs() vec {
	if len(x.v) == 0 {
		return vecZero
	}
	return x.v
}

// Zero returns an integer with a value of 0.
func Zero() Int {
	return Int{v: vecZero}
}

// New returns an integer equal to i.
// It is a shorthand for [NewFromInt64].
func New(i int64) Int {
	return NewFromInt64(i)
}

// NewFromInt returns an integer equal to i.
func NewFromInt(i int) Int {
	return NewFromInt64(int64(i))
}

// NewFromInt8 returns an integer equal to i.
func NewFromInt8(i int8) Int {
	return NewFromInt64(int64(i))
}

// NewFromInt16 returns an integer equal to i.
func NewFromInt16(i int16) Int {
	return NewFromInt64(int64(i))
}

// NewFromInt32 returns an integer equal to i.
func NewFromInt32(i int32) Int {
	return NewFromInt64(int64(i))
}

// NewFromInt64 returns an integer equal to i.
// The result always has exactly one limb.
func NewFromInt64(i int64) Int {
	return Int{v: vec{uint64(i)}}
}

// NewFromUint returns an integer equal to u.
func NewFromUint(u uint) Int {
	return NewFromUint64(uint64(u))
}

// NewFromUint8 returns an integer equal to u.
func NewFromUint8(u uint8) Int {
	return NewFromUint64(uint64(u))
}

// NewFromUint16 returns an integer equal to u.
func NewFromUint16(u uint16) Int {
	return NewFromUint64(uint64(u))
}

// NewFromUint32 returns an integer equal to u.
func NewFromUint32(u uint32) Int {
	return NewFromUint64(uint64(u))
}

// NewFromUint64 returns an integer equal to u.
// If the top bit of u is set, the result gets a second zero limb,
// because otherwise that bit would be read as a sign.
func NewFromUint64(u uint64) Int {
	v := vec{u}
	if v.isNeg() {
		v = append(v, 0)
	}
	return Int{v: v}
}

// NewFromBigInt returns an integer equal to b.
// A nil b is treated as 0.
func NewFromBigInt(b *big.Int) Int {
	if b == nil {
		return Zero()
	}
	abs := new(big.Int).Abs(b)
	n := abs.BitLen()/wordBits + 1 // one more bit than needed for the sign
	buf := abs.FillBytes(make([]byte, n*8))
	v := make(vec, n)
	for i := range v {
		v[i] = binary.BigEndian.Uint64(buf[len(buf)-8*(i+1):])
	}
	if b.Sign() < 0 {
		v = v.neg()
	}
	return Int{v: v.norm()}
}

// NewFromUint256 returns an integer equal to u.
// A nil u is treated as 0.
func NewFromUint256(u *uint256.Int) Int {
	if u == nil {
		return Zero()
	}
	v := vec{u[0], u[1], u[2], u[3], 0}
	return Int{v: v.norm()}
}

// BigInt returns x as a [big.Int].
func (x Int) BigInt() *big.Int {
	v := x.limbs()
	neg := v.isNeg()
	if neg {
		v = v.neg()
	}
	buf := make([]byte, len(v)*8)
	for i, w := range v {
		binary.BigEndian.PutUint64(buf[len(buf)-8*(i+1):], w)
	}
	z := new(big.Int).SetBytes(buf)
	if neg {
		z.Neg(z)
	}
	return z
}

// Uint256 returns x as a [uint256.Int].
// If x is negative or does not fit into 256 bits, the boolean result
// is false.
func (x Int) Uint256() (*uint256.Int, bool) {
	v := x.limbs().norm()
	switch {
	case v.isNeg():
		return nil, false
	case len(v) > 5:
		return nil, false
	case len(v) == 5 && v[4] != 0:
		return nil, false
	}
	z := new(uint256.Int)
	copy(z[:], v)
	return z, true
}

// Int64 returns x as an int64.
// If x does not fit into an int64, the boolean result is false.
func (x Int) Int64() (int64, bool) {
	v := x.limbs().norm()
	if len(v) != 1 {
		return 0, false
	}
	return int64(v[0]), true
}

// Int32 returns x as an int32.
// If x does not fit into an int32, the boolean result is false.
func (x Int) Int32() (int32, bool) {
	return narrowInt[int32](x)
}

// Int16 returns x as an int16.
// If x does not fit into an int16, the boolean result is false.
func (x Int) Int16() (int16, bool) {
	return narrowInt[int16](x)
}

// Int8 returns x as an int8.
// If x does not fit into an int8, the boolean result is false.
func (x Int) Int8() (int8, bool) {
	return narrowInt[int8](x)
}

// Uint64 returns x as a uint64.
// If x is negative or does not fit into a uint64, the boolean result
// is false.
func (x Int) Uint64() (uint64, bool) {
	v := x.limbs().norm()
	switch {
	case v.isNeg():
		return 0, false
	case len(v) == 1:
		return v[0], true
	case len(v) == 2 && v[1] == 0:
		return v[0], true
	}
	return 0, false
}

// Uint32 returns x as a uint32.
// If x is negative or does not fit into a uint32, the boolean result
// is false.
func (x Int) Uint32() (uint32, bool) {
	return narrowUint[uint32](x)
}

// Uint16 returns x as a uint16.
// If x is negative or does not fit into a uint16, the boolean result
// is false.
func (x Int) Uint16() (uint16, bool) {
	return narrowUint[uint16](x)
}

// Uint8 returns x as a uint8.
// If x is negative or does not fit into a uint8, the boolean result
// is false.
func (x Int) Uint8() (uint8, bool) {
	return narrowUint[uint8](x)
}

func narrowInt[T int8 | int16 | int32](x Int) (T, bool) {
	i, ok := x.Int64()
	if !ok {
		return 0, false
	}
	t, err := safecast.Conv[T](i)
	if err != nil {
		return 0, false
	}
	return t, true
}

func narrowUint[T uint8 | uint16 | uint32](x Int) (T, bool) {
	u, ok := x.Uint64()
	if !ok {
		return 0, false
	}
	t, err := safecast.Conv[T](u)
	if err != nil {
		return 0, false
	}
	return t, true
}

// String implements the [fmt.Stringer] interface and returns
// a lossless hexadecimal dump of the two's-complement representation of x.
// Limbs are written most significant first, each as 16 lowercase digits,
// after a "0x" prefix:
//
//	New(1).String()  == "0x0000000000000001"
//	New(-1).String() == "0xffffffffffffffff"
//
// The dump reflects the current width of x, see [Int.BitWidth].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	v := x.limbs()
	buf := make([]byte, 0, 2+len(v)*hexDigits)
	buf = append(buf, "0x"...)
	buf = v.appendHex(buf, false)
	return string(buf)
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 0x00000000000000ff
//	%q:    "0x00000000000000ff"
//	%x:      00000000000000ff
//	%X:      00000000000000FF
//
// The '#' flag adds the "0x" or "0X" prefix to %x and %X.
// The '-' and '0' flags control padding up to the requested width.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	v := x.limbs()

	// Prefix
	prefix := ""
	switch {
	case verb == 'x' && state.Flag('#'):
		prefix = "0x"
	case verb == 'X' && state.Flag('#'):
		prefix = "0X"
	case verb != 'x' && verb != 'X':
		prefix = "0x"
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + len(prefix) + len(v)*hexDigits + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, prefix...)
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = v.appendHex(buf, verb == 'X')
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 's', 'v', 'x', 'X':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigint.Int="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Clone returns a copy of x backed by its own limbs.
func (x Int) Clone() Int {
	return Int{v: x.limbs().clone()}
}

// Compact returns x with the most significant limbs that only repeat
// the sign removed.
// The result is equal to x but may have a smaller [Int.BitWidth].
func (x Int) Compact() Int {
	return Int{v: x.limbs().norm()}
}

// Len returns the number of limbs of x.
func (x Int) Len() int {
	return len(x.limbs())
}

// BitWidth returns the current width of x in bits, which is the number
// of limbs times 64.
// It is not necessarily the minimal width needed to represent x.
func (x Int) BitWidth() int {
	return x.limbs().width()
}

// Bit returns the value of the i'th bit of the two's-complement
// representation of x.
// Bits beyond [Int.BitWidth] are equal to the sign bit, that is
// 1 for negative values and 0 otherwise.
func (x Int) Bit(i uint) uint {
	return x.limbs().bit(i)
}

// Words returns a copy of the limbs of x, least significant first.
func (x Int) Words() []uint64 {
	return x.limbs().clone()
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.IsNeg():
		return -1
	case x.IsZero():
		return 0
	}
	return 1
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.limbs().isNeg()
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return !x.IsNeg() && !x.IsZero()
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.limbs().isZero()
}

// AddAssign sets z to z + y and returns z.
func (z *Int) AddAssign(y Int) *Int {
	z.v = z.limbs().add(y.limbs())
	return z
}

// Add returns the sum x + y.
func (x Int) Add(y Int) Int {
	x.AddAssign(y)
	return x
}

// SubAssign sets z to z - y and returns z.
func (z *Int) SubAssign(y Int) *Int {
	z.v = z.limbs().sub(y.limbs())
	return z
}

// Sub returns the difference x - y.
func (x Int) Sub(y Int) Int {
	x.SubAssign(y)
	return x
}

// MulAssign sets z to z * y and returns z.
func (z *Int) MulAssign(y Int) *Int {
	z.v = z.limbs().mul(y.limbs())
	return z
}

// Mul returns the product x * y.
func (x Int) Mul(y Int) Int {
	x.MulAssign(y)
	return x
}

// QuoRem returns the quotient q and the remainder r of x and y such that
// x = q * y + r.
// The quotient is truncated towards zero, and the remainder has the sign
// of x, as for the built-in integer types.
//
// QuoRem returns an error if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	qv, rv, err := quoRem(x.limbs(), y.limbs())
	if err != nil {
		return Int{}, Int{}, fmt.Errorf("computing [%v / %v]: %w", x, y, err)
	}
	return Int{v: qv}, Int{v: rv}, nil
}

// Quo returns the quotient x / y truncated towards zero.
//
// Quo returns an error if y is 0.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder x % y, which has the sign of x.
//
// Rem returns an error if y is 0.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// QuoAssign sets z to z / y truncated towards zero.
// If y is 0, z is left unchanged and an error is returned.
func (z *Int) QuoAssign(y Int) error {
	q, err := z.Quo(y)
	if err != nil {
		return err
	}
	*z = q
	return nil
}

// RemAssign sets z to z % y.
// If y is 0, z is left unchanged and an error is returned.
func (z *Int) RemAssign(y Int) error {
	r, err := z.Rem(y)
	if err != nil {
		return err
	}
	*z = r
	return nil
}

// NegAssign sets z to -z and returns z.
func (z *Int) NegAssign() *Int {
	z.v = z.limbs().neg()
	return z
}

// Neg returns x with the opposite sign.
func (x Int) Neg() Int {
	x.NegAssign()
	return x
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	if x.IsNeg() {
		return x.Neg()
	}
	return x
}

// Inc sets z to z + 1 and returns z.
func (z *Int) Inc() *Int {
	z.v = z.limbs().add(vecOne)
	return z
}

// Dec sets z to z - 1 and returns z.
func (z *Int) Dec() *Int {
	z.v = z.limbs().sub(vecOne)
	return z
}

// PostInc sets z to z + 1 and returns the previous value of z.
func (z *Int) PostInc() Int {
	x := *z
	z.Inc()
	return x
}

// PostDec sets z to z - 1 and returns the previous value of z.
func (z *Int) PostDec() Int {
	x := *z
	z.Dec()
	return x
}

// LshAssign sets z to z << n and returns z.
func (z *Int) LshAssign(n uint) *Int {
	z.v = z.limbs().lsh(n)
	return z
}

// Lsh returns x << n, which is x * 2^n.
func (x Int) Lsh(n uint) Int {
	x.LshAssign(n)
	return x
}

// RshAssign sets z to z >> n and returns z.
func (z *Int) RshAssign(n uint) *Int {
	z.v = z.limbs().rsh(n)
	return z
}

// Rsh returns x >> n.
// The shift is arithmetic: the sign is preserved and the result is
// rounded towards negative infinity.
func (x Int) Rsh(n uint) Int {
	x.RshAssign(n)
	return x
}

// AndAssign sets z to z & y and returns z.
func (z *Int) AndAssign(y Int) *Int {
	z.v = z.limbs().and(y.limbs())
	return z
}

// And returns the bitwise conjunction x & y.
func (x Int) And(y Int) Int {
	x.AndAssign(y)
	return x
}

// OrAssign sets z to z | y and returns z.
func (z *Int) OrAssign(y Int) *Int {
	z.v = z.limbs().or(y.limbs())
	return z
}

// Or returns the bitwise disjunction x | y.
func (x Int) Or(y Int) Int {
	x.OrAssign(y)
	return x
}

// XorAssign sets z to z ^ y and returns z.
func (z *Int) XorAssign(y Int) *Int {
	z.v = z.limbs().xor(y.limbs())
	return z
}

// Xor returns the bitwise exclusive disjunction x ^ y.
func (x Int) Xor(y Int) Int {
	x.XorAssign(y)
	return x
}

// NotAssign sets z to ^z and returns z.
func (z *Int) NotAssign() *Int {
	z.v = z.limbs().not()
	return z
}

// Not returns the ones' complement ^x, which is -x - 1.
func (x Int) Not() Int {
	x.NotAssign()
	return x
}

// Equal returns true if x and y have the same numeric value,
// regardless of their widths.
func (x Int) Equal(y Int) bool {
	return x.limbs().eq(y.limbs())
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	return x.limbs().cmp(y.limbs())
}

// Max returns the larger of x and y.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns the smaller of x and y.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
