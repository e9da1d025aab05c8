package bigint

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genInt generates integers of up to 4 limbs with arbitrary bit patterns,
// including ones with redundant sign limbs.
func genInt() gopter.Gen {
	return gen.SliceOf(gen.UInt64()).Map(func(ws []uint64) Int {
		if len(ws) == 0 {
			return Zero()
		}
		return Int{v: vec(ws)}
	})
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 4
	return gopter.NewProperties(parameters)
}

func TestInt_NativeProperties(t *testing.T) {
	properties := newProperties()
	small := gen.Int64Range(math.MinInt32, math.MaxInt32)

	properties.Property("Add matches int64", prop.ForAll(
		func(a, b int64) bool {
			return New(a).Add(New(b)).Equal(New(a + b))
		},
		small, small,
	))

	properties.Property("Sub matches int64", prop.ForAll(
		func(a, b int64) bool {
			return New(a).Sub(New(b)).Equal(New(a - b))
		},
		small, small,
	))

	properties.Property("Mul matches int64", prop.ForAll(
		func(a, b int64) bool {
			return New(a).Mul(New(b)).Equal(New(a * b))
		},
		small, small,
	))

	properties.Property("QuoRem matches int64", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				return true
			}
			q, r, err := New(a).QuoRem(New(b))
			return err == nil && q.Equal(New(a/b)) && r.Equal(New(a%b))
		},
		small, small,
	))

	properties.Property("bitwise operations match int64", prop.ForAll(
		func(a, b int64) bool {
			x, y := New(a), New(b)
			return x.And(y).Equal(New(a&b)) &&
				x.Or(y).Equal(New(a|b)) &&
				x.Xor(y).Equal(New(a^b)) &&
				x.Not().Equal(New(^a))
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("Rsh matches int64", prop.ForAll(
		func(a int64, n uint) bool {
			return New(a).Rsh(n).Equal(New(a >> n))
		},
		gen.Int64(), gen.UIntRange(0, 100),
	))

	properties.TestingRun(t)
}

func TestInt_AlgebraicProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("x.Neg().Neg() == x", prop.ForAll(
		func(x Int) bool {
			return x.Neg().Neg().Equal(x)
		},
		genInt(),
	))

	properties.Property("x - x == 0", prop.ForAll(
		func(x Int) bool {
			return x.Sub(x).IsZero()
		},
		genInt(),
	))

	properties.Property("x + y == y + x", prop.ForAll(
		func(x, y Int) bool {
			return x.Add(y).Equal(y.Add(x))
		},
		genInt(), genInt(),
	))

	properties.Property("x + y - y == x", prop.ForAll(
		func(x, y Int) bool {
			return x.Add(y).Sub(y).Equal(x)
		},
		genInt(), genInt(),
	))

	properties.Property("x * y == y * x", prop.ForAll(
		func(x, y Int) bool {
			return x.Mul(y).Equal(y.Mul(x))
		},
		genInt(), genInt(),
	))

	properties.Property("bitwise identities", prop.ForAll(
		func(x Int) bool {
			return x.Xor(x).IsZero() &&
				x.And(Zero()).IsZero() &&
				x.Or(New(-1)).Equal(New(-1)) &&
				x.And(New(-1)).Equal(x) &&
				x.Not().Not().Equal(x) &&
				x.Not().Equal(x.Neg().Sub(New(1)))
		},
		genInt(),
	))

	properties.Property("(x << n) >> n == x", prop.ForAll(
		func(x Int, n uint) bool {
			return x.Lsh(n).Rsh(n).Equal(x)
		},
		genInt(), gen.UIntRange(0, 300),
	))

	properties.Property("x << n == x * 2^n", prop.ForAll(
		func(x Int, n uint) bool {
			return x.Lsh(n).Equal(x.Mul(New(1).Lsh(n)))
		},
		genInt(), gen.UIntRange(0, 200),
	))

	properties.Property("x >> n is the sign beyond the width", prop.ForAll(
		func(x Int) bool {
			got := x.Rsh(uint(x.BitWidth()))
			if x.IsNeg() {
				return got.Equal(New(-1))
			}
			return got.IsZero()
		},
		genInt(),
	))

	properties.Property("x == q * y + r", prop.ForAll(
		func(x, y Int) bool {
			if y.IsZero() {
				_, _, err := x.QuoRem(y)
				return err != nil
			}
			q, r, err := x.QuoRem(y)
			if err != nil {
				return false
			}
			if !q.Mul(y).Add(r).Equal(x) {
				return false
			}
			if r.Abs().Cmp(y.Abs()) >= 0 {
				return false
			}
			return r.IsZero() || r.Sign() == x.Sign()
		},
		genInt(), genInt(),
	))

	properties.Property("Cmp is antisymmetric and agrees with Equal", prop.ForAll(
		func(x, y Int) bool {
			c := x.Cmp(y)
			return c == -y.Cmp(x) && (c == 0) == x.Equal(y) && x.Cmp(x) == 0
		},
		genInt(), genInt(),
	))

	properties.Property("Compact preserves the value", prop.ForAll(
		func(x Int) bool {
			c := x.Compact()
			return c.Equal(x) && c.Len() <= x.Len() && c.Compact().Len() == c.Len()
		},
		genInt(),
	))

	properties.TestingRun(t)
}

func TestInt_BigIntProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("BigInt round trip", prop.ForAll(
		func(x Int) bool {
			return NewFromBigInt(x.BigInt()).Equal(x)
		},
		genInt(),
	))

	properties.Property("Add and Mul match big.Int", prop.ForAll(
		func(x, y Int) bool {
			bx, by := x.BigInt(), y.BigInt()
			sum := new(big.Int).Add(bx, by)
			prod := new(big.Int).Mul(bx, by)
			return x.Add(y).BigInt().Cmp(sum) == 0 && x.Mul(y).BigInt().Cmp(prod) == 0
		},
		genInt(), genInt(),
	))

	properties.Property("Cmp matches big.Int", prop.ForAll(
		func(x, y Int) bool {
			return x.Cmp(y) == x.BigInt().Cmp(y.BigInt())
		},
		genInt(), genInt(),
	))

	properties.Property("Uint256 round trip", prop.ForAll(
		func(x Int) bool {
			u, ok := x.Uint256()
			if !ok {
				return x.IsNeg() || x.BigInt().BitLen() > 256
			}
			return NewFromUint256(u).Equal(x)
		},
		genInt(),
	))

	properties.TestingRun(t)
}
