package types

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-types/big"

	"github.com/filecoin-project/lotus-escrow/build"
)

var (
	denomRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)
	coinRegex  = regexp.MustCompile(`^([0-9]+)\s*([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)
)

// Coin is a quantity of a single denomination.
type Coin struct {
	Denom  string
	Amount BigInt
}

func NewCoin(denom string, amount uint64) Coin {
	return Coin{Denom: denom, Amount: NewInt(amount)}
}

func ValidateDenom(denom string) error {
	if len(denom) > build.MaxDenomLength || !denomRegex.MatchString(denom) {
		return xerrors.Errorf("invalid denom: %q", denom)
	}
	return nil
}

// ParseCoin parses strings like "100token".
func ParseCoin(s string) (Coin, error) {
	m := coinRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Coin{}, xerrors.Errorf("invalid coin expression: %q", s)
	}

	amt, err := BigFromString(m[1])
	if err != nil {
		return Coin{}, xerrors.Errorf("parsing coin amount %q: %w", m[1], err)
	}

	return Coin{Denom: m[2], Amount: amt}, nil
}

func (c Coin) Validate() error {
	if err := ValidateDenom(c.Denom); err != nil {
		return err
	}
	if c.Amount.Nil() {
		return xerrors.Errorf("coin %s has no amount", c.Denom)
	}
	if c.Amount.Sign() < 0 {
		return xerrors.Errorf("negative coin amount: %s", c.Amount)
	}
	return nil
}

func (c Coin) IsPositive() bool {
	return !c.Amount.Nil() && c.Amount.Sign() > 0
}

func (c Coin) Equals(o Coin) bool {
	return c.Denom == o.Denom && big.Cmp(c.Amount, o.Amount) == 0
}

func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount, c.Denom)
}

// Coins is a list of coins. Values returned by NewCoins and the arithmetic
// helpers are sorted by denom, hold one entry per denom and no zero entries.
type Coins []Coin

func NewCoins(coins ...Coin) Coins {
	return Coins(coins).normalize()
}

// ParseCoins parses a comma separated list of coins, e.g. "100token,5stake".
func ParseCoins(s string) (Coins, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Coins{}, nil
	}

	var out Coins
	for _, part := range strings.Split(s, ",") {
		c, err := ParseCoin(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out.normalize(), nil
}

func (cs Coins) normalize() Coins {
	sums := map[string]BigInt{}
	for _, c := range cs {
		if c.Amount.Nil() {
			continue
		}
		if cur, ok := sums[c.Denom]; ok {
			sums[c.Denom] = big.Add(cur, c.Amount)
		} else {
			sums[c.Denom] = c.Amount
		}
	}

	denoms := lo.Keys(sums)
	sort.Strings(denoms)

	out := make(Coins, 0, len(denoms))
	for _, d := range denoms {
		v := sums[d]
		if v.IsZero() {
			continue
		}
		out = append(out, Coin{Denom: d, Amount: v})
	}
	return out
}

func (cs Coins) Validate() error {
	for _, c := range cs {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AmountOf returns the total quantity of denom held in the list.
func (cs Coins) AmountOf(denom string) BigInt {
	total := big.Zero()
	for _, c := range cs {
		if c.Denom == denom && !c.Amount.Nil() {
			total = big.Add(total, c.Amount)
		}
	}
	return total
}

func (cs Coins) IsZero() bool {
	return lo.EveryBy(cs, func(c Coin) bool {
		return c.Amount.Nil() || c.Amount.IsZero()
	})
}

func (cs Coins) Add(o ...Coin) Coins {
	all := make(Coins, 0, len(cs)+len(o))
	all = append(all, cs...)
	all = append(all, o...)
	return all.normalize()
}

// SafeSub subtracts o from cs. The second return value is false when any
// denomination would go negative, in which case cs is returned unchanged.
func (cs Coins) SafeSub(o Coins) (Coins, bool) {
	res := cs.normalize()
	for _, c := range o.normalize() {
		have := res.AmountOf(c.Denom)
		if have.LessThan(c.Amount) {
			return cs, false
		}
		res = append(res, Coin{Denom: c.Denom, Amount: c.Amount.Neg()})
		res = res.normalize()
	}
	return res, true
}

// IsAllGTE reports whether cs holds at least o of every denomination in o.
func (cs Coins) IsAllGTE(o Coins) bool {
	_, ok := cs.SafeSub(o)
	return ok
}

func (cs Coins) String() string {
	if len(cs) == 0 {
		return "0"
	}
	return strings.Join(lo.Map(cs, func(c Coin, _ int) string {
		return c.String()
	}), ",")
}
