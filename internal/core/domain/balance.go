package domain

import "github.com/shopspring/decimal"

// Side identifies which column of the ledger an amount sits on.
type Side string

const (
	SideDebit  Side = "Dr"
	SideCredit Side = "Cr"
)

// Valid reports whether s is one of the two ledger sides.
func (s Side) Valid() bool {
	return s == SideDebit || s == SideCredit
}

// Opposite returns the other ledger side.
func (s Side) Opposite() Side {
	if s == SideDebit {
		return SideCredit
	}
	return SideDebit
}

// Balance is an account balance stored as a non-negative magnitude plus the
// side that carries its meaning. A zero balance is canonically Dr 0.
//
// All balance arithmetic in the engine goes through the signed representation
// (debit positive, credit negative) so the sign-flip rule is applied
// identically in posting, ledger replay and statement generation.
type Balance struct {
	Amount decimal.Decimal `json:"amount"`
	Side   Side            `json:"side"`
}

// NewBalance builds a balance from a non-negative magnitude and a side.
func NewBalance(amount decimal.Decimal, side Side) Balance {
	return BalanceFromSigned(signedAmount(amount, side))
}

// ZeroBalance returns the canonical zero balance.
func ZeroBalance() Balance {
	return Balance{Amount: decimal.Zero, Side: SideDebit}
}

// BalanceFromSigned renormalizes a signed quantity to magnitude plus side.
// Negative quantities land on the credit side; magnitudes are never negative.
func BalanceFromSigned(signed decimal.Decimal) Balance {
	if signed.IsNegative() {
		return Balance{Amount: signed.Neg(), Side: SideCredit}
	}
	return Balance{Amount: signed, Side: SideDebit}
}

// Signed converts the balance to the engine-wide signed convention:
// debit positive, credit negative.
func (b Balance) Signed() decimal.Decimal {
	return signedAmount(b.Amount, b.side())
}

// Apply posts a debit and a credit amount against the balance and returns the
// renormalized result. Crossing zero flips the side; the magnitude stays
// non-negative (Dr 500 receiving a 700 credit becomes Cr 200, not Dr -200).
func (b Balance) Apply(debit, credit decimal.Decimal) Balance {
	return BalanceFromSigned(b.Signed().Add(debit).Sub(credit))
}

// Equal reports whether two balances represent the same quantity.
func (b Balance) Equal(other Balance) bool {
	return b.Signed().Equal(other.Signed())
}

// IsZero reports whether the balance is zero on either side.
func (b Balance) IsZero() bool {
	return b.Amount.IsZero()
}

func (b Balance) String() string {
	return b.Amount.StringFixed(2) + " " + string(b.side())
}

// side tolerates the zero value of Balance, whose Side field is empty.
func (b Balance) side() Side {
	if b.Side == SideCredit {
		return SideCredit
	}
	return SideDebit
}

func signedAmount(amount decimal.Decimal, side Side) decimal.Decimal {
	if side == SideCredit {
		return amount.Neg()
	}
	return amount
}
