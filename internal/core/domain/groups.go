package domain

// accountTypesByGroup is the fixed dictionary of allowed account types per
// group. An account's type must be a member of its group's list.
var accountTypesByGroup = map[AccountGroup][]string{
	GroupAssets: {
		"Bank Account",
		"Cash-in-Hand",
		"Sundry Debtors",
		"Fixed Assets",
		"Investments",
		"Deposits",
		"Loans & Advances",
	},
	GroupLiabilities: {
		"Sundry Creditors",
		"Duties & Taxes",
		"Secured Loans",
		"Unsecured Loans",
		"Provisions",
		"Bank OD",
	},
	GroupIncome: {
		"Direct Income",
		"Indirect Income",
		"Sales Account",
	},
	GroupExpenses: {
		"Direct Expenses",
		"Indirect Expenses",
		"Purchase Account",
		"Salary & Wages",
	},
	GroupCapital: {
		"Capital Account",
		"Reserves & Surplus",
		"Drawings",
	},
}

// AccountTypesFor returns the allowed types for a group. The returned slice is
// a copy; callers may not mutate the dictionary.
func AccountTypesFor(group AccountGroup) []string {
	types := accountTypesByGroup[group]
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// ValidAccountType reports whether accountType belongs to group's type list.
func ValidAccountType(group AccountGroup, accountType string) bool {
	for _, t := range accountTypesByGroup[group] {
		if t == accountType {
			return true
		}
	}
	return false
}
