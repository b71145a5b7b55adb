// Package models contains the persisted entities the application reads and
// writes through its repositories.
package models

type Account struct {
	UserID    int64
	Name      string
	FirstName string
	LastName  string
	SSN       string
	Password  string
}

// DeriveName builds the short display name stored in account.name:
// the first three characters of the first name followed by the first three
// characters of the last name, shorter parts used in full. It is computed
// once at creation and never kept in sync with later edits.
func DeriveName(firstName, lastName string) string {
	return prefix(firstName, 3) + prefix(lastName, 3)
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
