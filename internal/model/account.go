package model

import "time"

// Account represents a registered customer as stored in the `accounts`
// table. Accounts are immutable once created: the site offers no profile
// editing or deletion, only registration.
//
// The secret is stored and compared as plain text. That mirrors the site's
// original localStorage behavior and is a known, deliberate flaw: this
// service must never be treated as a secure credential store.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – display name used in greetings.
//  Identifier – unique login key (email or phone), stored lowercased.
//  Secret     – plain-text secret (see note above).
//  BirthDay   – day of birth, 1-31.
//  BirthMonth – month of birth, 1-12 (parsed from the Portuguese name).
//  BirthDate  – full birth-date string as entered, e.g. "14/Março/1990".
//  CreatedAt  – timestamp of registration.
type Account struct {
	ID         uint64    // accounts.id
	Name       string    // accounts.name
	Identifier string    // accounts.identifier
	Secret     string    // accounts.secret
	BirthDay   int       // accounts.birth_day
	BirthMonth int       // accounts.birth_month
	BirthDate  string    // accounts.birth_date
	CreatedAt  time.Time // accounts.created_at
}

// Birthday reports whether the account's birth day and month match the
// given date. Used for the personalized greeting on the account panel.
func (a Account) Birthday(today time.Time) bool {
	return a.BirthDay == today.Day() && a.BirthMonth == int(today.Month())
}
