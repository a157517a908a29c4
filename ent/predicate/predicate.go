// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// BudgetPeriod is the predicate function for budgetperiod builders.
type BudgetPeriod func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Post is the predicate function for post builders.
type Post func(*sql.Selector)

// RateLimitBucket is the predicate function for ratelimitbucket builders.
type RateLimitBucket func(*sql.Selector)

// Reservation is the predicate function for reservation builders.
type Reservation func(*sql.Selector)

// TrustedMapping is the predicate function for trustedmapping builders.
type TrustedMapping func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
