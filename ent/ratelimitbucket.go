// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/ratelimitbucket"
)

// RateLimitBucket is the model entity for the RateLimitBucket schema.
type RateLimitBucket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Endpoint holds the value of the "endpoint" field.
	Endpoint string `json:"endpoint,omitempty"`
	// Tokens holds the value of the "tokens" field.
	Tokens float64 `json:"tokens,omitempty"`
	// Capacity holds the value of the "capacity" field.
	Capacity float64 `json:"capacity,omitempty"`
	// Tokens per second
	RefillRate float64 `json:"refill_rate,omitempty"`
	// LastRefillAt holds the value of the "last_refill_at" field.
	LastRefillAt time.Time `json:"last_refill_at,omitempty"`
	// CooldownUntil holds the value of the "cooldown_until" field.
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
	// ConsecutiveFailures holds the value of the "consecutive_failures" field.
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// BreakerState holds the value of the "breaker_state" field.
	BreakerState ratelimitbucket.BreakerState `json:"breaker_state,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RateLimitBucket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ratelimitbucket.FieldTokens, ratelimitbucket.FieldCapacity, ratelimitbucket.FieldRefillRate:
			values[i] = new(sql.NullFloat64)
		case ratelimitbucket.FieldConsecutiveFailures:
			values[i] = new(sql.NullInt64)
		case ratelimitbucket.FieldID, ratelimitbucket.FieldAccountID, ratelimitbucket.FieldEndpoint, ratelimitbucket.FieldBreakerState:
			values[i] = new(sql.NullString)
		case ratelimitbucket.FieldLastRefillAt, ratelimitbucket.FieldCooldownUntil, ratelimitbucket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RateLimitBucket fields.
func (_m *RateLimitBucket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ratelimitbucket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ratelimitbucket.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case ratelimitbucket.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case ratelimitbucket.FieldTokens:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens", values[i])
			} else if value.Valid {
				_m.Tokens = value.Float64
			}
		case ratelimitbucket.FieldCapacity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field capacity", values[i])
			} else if value.Valid {
				_m.Capacity = value.Float64
			}
		case ratelimitbucket.FieldRefillRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field refill_rate", values[i])
			} else if value.Valid {
				_m.RefillRate = value.Float64
			}
		case ratelimitbucket.FieldLastRefillAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_refill_at", values[i])
			} else if value.Valid {
				_m.LastRefillAt = value.Time
			}
		case ratelimitbucket.FieldCooldownUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_until", values[i])
			} else if value.Valid {
				_m.CooldownUntil = new(time.Time)
				*_m.CooldownUntil = value.Time
			}
		case ratelimitbucket.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveFailures = int(value.Int64)
			}
		case ratelimitbucket.FieldBreakerState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field breaker_state", values[i])
			} else if value.Valid {
				_m.BreakerState = ratelimitbucket.BreakerState(value.String)
			}
		case ratelimitbucket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RateLimitBucket.
// This includes values selected through modifiers, order, etc.
func (_m *RateLimitBucket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RateLimitBucket.
// Note that you need to call RateLimitBucket.Unwrap() before calling this method if this RateLimitBucket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RateLimitBucket) Update() *RateLimitBucketUpdateOne {
	return NewRateLimitBucketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RateLimitBucket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RateLimitBucket) Unwrap() *RateLimitBucket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RateLimitBucket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RateLimitBucket) String() string {
	var builder strings.Builder
	builder.WriteString("RateLimitBucket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tokens))
	builder.WriteString(", ")
	builder.WriteString("capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Capacity))
	builder.WriteString(", ")
	builder.WriteString("refill_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.RefillRate))
	builder.WriteString(", ")
	builder.WriteString("last_refill_at=")
	builder.WriteString(_m.LastRefillAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CooldownUntil; v != nil {
		builder.WriteString("cooldown_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveFailures))
	builder.WriteString(", ")
	builder.WriteString("breaker_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.BreakerState))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RateLimitBuckets is a parsable slice of RateLimitBucket.
type RateLimitBuckets []*RateLimitBucket
