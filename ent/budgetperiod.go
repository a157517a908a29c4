// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/budgetperiod"
)

// BudgetPeriod is the model entity for the BudgetPeriod schema.
type BudgetPeriod struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatorID holds the value of the "creator_id" field.
	CreatorID string `json:"creator_id,omitempty"`
	// UTC calendar month, YYYY-MM
	Month string `json:"month,omitempty"`
	// LimitUsd holds the value of the "limit_usd" field.
	LimitUsd float64 `json:"limit_usd,omitempty"`
	// SoftPct holds the value of the "soft_pct" field.
	SoftPct float64 `json:"soft_pct,omitempty"`
	// SpentUsd holds the value of the "spent_usd" field.
	SpentUsd float64 `json:"spent_usd,omitempty"`
	// Sum of held reservations; denormalized for the reserve check
	ReservedUsd float64 `json:"reserved_usd,omitempty"`
	// HardStop holds the value of the "hard_stop" field.
	HardStop bool `json:"hard_stop,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BudgetPeriod) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case budgetperiod.FieldHardStop:
			values[i] = new(sql.NullBool)
		case budgetperiod.FieldLimitUsd, budgetperiod.FieldSoftPct, budgetperiod.FieldSpentUsd, budgetperiod.FieldReservedUsd:
			values[i] = new(sql.NullFloat64)
		case budgetperiod.FieldID, budgetperiod.FieldCreatorID, budgetperiod.FieldMonth:
			values[i] = new(sql.NullString)
		case budgetperiod.FieldCreatedAt, budgetperiod.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BudgetPeriod fields.
func (_m *BudgetPeriod) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case budgetperiod.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case budgetperiod.FieldCreatorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_id", values[i])
			} else if value.Valid {
				_m.CreatorID = value.String
			}
		case budgetperiod.FieldMonth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				_m.Month = value.String
			}
		case budgetperiod.FieldLimitUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field limit_usd", values[i])
			} else if value.Valid {
				_m.LimitUsd = value.Float64
			}
		case budgetperiod.FieldSoftPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field soft_pct", values[i])
			} else if value.Valid {
				_m.SoftPct = value.Float64
			}
		case budgetperiod.FieldSpentUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field spent_usd", values[i])
			} else if value.Valid {
				_m.SpentUsd = value.Float64
			}
		case budgetperiod.FieldReservedUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reserved_usd", values[i])
			} else if value.Valid {
				_m.ReservedUsd = value.Float64
			}
		case budgetperiod.FieldHardStop:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hard_stop", values[i])
			} else if value.Valid {
				_m.HardStop = value.Bool
			}
		case budgetperiod.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case budgetperiod.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BudgetPeriod.
// This includes values selected through modifiers, order, etc.
func (_m *BudgetPeriod) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BudgetPeriod.
// Note that you need to call BudgetPeriod.Unwrap() before calling this method if this BudgetPeriod
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BudgetPeriod) Update() *BudgetPeriodUpdateOne {
	return NewBudgetPeriodClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BudgetPeriod entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BudgetPeriod) Unwrap() *BudgetPeriod {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BudgetPeriod is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BudgetPeriod) String() string {
	var builder strings.Builder
	builder.WriteString("BudgetPeriod(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("creator_id=")
	builder.WriteString(_m.CreatorID)
	builder.WriteString(", ")
	builder.WriteString("month=")
	builder.WriteString(_m.Month)
	builder.WriteString(", ")
	builder.WriteString("limit_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.LimitUsd))
	builder.WriteString(", ")
	builder.WriteString("soft_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.SoftPct))
	builder.WriteString(", ")
	builder.WriteString("spent_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpentUsd))
	builder.WriteString(", ")
	builder.WriteString("reserved_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReservedUsd))
	builder.WriteString(", ")
	builder.WriteString("hard_stop=")
	builder.WriteString(fmt.Sprintf("%v", _m.HardStop))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BudgetPeriods is a parsable slice of BudgetPeriod.
type BudgetPeriods []*BudgetPeriod
