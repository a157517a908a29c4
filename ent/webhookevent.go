// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/postflow-io/postflow/ent/webhookevent"
)

// WebhookEvent is the model entity for the WebhookEvent schema.
type WebhookEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Provider-assigned delivery id
	EventID string `json:"event_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// Exact raw body bytes as received — re-serialization breaks the signature
	Payload []byte `json:"payload,omitempty"`
	// Signature holds the value of the "signature" field.
	Signature string `json:"signature,omitempty"`
	// SignatureVerified holds the value of the "signature_verified" field.
	SignatureVerified bool `json:"signature_verified,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus webhookevent.ProcessingStatus `json:"processing_status,omitempty"`
	// Reconciler routing attempts for unroutable events
	AttemptCount int `json:"attempt_count,omitempty"`
	// Set once routed via trusted mapping
	PostID *string `json:"post_id,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhookevent.FieldPayload:
			values[i] = new([]byte)
		case webhookevent.FieldSignatureVerified:
			values[i] = new(sql.NullBool)
		case webhookevent.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case webhookevent.FieldID, webhookevent.FieldProvider, webhookevent.FieldEventID, webhookevent.FieldEventType, webhookevent.FieldSignature, webhookevent.FieldProcessingStatus, webhookevent.FieldPostID:
			values[i] = new(sql.NullString)
		case webhookevent.FieldReceivedAt, webhookevent.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookEvent fields.
func (_m *WebhookEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhookevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case webhookevent.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case webhookevent.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case webhookevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case webhookevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case webhookevent.FieldSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature", values[i])
			} else if value.Valid {
				_m.Signature = value.String
			}
		case webhookevent.FieldSignatureVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field signature_verified", values[i])
			} else if value.Valid {
				_m.SignatureVerified = value.Bool
			}
		case webhookevent.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = webhookevent.ProcessingStatus(value.String)
			}
		case webhookevent.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case webhookevent.FieldPostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_id", values[i])
			} else if value.Valid {
				_m.PostID = new(string)
				*_m.PostID = value.String
			}
		case webhookevent.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case webhookevent.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookEvent.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WebhookEvent.
// Note that you need to call WebhookEvent.Unwrap() before calling this method if this WebhookEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookEvent) Update() *WebhookEventUpdateOne {
	return NewWebhookEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookEvent) Unwrap() *WebhookEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookEvent) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("signature=")
	builder.WriteString(_m.Signature)
	builder.WriteString(", ")
	builder.WriteString("signature_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignatureVerified))
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingStatus))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	if v := _m.PostID; v != nil {
		builder.WriteString("post_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// WebhookEvents is a parsable slice of WebhookEvent.
type WebhookEvents []*WebhookEvent
