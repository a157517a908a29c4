// Code generated by ent, DO NOT EDIT.

package webhookevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the webhookevent type in the database.
	Label = "webhook_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "webhook_event_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldSignature holds the string denoting the signature field in the database.
	FieldSignature = "signature"
	// FieldSignatureVerified holds the string denoting the signature_verified field in the database.
	FieldSignatureVerified = "signature_verified"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldPostID holds the string denoting the post_id field in the database.
	FieldPostID = "post_id"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// Table holds the table name of the webhookevent in the database.
	Table = "webhook_events"
)

// Columns holds all SQL columns for webhookevent fields.
var Columns = []string{
	FieldID,
	FieldProvider,
	FieldEventID,
	FieldEventType,
	FieldPayload,
	FieldSignature,
	FieldSignatureVerified,
	FieldProcessingStatus,
	FieldAttemptCount,
	FieldPostID,
	FieldReceivedAt,
	FieldProcessedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
)

// ProcessingStatus defines the type for the "processing_status" enum field.
type ProcessingStatus string

// ProcessingStatusReceived is the default value of the ProcessingStatus enum.
const DefaultProcessingStatus = ProcessingStatusReceived

// ProcessingStatus values.
const (
	ProcessingStatusReceived   ProcessingStatus = "received"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
	ProcessingStatusUnroutable ProcessingStatus = "unroutable"
	ProcessingStatusDlq        ProcessingStatus = "dlq"
)

func (ps ProcessingStatus) String() string {
	return string(ps)
}

// ProcessingStatusValidator is a validator for the "processing_status" field enum values. It is called by the builders before save.
func ProcessingStatusValidator(ps ProcessingStatus) error {
	switch ps {
	case ProcessingStatusReceived, ProcessingStatusProcessing, ProcessingStatusCompleted, ProcessingStatusUnroutable, ProcessingStatusDlq:
		return nil
	default:
		return fmt.Errorf("webhookevent: invalid enum value for processing_status field: %q", ps)
	}
}

// OrderOption defines the ordering options for the WebhookEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// BySignature orders the results by the signature field.
func BySignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignature, opts...).ToFunc()
}

// BySignatureVerified orders the results by the signature_verified field.
func BySignatureVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureVerified, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByPostID orders the results by the post_id field.
func ByPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostID, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}
