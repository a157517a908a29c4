// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/postflow-io/postflow/ent/account"
	"github.com/postflow-io/postflow/ent/budgetperiod"
	"github.com/postflow-io/postflow/ent/event"
	"github.com/postflow-io/postflow/ent/post"
	"github.com/postflow-io/postflow/ent/ratelimitbucket"
	"github.com/postflow-io/postflow/ent/reservation"
	"github.com/postflow-io/postflow/ent/schema"
	"github.com/postflow-io/postflow/ent/trustedmapping"
	"github.com/postflow-io/postflow/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescPriority is the schema descriptor for priority field.
	accountDescPriority := accountFields[9].Descriptor()
	// account.DefaultPriority holds the default value on creation for the priority field.
	account.DefaultPriority = accountDescPriority.Default.(int)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[11].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[12].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	budgetperiodFields := schema.BudgetPeriod{}.Fields()
	_ = budgetperiodFields
	// budgetperiodDescSoftPct is the schema descriptor for soft_pct field.
	budgetperiodDescSoftPct := budgetperiodFields[4].Descriptor()
	// budgetperiod.DefaultSoftPct holds the default value on creation for the soft_pct field.
	budgetperiod.DefaultSoftPct = budgetperiodDescSoftPct.Default.(float64)
	// budgetperiodDescSpentUsd is the schema descriptor for spent_usd field.
	budgetperiodDescSpentUsd := budgetperiodFields[5].Descriptor()
	// budgetperiod.DefaultSpentUsd holds the default value on creation for the spent_usd field.
	budgetperiod.DefaultSpentUsd = budgetperiodDescSpentUsd.Default.(float64)
	// budgetperiodDescReservedUsd is the schema descriptor for reserved_usd field.
	budgetperiodDescReservedUsd := budgetperiodFields[6].Descriptor()
	// budgetperiod.DefaultReservedUsd holds the default value on creation for the reserved_usd field.
	budgetperiod.DefaultReservedUsd = budgetperiodDescReservedUsd.Default.(float64)
	// budgetperiodDescHardStop is the schema descriptor for hard_stop field.
	budgetperiodDescHardStop := budgetperiodFields[7].Descriptor()
	// budgetperiod.DefaultHardStop holds the default value on creation for the hard_stop field.
	budgetperiod.DefaultHardStop = budgetperiodDescHardStop.Default.(bool)
	// budgetperiodDescCreatedAt is the schema descriptor for created_at field.
	budgetperiodDescCreatedAt := budgetperiodFields[8].Descriptor()
	// budgetperiod.DefaultCreatedAt holds the default value on creation for the created_at field.
	budgetperiod.DefaultCreatedAt = budgetperiodDescCreatedAt.Default.(func() time.Time)
	// budgetperiodDescUpdatedAt is the schema descriptor for updated_at field.
	budgetperiodDescUpdatedAt := budgetperiodFields[9].Descriptor()
	// budgetperiod.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	budgetperiod.DefaultUpdatedAt = budgetperiodDescUpdatedAt.Default.(func() time.Time)
	// budgetperiod.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	budgetperiod.UpdateDefaultUpdatedAt = budgetperiodDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	postFields := schema.Post{}.Fields()
	_ = postFields
	// postDescAttemptCount is the schema descriptor for attempt_count field.
	postDescAttemptCount := postFields[10].Descriptor()
	// post.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	post.DefaultAttemptCount = postDescAttemptCount.Default.(int)
	// postDescCreatedAt is the schema descriptor for created_at field.
	postDescCreatedAt := postFields[19].Descriptor()
	// post.DefaultCreatedAt holds the default value on creation for the created_at field.
	post.DefaultCreatedAt = postDescCreatedAt.Default.(func() time.Time)
	// postDescUpdatedAt is the schema descriptor for updated_at field.
	postDescUpdatedAt := postFields[20].Descriptor()
	// post.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	post.DefaultUpdatedAt = postDescUpdatedAt.Default.(func() time.Time)
	// post.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	post.UpdateDefaultUpdatedAt = postDescUpdatedAt.UpdateDefault.(func() time.Time)
	ratelimitbucketFields := schema.RateLimitBucket{}.Fields()
	_ = ratelimitbucketFields
	// ratelimitbucketDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	ratelimitbucketDescConsecutiveFailures := ratelimitbucketFields[8].Descriptor()
	// ratelimitbucket.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	ratelimitbucket.DefaultConsecutiveFailures = ratelimitbucketDescConsecutiveFailures.Default.(int)
	// ratelimitbucketDescUpdatedAt is the schema descriptor for updated_at field.
	ratelimitbucketDescUpdatedAt := ratelimitbucketFields[10].Descriptor()
	// ratelimitbucket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ratelimitbucket.DefaultUpdatedAt = ratelimitbucketDescUpdatedAt.Default.(func() time.Time)
	// ratelimitbucket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ratelimitbucket.UpdateDefaultUpdatedAt = ratelimitbucketDescUpdatedAt.UpdateDefault.(func() time.Time)
	reservationFields := schema.Reservation{}.Fields()
	_ = reservationFields
	// reservationDescCreatedAt is the schema descriptor for created_at field.
	reservationDescCreatedAt := reservationFields[7].Descriptor()
	// reservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	reservation.DefaultCreatedAt = reservationDescCreatedAt.Default.(func() time.Time)
	// reservationDescUpdatedAt is the schema descriptor for updated_at field.
	reservationDescUpdatedAt := reservationFields[8].Descriptor()
	// reservation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reservation.DefaultUpdatedAt = reservationDescUpdatedAt.Default.(func() time.Time)
	// reservation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reservation.UpdateDefaultUpdatedAt = reservationDescUpdatedAt.UpdateDefault.(func() time.Time)
	trustedmappingFields := schema.TrustedMapping{}.Fields()
	_ = trustedmappingFields
	// trustedmappingDescKind is the schema descriptor for kind field.
	trustedmappingDescKind := trustedmappingFields[4].Descriptor()
	// trustedmapping.DefaultKind holds the default value on creation for the kind field.
	trustedmapping.DefaultKind = trustedmappingDescKind.Default.(string)
	// trustedmappingDescCreatedAt is the schema descriptor for created_at field.
	trustedmappingDescCreatedAt := trustedmappingFields[5].Descriptor()
	// trustedmapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	trustedmapping.DefaultCreatedAt = trustedmappingDescCreatedAt.Default.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescAttemptCount is the schema descriptor for attempt_count field.
	webhookeventDescAttemptCount := webhookeventFields[8].Descriptor()
	// webhookevent.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	webhookevent.DefaultAttemptCount = webhookeventDescAttemptCount.Default.(int)
	// webhookeventDescReceivedAt is the schema descriptor for received_at field.
	webhookeventDescReceivedAt := webhookeventFields[10].Descriptor()
	// webhookevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	webhookevent.DefaultReceivedAt = webhookeventDescReceivedAt.Default.(func() time.Time)
}
