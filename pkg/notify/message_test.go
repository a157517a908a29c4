package notify

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPublishedMessage(t *testing.T) {
	blocks := BuildPublishedMessage(PublishedInput{
		PostID:    "post-1",
		CreatorID: "creator-a",
		Platform:  "instagram",
		RemoteID:  "ig-99",
	})

	require.Len(t, blocks, 1)
	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":white_check_mark:")
	assert.Contains(t, section.Text.Text, "instagram")
	assert.Contains(t, section.Text.Text, "creator-a")
	assert.Contains(t, section.Text.Text, "ig-99")
}

func TestBuildFailedMessage(t *testing.T) {
	blocks := BuildFailedMessage(FailedInput{
		PostID:    "post-2",
		CreatorID: "creator-b",
		Platform:  "tiktok",
		Attempts:  5,
		Reason:    "auth_revoked: token rejected",
	})

	require.Len(t, blocks, 1)
	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, ":x:")
	assert.Contains(t, section.Text.Text, "5 attempt(s)")
	assert.Contains(t, section.Text.Text, "auth_revoked: token rejected")
}

func TestBuildFailedMessageTruncatesLongReason(t *testing.T) {
	blocks := BuildFailedMessage(FailedInput{
		PostID:   "post-3",
		Platform: "x",
		Reason:   strings.Repeat("e", maxBlockTextLength+100),
	})

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, "(truncated)")
	assert.Less(t, len(section.Text.Text), maxBlockTextLength+300)
}

func TestBuildBudgetAlertMessage(t *testing.T) {
	soft := BuildBudgetAlertMessage(BudgetAlertInput{
		CreatorID: "creator-c",
		Month:     "2026-08",
		Threshold: "soft",
		SpentUSD:  8.12,
		LimitUSD:  10,
	})
	require.Len(t, soft, 1)
	assert.Contains(t, soft[0].(*goslack.SectionBlock).Text.Text, ":warning:")
	assert.Contains(t, soft[0].(*goslack.SectionBlock).Text.Text, "$8.12 of $10.00")

	hard := BuildBudgetAlertMessage(BudgetAlertInput{
		CreatorID: "creator-c",
		Month:     "2026-08",
		Threshold: "hard",
		SpentUSD:  10,
		LimitUSD:  10,
	})
	assert.Contains(t, hard[0].(*goslack.SectionBlock).Text.Text, ":no_entry:")
	assert.Contains(t, hard[0].(*goslack.SectionBlock).Text.Text, "suspended")
}

func TestNilServiceIsNoOp(t *testing.T) {
	var s *Service
	s.NotifyPublished(t.Context(), PublishedInput{PostID: "p"})
	s.NotifyFailed(t.Context(), FailedInput{PostID: "p"})
	s.NotifyBudgetAlert(t.Context(), BudgetAlertInput{CreatorID: "c"})
}
