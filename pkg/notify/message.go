package notify

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var platformEmoji = map[string]string{
	"instagram": ":camera:",
	"tiktok":    ":movie_camera:",
	"x":         ":bird:",
	"reddit":    ":robot_face:",
}

// BuildPublishedMessage creates Block Kit blocks for a successful publish.
func BuildPublishedMessage(input PublishedInput) []goslack.Block {
	emoji := platformEmoji[input.Platform]
	if emoji == "" {
		emoji = ":mega:"
	}
	text := fmt.Sprintf(":white_check_mark: %s *Post published* on %s\n*Creator:* %s\n*Post:* %s",
		emoji, input.Platform, input.CreatorID, input.PostID)
	if input.RemoteID != "" {
		text += fmt.Sprintf("\n*Remote ID:* %s", input.RemoteID)
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildFailedMessage creates Block Kit blocks for a terminally failed publish.
func BuildFailedMessage(input FailedInput) []goslack.Block {
	text := fmt.Sprintf(":x: *Post failed* on %s after %d attempt(s)\n*Creator:* %s\n*Post:* %s",
		input.Platform, input.Attempts, input.CreatorID, input.PostID)
	if input.Reason != "" {
		text += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(input.Reason))
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildBudgetAlertMessage creates Block Kit blocks for a budget threshold alert.
func BuildBudgetAlertMessage(input BudgetAlertInput) []goslack.Block {
	emoji := ":warning:"
	label := "Budget soft limit reached"
	if input.Threshold == "hard" {
		emoji = ":no_entry:"
		label = "Budget hard limit reached, caption generation suspended"
	}
	text := fmt.Sprintf("%s *%s*\n*Creator:* %s\n*Month:* %s\n*Spent:* $%.2f of $%.2f",
		emoji, label, input.CreatorID, input.Month, input.SpentUSD, input.LimitUSD)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
