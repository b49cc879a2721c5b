// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generation

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-card-sync/models"
)

const outputFormat = `Respond with JSON only, in the form {"flashcards":[{"question":"...","answer":"...","topic":"..."}]}.`

// TextPrompt builds the conversation for generating count cards from a
// captured web page.
func TextPrompt(text string, count int, topic, sourceTitle string) []models.ChatMessage {
	var b strings.Builder
	fmt.Fprintf(&b, "Create %d concise, simple, straightforward and distinct Anki cards to study the following text.\n", count)
	b.WriteString("Each card should have a question, answer, and topic.\n")
	b.WriteString("Avoid repeating the content in the question as part of the answer.\n")
	b.WriteString("Avoid explicitly referring to the author or article in the cards.\n")
	if topic != "" {
		fmt.Fprintf(&b, "Focus on the topic %q.\n", topic)
	}
	b.WriteString(outputFormat)

	content := text
	if sourceTitle != "" {
		content = sourceTitle + "\n\n" + text
	}

	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: b.String()},
		{Role: models.RoleUser, Content: content},
	}
}

// ConversationPrompt prepends the card-writing instructions to a chat
// transcript captured by the browser extension.
func ConversationPrompt(conversation []models.ChatMessage) []models.ChatMessage {
	system := "Create concise, distinct Anki cards covering the key facts of the following conversation. " +
		"Each card should have a question, answer, and topic.\n" + outputFormat

	messages := make([]models.ChatMessage, 0, len(conversation)+1)
	messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: system})
	return append(messages, conversation...)
}
