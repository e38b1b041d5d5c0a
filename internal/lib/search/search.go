// Package search filters events and comments the way the listing and
// moderation screens do. Results keep the input order.
package search

import (
	"strings"

	"eventsManager/internal/models"
)

// Events keeps the events whose title, description or location contains term
// (case-insensitive) and whose category equals category. An empty term and
// the All category (or an empty one) match everything.
func Events(events []models.Event, term string, category models.Category) []models.Event {
	term = strings.ToLower(term)

	filtered := make([]models.Event, 0, len(events))

	for _, e := range events {
		if !matchesCategory(e.Category, category) {
			continue
		}

		if !containsAny(term, e.Title, e.Description, e.Location) {
			continue
		}

		filtered = append(filtered, e)
	}

	return filtered
}

// Comments keeps the comments whose content or author contains term
// (case-insensitive) and that belong to eventID. An empty eventID or "All"
// matches every event.
func Comments(comments []models.Comment, term string, eventID string) []models.Comment {
	term = strings.ToLower(term)

	filtered := make([]models.Comment, 0, len(comments))

	for _, c := range comments {
		if eventID != "" && eventID != string(models.CategoryAll) && c.EventID != eventID {
			continue
		}

		if !containsAny(term, c.Content, c.Author) {
			continue
		}

		filtered = append(filtered, c)
	}

	return filtered
}

func matchesCategory(c, filter models.Category) bool {
	return filter == "" || filter == models.CategoryAll || c == filter
}

// containsAny expects term already lowercased.
func containsAny(term string, fields ...string) bool {
	if term == "" {
		return true
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}
