package models

import "time"

// Category is the fixed prompt-category enumeration used by both prompt
// flavors. "All" is a UI filter value only and never stored on a prompt.
type Category = string

const CategoryAll Category = "All"

// Categories lists the storable categories, in display order.
func Categories() []Category {
	return []Category{
		"Summarization",
		"Translation",
		"Code Generation",
		"Creative Writing",
		"Classification",
		"Extraction",
		"Role-playing",
	}
}

// ValidCategory reports whether c is one of the storable categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if known == c {
			return true
		}
	}
	return false
}

// UserPrompt is a prompt private to its owner.
type UserPrompt struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	PromptContent string    `json:"promptContent"`
	Category      Category  `json:"category"`
	IsFavorite    bool      `json:"isFavorite"`
	UsageCount    int64     `json:"usageCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SharedPrompt is a community prompt visible to all users. HasLiked is
// viewer-relative and computed server-side per request.
type SharedPrompt struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	PromptContent string    `json:"promptContent"`
	Description   string    `json:"description,omitempty"`
	Category      Category  `json:"category"`
	Author        *Author   `json:"author,omitempty"`
	LikesCount    int64     `json:"likesCount"`
	UsageCount    int64     `json:"usageCount"`
	HasLiked      bool      `json:"hasLiked"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Author is the subset of the owning user embedded in a shared prompt.
type Author struct {
	Email     string `json:"email"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
}

type CreateUserPromptRequest struct {
	Title         string   `json:"title"`
	PromptContent string   `json:"promptContent"`
	Category      Category `json:"category"`
}

type CreateSharedPromptRequest struct {
	Title         string   `json:"title"`
	PromptContent string   `json:"promptContent"`
	Category      Category `json:"category"`
	Description   string   `json:"description,omitempty"`
}
