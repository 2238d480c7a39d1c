package handler

import (
	"github.com/msomdec/little-lemon/internal/domain"
)

// MenuItemDTO is the JSON representation of a menu item.
type MenuItemDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

func toMenuItemDTO(m domain.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		Category:    m.Category,
	}
}

func toMenuItemDTOs(items []domain.MenuItem) []MenuItemDTO {
	dtos := make([]MenuItemDTO, len(items))
	for i, m := range items {
		dtos[i] = toMenuItemDTO(m)
	}
	return dtos
}

// FilterDTO carries filter criteria in both directions.
type FilterDTO struct {
	Search     string   `json:"search"`
	Categories []string `json:"categories"`
}

func (f FilterDTO) toCriteria() domain.FilterCriteria {
	return domain.FilterCriteria{Search: f.Search, Categories: f.Categories}
}

func toFilterDTO(c domain.FilterCriteria) FilterDTO {
	categories := c.Categories
	if categories == nil {
		categories = []string{}
	}
	return FilterDTO{Search: c.Search, Categories: categories}
}

// MenuResponse is the body of every menu listing endpoint.
type MenuResponse struct {
	Items      []MenuItemDTO `json:"items"`
	Filter     *FilterDTO    `json:"filter,omitempty"`
	FetchError string        `json:"fetchError,omitempty"`
}

// ProfileDTO is the JSON representation of the user profile.
type ProfileDTO struct {
	Registered bool   `json:"registered"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
}

func toProfileDTO(p domain.UserProfile) ProfileDTO {
	return ProfileDTO{
		Registered: p.Registered,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Email:      p.Email,
	}
}

// RegisterRequest is the onboarding form.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
