package services

import "github.com/sbilibin2017/gw-social-content/internal/models"

// normalizePage applies the default limit and clamps out-of-range values.
func normalizePage(page models.Page) models.Page {
	if page.Offset < 0 {
		page.Offset = 0
	}
	switch {
	case page.Limit <= 0:
		page.Limit = models.DefaultPageLimit
	case page.Limit > models.MaxPageLimit:
		page.Limit = models.MaxPageLimit
	}
	return page
}
