package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ScarMeireles/JuntosMais/internal/catalog"
	"github.com/ScarMeireles/JuntosMais/internal/domain"
	appmw "github.com/ScarMeireles/JuntosMais/internal/middleware"
	"github.com/ScarMeireles/JuntosMais/internal/rendering"
	"github.com/ScarMeireles/JuntosMais/internal/session"
	"github.com/ScarMeireles/JuntosMais/internal/view"
	"github.com/ScarMeireles/JuntosMais/web/src/templates/pages"
)

// HomeHandler serves the campaign listing.
type HomeHandler struct {
	base
	campaigns domain.CampaignDirectory
	fallback  *catalog.Fallback
}

// NewHomeHandler creates a HomeHandler.
func NewHomeHandler(sessions *session.Manager, renderer rendering.Renderer, campaigns domain.CampaignDirectory, fallback *catalog.Fallback) *HomeHandler {
	return &HomeHandler{
		base:      base{sessions: sessions, renderer: renderer},
		campaigns: campaigns,
		fallback:  fallback,
	}
}

// HomeGet lists campaigns, optionally filtered by the categoria query
// parameter. When the backend is down it falls back to the bundled catalog
// and says so. htmx requests get just the grid fragment.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	campaigns, offline, err := h.load(c)
	if err != nil {
		return err
	}

	categories := deriveCategories(campaigns)
	selected := c.QueryParam("categoria")
	if selected == pages.AllCategories {
		selected = ""
	}
	filtered := filterByCategory(campaigns, selected)

	if c.Request().Header.Get("HX-Request") == "true" {
		return h.renderer.RenderPage(c, http.StatusOK, pages.CampaignGrid(filtered))
	}

	if offline {
		view.SetFlashNotice(c, "Não foi possível contatar o servidor. Exibindo campanhas salvas localmente.")
	}
	return h.page(c, http.StatusOK, "Campanhas", pages.Home(filtered, categories, selected))
}

func (h *HomeHandler) load(c echo.Context) (campaigns []domain.Campaign, offline bool, err error) {
	campaigns, err = h.campaigns.ListCampaigns(c.Request().Context())
	if err == nil {
		return campaigns, false, nil
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		return nil, false, err
	}
	appmw.FromContext(c.Request().Context()).Warn("Campaign listing unavailable, serving offline catalog", "error", err)
	return h.fallback.Campaigns(), true, nil
}

// deriveCategories lists the distinct categories in first-appearance order,
// with the all-campaigns sentinel in front.
func deriveCategories(campaigns []domain.Campaign) []string {
	seen := map[string]bool{}
	out := []string{pages.AllCategories}
	for _, c := range campaigns {
		if c.Category == "" || seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c.Category)
	}
	return out
}

func filterByCategory(campaigns []domain.Campaign, category string) []domain.Campaign {
	if category == "" {
		return campaigns
	}
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}
