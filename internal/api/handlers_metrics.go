package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/autonomie/internal/services"
)

type insightView struct {
	Key     string  `json:"key"`
	Value   float64 `json:"value"`
	Message string  `json:"message"`
}

type analyticsView struct {
	services.Analytics
	Insights []insightView `json:"insights"`
}

func (handler *Handler) GetOverview(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Metrics.Overview(user.ID))
}

func (handler *Handler) GetAnalytics(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	analytics := handler.services.Metrics.Analytics(user.ID)
	return c.JSON(analyticsView{
		Analytics: analytics,
		Insights:  handler.localizeInsights(currentLanguage(c), analytics.Insights),
	})
}

func (handler *Handler) localizeInsights(language string, insights []services.Insight) []insightView {
	views := make([]insightView, 0, len(insights))
	for _, insight := range insights {
		views = append(views, insightView{
			Key:     insight.Key,
			Value:   insight.Value,
			Message: handler.i18n.Translatef(language, insight.Key, insight.Value),
		})
	}
	return views
}
