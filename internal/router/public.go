package router

import (
	"github.com/Payphone-Digital/landing-cms/internal/handler"
	"github.com/Payphone-Digital/landing-cms/internal/middleware"
	"github.com/gin-gonic/gin"
)

// publicRoutes mirror read-only tanpa auth. Data user di respons dibersihkan
// dan respons di-cache oleh PublicResponse.
func (r *Router) publicRoutes(version *gin.RouterGroup) {
	h := r.h

	public := version.Group("/public")
	public.Use(middleware.PublicResponse(r.cache))

	news := public.Group("/news")
	{
		news.GET("", h.News.PublicList)
		news.GET("/slug/:slug", h.News.PublicGetBySlug)
		news.GET("/:id", h.News.PublicGet)
		news.GET("/categories", h.NewsCategory.List())
		news.GET("/categories/:id", h.NewsCategory.Get())
		news.GET("/categories/:id/news", h.News.ListByCategory(true))
		news.GET("/tags", h.Tag.List())
		news.GET("/tags/:id", h.Tag.Get())
	}

	for path, res := range map[string]handler.Resource{
		"/announcements":      {List: h.Announcement.List(), Get: h.Announcement.Get()},
		"/regulations":        {List: h.Regulation.List(), Get: h.Regulation.Get()},
		"/gallery":            {List: h.Gallery.List(), Get: h.Gallery.Get()},
		"/faq":                readOnly(h.Faq),
		"/histories":          readOnly(h.History),
		"/director-profiles":  readOnly(h.DirectorProfile),
		"/social-medias":      readOnly(h.SocialMedia),
		"/social-media-posts": readOnly(h.SocialMediaPost),
		"/services":           readOnly(h.ServiceItem),
	} {
		crud(public.Group(path), res)
	}

	statistics := public.Group("/statistics")
	{
		crud(statistics.Group("/categories"), readOnly(h.StatisticCategory))
		crud(statistics, readOnly(h.Statistic))
	}

	contacts := public.Group("/contacts")
	{
		contacts.GET("/key/:key", h.Contact.GetByKey)
		crud(contacts, readOnly(h.Contacts))
	}

	public.GET("/hero", h.Hero.Get)
	public.GET("/structures", h.Structure.Get)
	public.GET("/roles-responsibilities", h.Roles.Get)
}
