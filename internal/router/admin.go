package router

import (
	"github.com/Payphone-Digital/landing-cms/internal/handler"
	"github.com/gin-gonic/gin"
)

// adminRoutes semua route di sini sudah melewati RequireAuth.
func (r *Router) adminRoutes(rg *gin.RouterGroup) {
	h := r.h

	users := rg.Group("/users")
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List())
		users.GET("/:id", h.User.Get())
		users.PATCH("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	news := rg.Group("/news")
	{
		categories := news.Group("/categories")
		{
			categories.POST("", h.NewsCategory.Create)
			categories.GET("", h.NewsCategory.List())
			categories.GET("/:id", h.NewsCategory.Get())
			categories.GET("/:id/news", h.News.ListByCategory(false))
			categories.PUT("/:id", h.NewsCategory.Update)
			categories.DELETE("/:id", h.NewsCategory.Delete())
		}

		tags := news.Group("/tags")
		{
			tags.POST("", h.Tag.Create)
			tags.GET("", h.Tag.List())
			tags.GET("/:id", h.Tag.Get())
			tags.PUT("/:id", h.Tag.Update)
			tags.DELETE("/:id", h.Tag.Delete())
		}

		news.POST("", h.News.Create)
		news.GET("", h.News.List())
		news.GET("/slug/:slug", h.News.GetBySlug)
		news.GET("/:id", h.News.Get())
		news.PUT("/:id", h.News.Update)
		news.DELETE("/:id", h.News.Delete())
		news.POST("/:id/upload-image", h.News.UploadImage)
	}

	documentRoutes(rg.Group("/announcements"), h.Announcement)
	documentRoutes(rg.Group("/regulations"), h.Regulation)

	gallery := rg.Group("/gallery")
	{
		gallery.POST("", h.Gallery.Create())
		gallery.GET("", h.Gallery.List())
		gallery.GET("/:id", h.Gallery.Get())
		gallery.GET("/:id/images", h.Gallery.ListImages)
		gallery.PUT("/:id", h.Gallery.Update())
		gallery.DELETE("/:id", h.Gallery.Delete())
		gallery.POST("/:id/upload-images", h.Gallery.AddImages)
		gallery.DELETE("/:id/images/:imageId", h.Gallery.DeleteImage)
	}

	crud(rg.Group("/faq"), h.Faq)
	crud(rg.Group("/histories"), h.History)
	crud(rg.Group("/director-profiles"), h.DirectorProfile)

	statistics := rg.Group("/statistics")
	{
		crud(statistics.Group("/categories"), h.StatisticCategory)
		crud(statistics, h.Statistic)
	}

	contacts := rg.Group("/contacts")
	{
		contacts.GET("/key/:key", h.Contact.GetByKey)
		contacts.PUT("", h.Contact.UpdateByKeys)
		crud(contacts, h.Contacts)
	}

	crud(rg.Group("/social-medias"), h.SocialMedia)
	crud(rg.Group("/social-media-posts"), h.SocialMediaPost)

	services := rg.Group("/services")
	{
		crud(services, h.ServiceItem)
		services.PUT("/:id/icon", h.ServiceIcon)
	}

	hero := rg.Group("/hero")
	{
		hero.GET("", h.Hero.Get)
		hero.PUT("", h.Hero.Update)
		hero.PUT("/banner", h.Hero.UpdateBanner)
	}

	rg.GET("/structures", h.Structure.Get)
	rg.PUT("/structures", h.Structure.Update)
	rg.GET("/roles-responsibilities", h.Roles.Get)
	rg.PUT("/roles-responsibilities", h.Roles.Update)

	rg.POST("/upload/image", h.Upload.UploadImage)
	rg.GET("/activity-logs", h.ActivityLogs)
	rg.DELETE("/cache", h.Cache.ClearPublicCache)
}

type documentHandler interface {
	List() gin.HandlerFunc
	Get() gin.HandlerFunc
	Create() gin.HandlerFunc
	Update() gin.HandlerFunc
	Delete() gin.HandlerFunc
	UploadAttachment(c *gin.Context)
}

func documentRoutes(rg *gin.RouterGroup, h documentHandler) {
	crud(rg, handler.Resource{
		List:   h.List(),
		Get:    h.Get(),
		Create: h.Create(),
		Update: h.Update(),
		Delete: h.Delete(),
	})
	rg.POST("/:id/upload-attachment", h.UploadAttachment)
}
