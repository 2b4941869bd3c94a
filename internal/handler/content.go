package handler

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/dto"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/gin-gonic/gin"
)

// Resource handler CRUD standar satu entity. Router mendaftarkan
// POST /, GET /, GET /:id, PUT /:id dan DELETE /:id dari sini.
type Resource struct {
	List   gin.HandlerFunc
	Get    gin.HandlerFunc
	Create gin.HandlerFunc
	Update gin.HandlerFunc
	Delete gin.HandlerFunc
}

// readResource bagian baca saja, untuk mirror publik.
func readResource[T any](svc Reader[T], name string) Resource {
	return Resource{
		List: listHandler(svc, "List"+name),
		Get:  getHandler(svc, "Get"+name, name+" fetched successfully"),
	}
}

func NewFaqResource(svc *service.FaqService) Resource {
	r := readResource[model.Faq](svc, "Faq")
	r.Create = createHandler("CreateFaq", "FAQ created successfully",
		func(c *gin.Context, ctx context.Context, req *dto.FaqRequest) (*model.Faq, error) {
			return svc.Create(ctx, actorID(c), req)
		})
	r.Update = updateHandler("UpdateFaq", "FAQ updated successfully",
		func(c *gin.Context, ctx context.Context, id uint, req *dto.UpdateFaqRequest) (*model.Faq, error) {
			return svc.Update(ctx, id, actorID(c), req)
		})
	r.Delete = deleteHandler(svc, "DeleteFaq")
	return r
}

func NewHistoryResource(svc *service.HistoryService) Resource {
	r := readResource[model.History](svc, "History")
	r.Create = createHandler("CreateHistory", "History created successfully",
		func(_ *gin.Context, ctx context.Context, req *dto.HistoryRequest) (*model.History, error) {
			return svc.Create(ctx, req)
		})
	r.Update = updateHandler("UpdateHistory", "History updated successfully",
		func(_ *gin.Context, ctx context.Context, id uint, req *dto.UpdateHistoryRequest) (*model.History, error) {
			return svc.Update(ctx, id, req)
		})
	r.Delete = deleteHandler(svc, "DeleteHistory")
	return r
}

func NewServiceItemResource(svc *service.ServiceItemService) Resource {
	r := readResource[model.ServiceItem](svc, "Service")
	r.Create = createHandler("CreateService", "Service created successfully",
		func(c *gin.Context, ctx context.Context, req *dto.ServiceItemRequest) (*model.ServiceItem, error) {
			return svc.Create(ctx, actorID(c), req, iconFile(c))
		})
	r.Update = updateHandler("UpdateService", "Service updated successfully",
		func(c *gin.Context, ctx context.Context, id uint, req *dto.UpdateServiceItemRequest) (*model.ServiceItem, error) {
			return svc.Update(ctx, id, actorID(c), req, iconFile(c))
		})
	r.Delete = deleteHandler(svc, "DeleteService")
	return r
}

// iconFile field "icon", "file" tetap diterima.
func iconFile(c *gin.Context) *multipart.FileHeader {
	if f := optionalFile(c, constants.FormFieldIcon); f != nil {
		return f
	}
	return optionalFile(c, constants.FormFieldFile)
}

// ServiceIconHandler PUT /services/:id/icon.
func ServiceIconHandler(svc *service.ServiceItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestContext(c, "UpdateServiceIcon")

		id, ok := parseID(c, ctx, "id")
		if !ok {
			return
		}
		item, err := svc.UpdateIcon(ctx, id, actorID(c), iconFile(c))
		if err != nil {
			respondError(c, ctx, err)
			return
		}
		respondData(c, http.StatusOK, "Icon updated successfully", item)
	}
}

func NewStatisticCategoryResource(svc *service.StatisticCategoryService) Resource {
	r := readResource[model.StatisticCategory](svc, "StatisticCategory")
	r.Create = createHandler("CreateStatisticCategory", "Category created successfully",
		func(_ *gin.Context, ctx context.Context, req *dto.StatisticCategoryRequest) (*model.StatisticCategory, error) {
			return svc.Create(ctx, req)
		})
	r.Update = updateHandler("UpdateStatisticCategory", "Category updated successfully",
		func(_ *gin.Context, ctx context.Context, id uint, req *dto.UpdateStatisticCategoryRequest) (*model.StatisticCategory, error) {
			return svc.Update(ctx, id, req)
		})
	r.Delete = deleteHandler(svc, "DeleteStatisticCategory")
	return r
}

func NewStatisticResource(svc *service.StatisticService) Resource {
	r := readResource[model.Statistic](svc, "Statistic")
	r.Create = createHandler("CreateStatistic", "Statistic created successfully",
		func(_ *gin.Context, ctx context.Context, req *dto.StatisticRequest) (*model.Statistic, error) {
			return svc.Create(ctx, req)
		})
	r.Update = updateHandler("UpdateStatistic", "Statistic updated successfully",
		func(_ *gin.Context, ctx context.Context, id uint, req *dto.UpdateStatisticRequest) (*model.Statistic, error) {
			return svc.Update(ctx, id, req)
		})
	r.Delete = deleteHandler(svc, "DeleteStatistic")
	return r
}

func NewSocialMediaResource(svc *service.SocialMediaService) Resource {
	r := readResource[model.SocialMedia](svc, "SocialMedia")
	r.Create = createHandler("CreateSocialMedia", "Social media created successfully",
		func(_ *gin.Context, ctx context.Context, req *dto.SocialMediaRequest) (*model.SocialMedia, error) {
			return svc.Create(ctx, req)
		})
	r.Update = updateHandler("UpdateSocialMedia", "Social media updated successfully",
		func(_ *gin.Context, ctx context.Context, id uint, req *dto.UpdateSocialMediaRequest) (*model.SocialMedia, error) {
			return svc.Update(ctx, id, req)
		})
	r.Delete = deleteHandler(svc, "DeleteSocialMedia")
	return r
}

func NewSocialMediaPostResource(svc *service.SocialMediaPostService) Resource {
	r := readResource[model.SocialMediaPost](svc, "SocialMediaPost")
	r.Create = createHandler("CreateSocialMediaPost", "Social media post created successfully",
		func(c *gin.Context, ctx context.Context, req *dto.SocialMediaPostRequest) (*model.SocialMediaPost, error) {
			return svc.Create(ctx, actorID(c), req, optionalFile(c, constants.FormFieldFile))
		})
	r.Update = updateHandler("UpdateSocialMediaPost", "Social media post updated successfully",
		func(c *gin.Context, ctx context.Context, id uint, req *dto.UpdateSocialMediaPostRequest) (*model.SocialMediaPost, error) {
			return svc.Update(ctx, id, actorID(c), req, optionalFile(c, constants.FormFieldFile))
		})
	r.Delete = deleteHandler(svc, "DeleteSocialMediaPost")
	return r
}

func NewDirectorProfileResource(svc *service.DirectorProfileService) Resource {
	r := readResource[model.DirectorProfile](svc, "DirectorProfile")
	r.Create = createHandler("CreateDirectorProfile", "Director profile created successfully",
		func(c *gin.Context, ctx context.Context, req *dto.DirectorProfileRequest) (*model.DirectorProfile, error) {
			return svc.Create(ctx, req, optionalFile(c, constants.FormFieldFile))
		})
	r.Update = updateHandler("UpdateDirectorProfile", "Director profile updated successfully",
		func(c *gin.Context, ctx context.Context, id uint, req *dto.UpdateDirectorProfileRequest) (*model.DirectorProfile, error) {
			return svc.Update(ctx, id, req, optionalFile(c, constants.FormFieldFile))
		})
	r.Delete = deleteHandler(svc, "DeleteDirectorProfile")
	return r
}

func NewContactResource(svc *service.ContactService) Resource {
	r := readResource[model.Contact](svc, "Contact")
	r.Create = createHandler("CreateContact", "Contact created successfully",
		func(c *gin.Context, ctx context.Context, req *dto.ContactRequest) (*model.Contact, error) {
			return svc.Create(ctx, actorID(c), req)
		})
	r.Update = updateHandler("UpdateContact", "Contact updated successfully",
		func(c *gin.Context, ctx context.Context, id uint, req *dto.UpdateContactRequest) (*model.Contact, error) {
			return svc.Update(ctx, id, actorID(c), req)
		})
	r.Delete = deleteHandler(svc, "DeleteContact")
	return r
}
