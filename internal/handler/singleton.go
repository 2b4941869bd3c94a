package handler

import (
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/dto"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler untuk data satu baris (hero, struktur, tugas & tanggung jawab)
// dan kontak berdasarkan key.

type HeroHandler struct {
	heroService *service.HeroService
}

func NewHeroHandler(heroService *service.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

func (h *HeroHandler) Get(c *gin.Context) {
	ctx := requestContext(c, "GetHero")

	hero, err := h.heroService.Get(ctx)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Hero fetched successfully", hero)
}

func (h *HeroHandler) Update(c *gin.Context) {
	ctx := requestContext(c, "UpdateHero")

	var req dto.HeroRequest
	if !bindBody(c, ctx, &req) {
		return
	}
	hero, err := h.heroService.Update(ctx, &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Hero updated successfully", hero)
}

func (h *HeroHandler) UpdateBanner(c *gin.Context) {
	ctx := requestContext(c, "UpdateHeroBanner")

	hero, err := h.heroService.UpdateBanner(ctx, optionalFile(c, constants.FormFieldFile))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Banner updated successfully", hero)
}

type StructureHandler struct {
	structureService *service.StructureService
}

func NewStructureHandler(structureService *service.StructureService) *StructureHandler {
	return &StructureHandler{structureService: structureService}
}

func (h *StructureHandler) Get(c *gin.Context) {
	ctx := requestContext(c, "GetStructure")

	structure, err := h.structureService.Get(ctx)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Structure fetched successfully", structure)
}

func (h *StructureHandler) Update(c *gin.Context) {
	ctx := requestContext(c, "UpdateStructure")

	structure, err := h.structureService.Update(ctx, optionalFile(c, constants.FormFieldFile))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Structure updated successfully", structure)
}

type RolesResponsibilitiesHandler struct {
	rolesService *service.RolesResponsibilitiesService
}

func NewRolesResponsibilitiesHandler(rolesService *service.RolesResponsibilitiesService) *RolesResponsibilitiesHandler {
	return &RolesResponsibilitiesHandler{rolesService: rolesService}
}

func (h *RolesResponsibilitiesHandler) Get(c *gin.Context) {
	ctx := requestContext(c, "GetRolesResponsibilities")

	item, err := h.rolesService.Get(ctx)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Roles and responsibilities fetched successfully", item)
}

func (h *RolesResponsibilitiesHandler) Update(c *gin.Context) {
	ctx := requestContext(c, "UpdateRolesResponsibilities")

	var req dto.RolesResponsibilitiesRequest
	if !bindBody(c, ctx, &req) {
		return
	}
	item, err := h.rolesService.Update(ctx, &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Roles and responsibilities updated successfully", item)
}

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) GetByKey(c *gin.Context) {
	ctx := requestContext(c, "GetContactByKey")

	contact, err := h.contactService.GetByKey(ctx, c.Param("key"))
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Contact fetched successfully", contact)
}

// UpdateByKeys PUT /contacts dengan body {map_url, address, contact}.
func (h *ContactHandler) UpdateByKeys(c *gin.Context) {
	ctx := requestContext(c, "UpdateContactsByKey")

	var req dto.UpdateContactsByKeyRequest
	if !bindBody(c, ctx, &req) {
		return
	}
	contacts, err := h.contactService.UpdateByKeys(ctx, actorID(c), &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "Contacts updated successfully", contacts)
}
