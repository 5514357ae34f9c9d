package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/app/repository"
)

func HandleListAffiliations(c *fiber.Ctx) error {
	offset, limit := pagination(c)
	affiliations, err := repository.GetGlobalFactory().GetClubAffiliationRepository().List(c.UserContext(), offset, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"affiliations": affiliations, "total": len(affiliations)})
}

func HandleCreateAffiliation(c *fiber.Ctx) error {
	var affiliation models.ClubAffiliation
	if err := c.BodyParser(&affiliation); err != nil {
		return badRequest(c, "invalid request body")
	}

	// Both clubs must be visible to the caller.
	clubRepo := repository.GetGlobalFactory().GetClubRepository()
	if _, err := clubRepo.GetByID(c.UserContext(), affiliation.ClubPrimaryID); err != nil {
		return respondError(c, err)
	}
	if _, err := clubRepo.GetByID(c.UserContext(), affiliation.ClubSecondaryID); err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetClubAffiliationRepository()
	if err := repo.Create(c.UserContext(), &affiliation); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(affiliation)
}

func HandleGetAffiliation(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid affiliation id")
	}
	affiliation, err := repository.GetGlobalFactory().GetClubAffiliationRepository().GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(affiliation)
}

func HandleDeleteAffiliation(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid affiliation id")
	}
	repo := repository.GetGlobalFactory().GetClubAffiliationRepository()
	if _, err := repo.GetByID(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	if err := repo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "affiliation deleted"})
}
