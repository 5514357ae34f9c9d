package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/app/repository"
	"github.com/onespirit/onespirit/internal/pkg/statistics"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
)

func HandleListClubs(c *fiber.Ctx) error {
	offset, limit := pagination(c)
	repo := repository.GetGlobalFactory().GetClubRepository()
	clubs, err := repo.List(c.UserContext(), offset, limit)
	if err != nil {
		return respondError(c, err)
	}
	total, err := repo.Count(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"clubs": clubs, "total": total})
}

func HandleCreateClub(c *fiber.Ctx) error {
	var club models.Club
	if err := c.BodyParser(&club); err != nil {
		return badRequest(c, "invalid request body")
	}

	if club.TenantID == 0 {
		if tenantID, ok := tenantctx.TenantIDFrom(c.UserContext()); ok {
			club.TenantID = tenantID
		}
	}

	repo := repository.GetGlobalFactory().GetClubRepository()
	if err := repo.Create(c.UserContext(), &club); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateTenantStats(club.TenantID)
	return c.Status(fiber.StatusCreated).JSON(club)
}

func HandleGetClub(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid club id")
	}
	club, err := repository.GetGlobalFactory().GetClubRepository().GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(club)
}

func HandleUpdateClub(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid club id")
	}

	repo := repository.GetGlobalFactory().GetClubRepository()
	club, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	if err := c.BodyParser(club); err != nil {
		return badRequest(c, "invalid request body")
	}
	club.ID = id

	if err := repo.Update(c.UserContext(), club); err != nil {
		return respondError(c, err)
	}
	return c.JSON(club)
}

func HandleDeleteClub(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid club id")
	}

	repo := repository.GetGlobalFactory().GetClubRepository()
	club, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	if err := repo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateTenantStats(club.TenantID)
	return c.JSON(fiber.Map{"message": "club deleted"})
}
