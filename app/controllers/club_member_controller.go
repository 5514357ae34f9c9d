package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/app/repository"
)

func HandleListClubMembers(c *fiber.Ctx) error {
	clubID, err := parseIDParam(c, "clubID")
	if err != nil {
		return badRequest(c, "invalid club id")
	}
	memberships, err := repository.GetGlobalFactory().GetClubMemberRepository().ListByClub(c.UserContext(), clubID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"memberships": memberships, "total": len(memberships)})
}

func HandleCreateClubMember(c *fiber.Ctx) error {
	clubID, err := parseIDParam(c, "clubID")
	if err != nil {
		return badRequest(c, "invalid club id")
	}

	var membership models.ClubMember
	if err := c.BodyParser(&membership); err != nil {
		return badRequest(c, "invalid request body")
	}
	membership.ClubID = clubID

	if _, err := repository.GetGlobalFactory().GetClubRepository().GetByID(c.UserContext(), clubID); err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetClubMemberRepository()
	if err := repo.Create(c.UserContext(), &membership); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(membership)
}

func HandleGetClubMember(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid membership id")
	}
	membership, err := repository.GetGlobalFactory().GetClubMemberRepository().GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(membership)
}

func HandleUpdateClubMember(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid membership id")
	}

	repo := repository.GetGlobalFactory().GetClubMemberRepository()
	membership, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	if err := c.BodyParser(membership); err != nil {
		return badRequest(c, "invalid request body")
	}
	membership.ID = id

	if err := repo.Update(c.UserContext(), membership); err != nil {
		return respondError(c, err)
	}
	return c.JSON(membership)
}

func HandleDeleteClubMember(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid membership id")
	}
	repo := repository.GetGlobalFactory().GetClubMemberRepository()
	if _, err := repo.GetByID(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	if err := repo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "club membership deleted"})
}
