package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/app/repository"
)

// Staff listings run through the staff-visibility filter: regular users only
// see assignments in clubs where they are themselves active staff.

func HandleListClubStaff(c *fiber.Ctx) error {
	clubID, err := parseIDParam(c, "clubID")
	if err != nil {
		return badRequest(c, "invalid club id")
	}
	staff, err := repository.GetGlobalFactory().GetClubStaffRepository().ListByClub(c.UserContext(), clubID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"staff": staff, "total": len(staff)})
}

func HandleCreateClubStaff(c *fiber.Ctx) error {
	clubID, err := parseIDParam(c, "clubID")
	if err != nil {
		return badRequest(c, "invalid club id")
	}

	var staff models.ClubStaff
	if err := c.BodyParser(&staff); err != nil {
		return badRequest(c, "invalid request body")
	}
	staff.ClubID = clubID

	// The target club must be visible to the caller before anything is
	// attached to it.
	if _, err := repository.GetGlobalFactory().GetClubRepository().GetByID(c.UserContext(), clubID); err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetClubStaffRepository()
	if err := repo.Create(c.UserContext(), &staff); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(staff)
}

func HandleGetClubStaff(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid staff id")
	}
	staff, err := repository.GetGlobalFactory().GetClubStaffRepository().GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(staff)
}

func HandleUpdateClubStaff(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid staff id")
	}

	repo := repository.GetGlobalFactory().GetClubStaffRepository()
	staff, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	if err := c.BodyParser(staff); err != nil {
		return badRequest(c, "invalid request body")
	}
	staff.ID = id

	if err := repo.Update(c.UserContext(), staff); err != nil {
		return respondError(c, err)
	}
	return c.JSON(staff)
}

func HandleDeleteClubStaff(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid staff id")
	}
	repo := repository.GetGlobalFactory().GetClubStaffRepository()
	if _, err := repo.GetByID(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	if err := repo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "staff assignment deleted"})
}
