package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/app/repository"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
)

// Contact handlers operate through the scoped repository: whatever tenant the
// middleware resolved bounds every query here.

func HandleListContacts(c *fiber.Ctx) error {
	offset, limit := pagination(c)
	repo := repository.GetGlobalFactory().GetContactRepository()
	contacts, err := repo.List(c.UserContext(), offset, limit)
	if err != nil {
		return respondError(c, err)
	}
	total, err := repo.Count(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"contacts": contacts, "total": total})
}

func HandleCreateContact(c *fiber.Ctx) error {
	var contact models.Contact
	if err := c.BodyParser(&contact); err != nil {
		return badRequest(c, "invalid request body")
	}

	// New contacts belong to the resolved tenant unless an admin says
	// otherwise explicitly.
	if contact.TenantID == nil {
		if tenantID, ok := tenantctx.TenantIDFrom(c.UserContext()); ok {
			contact.TenantID = &tenantID
		}
	}

	repo := repository.GetGlobalFactory().GetContactRepository()
	if err := repo.Create(c.UserContext(), &contact); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

func HandleGetContact(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid contact id")
	}
	contact, err := repository.GetGlobalFactory().GetContactRepository().GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(contact)
}

func HandleUpdateContact(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid contact id")
	}

	repo := repository.GetGlobalFactory().GetContactRepository()
	contact, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	if err := c.BodyParser(contact); err != nil {
		return badRequest(c, "invalid request body")
	}
	contact.ID = id

	if err := repo.Update(c.UserContext(), contact); err != nil {
		return respondError(c, err)
	}
	return c.JSON(contact)
}

func HandleDeleteContact(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid contact id")
	}
	repo := repository.GetGlobalFactory().GetContactRepository()
	if _, err := repo.GetByID(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	if err := repo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "contact deleted"})
}
