package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/app/repository"
	"github.com/onespirit/onespirit/internal/pkg/statistics"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
)

func HandleListMembers(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetMemberRepository()

	// Optional filters, all evaluated within the resolved tenant.
	if status := c.Query("status"); status != "" {
		members, err := repo.ListByStatus(c.UserContext(), status)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"members": members, "total": len(members)})
	}
	if membershipType := c.Query("type"); membershipType != "" {
		members, err := repo.ListByType(c.UserContext(), membershipType)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"members": members, "total": len(members)})
	}

	offset, limit := pagination(c)
	members, err := repo.List(c.UserContext(), offset, limit)
	if err != nil {
		return respondError(c, err)
	}
	total, err := repo.Count(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"members": members, "total": total})
}

// HandleListExpiringMembers lists members whose membership ends within the
// given number of days (default 30).
func HandleListExpiringMembers(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days < 1 {
		days = 30
	}
	members, err := repository.GetGlobalFactory().GetMemberRepository().ListExpiringSoon(c.UserContext(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"members": members, "total": len(members)})
}

func HandleCreateMember(c *fiber.Ctx) error {
	var member models.MemberAccount
	if err := c.BodyParser(&member); err != nil {
		return badRequest(c, "invalid request body")
	}

	if member.TenantID == 0 {
		if tenantID, ok := tenantctx.TenantIDFrom(c.UserContext()); ok {
			member.TenantID = tenantID
		}
	}

	repo := repository.GetGlobalFactory().GetMemberRepository()
	if err := repo.Create(c.UserContext(), &member); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateTenantStats(member.TenantID)
	return c.Status(fiber.StatusCreated).JSON(member)
}

func HandleGetMember(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}
	member, err := repository.GetGlobalFactory().GetMemberRepository().GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"member":            member,
		"membership_status": member.MembershipStatus(),
	})
}

func HandleUpdateMember(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	repo := repository.GetGlobalFactory().GetMemberRepository()
	member, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	if err := c.BodyParser(member); err != nil {
		return badRequest(c, "invalid request body")
	}
	member.ID = id

	if err := repo.Update(c.UserContext(), member); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateTenantStats(member.TenantID)
	return c.JSON(member)
}

func HandleDeleteMember(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	repo := repository.GetGlobalFactory().GetMemberRepository()
	member, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	if err := repo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateTenantStats(member.TenantID)
	return c.JSON(fiber.Map{"message": "member deleted"})
}
