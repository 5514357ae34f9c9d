package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/models"
	"github.com/onespirit/onespirit/app/repository"
	"github.com/onespirit/onespirit/internal/pkg/statistics"
)

func paymentAccountFromQuery(c *fiber.Ctx) (models.PaymentAccountType, uint, bool) {
	accountType := models.PaymentAccountType(c.Query("account_type"))
	if accountType != models.PaymentAccountTenant && accountType != models.PaymentAccountMember {
		return "", 0, false
	}
	accountID := uint(c.QueryInt("account_id", 0))
	if accountID == 0 {
		return "", 0, false
	}
	return accountType, accountID, true
}

// HandleListPayments lists the payment history of one account, newest first.
// Accounts of a foreign tenant yield an empty history.
func HandleListPayments(c *fiber.Ctx) error {
	accountType, accountID, ok := paymentAccountFromQuery(c)
	if !ok {
		return badRequest(c, "account_type (tenant|member) and account_id are required")
	}

	offset, limit := pagination(c)
	repo := repository.GetGlobalFactory().GetPaymentRepository()
	payments, err := repo.ListForAccount(c.UserContext(), accountType, accountID, offset, limit)
	if err != nil {
		return respondError(c, err)
	}

	total, err := repo.TotalCompletedForAccount(c.UserContext(), accountType, accountID)
	if err != nil {
		return respondError(c, err)
	}
	count, err := repo.CountCompletedForAccount(c.UserContext(), accountType, accountID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"payments":        payments,
		"total_completed": total,
		"count_completed": count,
	})
}

func HandleCreatePayment(c *fiber.Ctx) error {
	var payment models.PaymentHistory
	if err := c.BodyParser(&payment); err != nil {
		return badRequest(c, "invalid request body")
	}

	repo := repository.GetGlobalFactory().GetPaymentRepository()
	if err := repo.Create(c.UserContext(), &payment); err != nil {
		return respondError(c, err)
	}

	invalidateStatsForPayment(repo, &payment)
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func HandleGetPayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid payment id")
	}
	payment, err := repository.GetGlobalFactory().GetPaymentRepository().GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payment)
}

func HandleUpdatePayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid payment id")
	}

	repo := repository.GetGlobalFactory().GetPaymentRepository()
	payment, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	if err := c.BodyParser(payment); err != nil {
		return badRequest(c, "invalid request body")
	}
	payment.ID = id

	if err := repo.Update(c.UserContext(), payment); err != nil {
		return respondError(c, err)
	}

	invalidateStatsForPayment(repo, payment)
	return c.JSON(payment)
}

func HandleDeletePayment(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "invalid payment id")
	}

	repo := repository.GetGlobalFactory().GetPaymentRepository()
	payment, err := repo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	if err := repo.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}

	invalidateStatsForPayment(repo, payment)
	return c.JSON(fiber.Map{"message": "payment deleted"})
}

// invalidateStatsForPayment drops the cached tenant stats affected by a
// payment write. Member payments trace back to their tenant.
func invalidateStatsForPayment(repo repository.PaymentHistoryRepository, payment *models.PaymentHistory) {
	account, err := repo.ResolveAccount(payment)
	if err != nil {
		return
	}
	switch {
	case account.Tenant != nil:
		statistics.InvalidateTenantStats(account.Tenant.ID)
	case account.Member != nil:
		statistics.InvalidateTenantStats(account.Member.TenantID)
	}
}
