// Package reference serves the read-only account group and currency lists.
package reference

import (
	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/service/directory"
	"github.com/amirasaad/finsible/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func Routes(app *fiber.App, dir *directory.Service, cfg *config.App) {
	protected := common.JwtProtected(cfg.Auth.Jwt)
	app.Get("/account-groups", protected, ListAccountGroups(dir))
	app.Get("/currencies", protected, ListCurrencies(dir))
}

// ListAccountGroups returns a Fiber handler listing account groups in
// display order.
// @Summary List account groups
// @Tags reference
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /account-groups [get]
// @Security Bearer
func ListAccountGroups(dir *directory.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := dir.ListAccountGroups(c.Context())
		if err != nil {
			log.Errorf("Failed to list account groups: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list account groups", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account groups fetched successfully", groups)
	}
}

// ListCurrencies returns a Fiber handler listing supported currencies.
// @Summary List supported currencies
// @Tags reference
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /currencies [get]
// @Security Bearer
func ListCurrencies(dir *directory.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		currencies, err := dir.ListCurrencies(c.Context())
		if err != nil {
			log.Errorf("Failed to list currencies: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list currencies", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", currencies)
	}
}
