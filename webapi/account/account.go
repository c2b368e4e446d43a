package account

import (
	"fmt"

	"github.com/amirasaad/finsible/pkg/config"
	accountsvc "github.com/amirasaad/finsible/pkg/service/account"
	authsvc "github.com/amirasaad/finsible/pkg/service/auth"
	"github.com/amirasaad/finsible/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the account endpoints. Every route requires a bearer
// token whose user_id claim names the owner.
//
// Routes:
//   - POST   /accounts/groups/:groupId   : Create an account under a group.
//   - GET    /accounts                   : List the owner's accounts with details.
//   - PUT    /accounts/:id               : Partially update an account.
//   - DELETE /accounts/:id               : Delete an account.
//   - POST   /accounts/credit-card       : Create a credit card account.
//   - PUT    /accounts/credit-card/:id   : Partially update a credit card account.
//   - POST   /accounts/debit-card        : Create a debit card account.
//   - PUT    /accounts/debit-card/:id    : Partially update a debit card account.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	accounts := app.Group("/accounts", common.JwtProtected(cfg.Auth.Jwt))
	accounts.Post("/groups/:groupId", CreateAccount(accountSvc, authSvc))
	accounts.Get("/", GetAccounts(accountSvc, authSvc))
	accounts.Post("/credit-card", CreateCreditCardAccount(accountSvc, authSvc))
	accounts.Put("/credit-card/:id", UpdateCreditCardAccount(accountSvc, authSvc))
	accounts.Post("/debit-card", CreateDebitCardAccount(accountSvc, authSvc))
	accounts.Put("/debit-card/:id", UpdateDebitCardAccount(accountSvc, authSvc))
	accounts.Put("/:id", UpdateAccount(accountSvc, authSvc))
	accounts.Delete("/:id", DeleteAccount(accountSvc, authSvc))
}

func accountIDParam(c *fiber.Ctx) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Errorf("Invalid account ID %q: %v", c.Params("id"), err)
		return uuid.Nil, false, common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
	}
	return id, true, nil
}

// CreateAccount returns a Fiber handler creating an account without
// type-specific details under the group named in the path.
// @Summary Create an account
// @Description Creates an account under an account group. Currency falls back to the user's default when unknown; balance defaults to zero.
// @Tags accounts
// @Accept json
// @Produce json
// @Param groupId path int true "Account group ID"
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account group not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/groups/{groupId} [post]
// @Security Bearer
func CreateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok, err := common.CurrentUserID(c, authSvc)
		if !ok {
			return err
		}
		groupID, err := c.ParamsInt("groupId")
		if err != nil || groupID <= 0 {
			if err == nil {
				err = fmt.Errorf("group id %d is not positive", groupID)
			}
			return common.ProblemDetailsJSON(c, "Invalid account group ID", err, "Account group ID must be a positive integer", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.CreatePlainAccount(c.Context(), userID, uint(groupID), input.toDTO())
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created successfully", a)
	}
}

// GetAccounts returns a Fiber handler listing every account of the current
// user with type-specific details merged in.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response "Accounts fetched"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts [get]
// @Security Bearer
func GetAccounts(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok, err := common.CurrentUserID(c, authSvc)
		if !ok {
			return err
		}
		accounts, err := accountSvc.GetAccounts(c.Context(), userID)
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched successfully", accounts)
	}
}

// UpdateAccount returns a Fiber handler applying a partial update to the
// base fields of an account.
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body UpdateAccountRequest true "Fields to change"
// @Success 200 {object} common.Response "Account updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 409 {object} common.ProblemDetails "Concurrent modification"
// @Router /accounts/{id} [put]
// @Security Bearer
func UpdateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok, err := common.CurrentUserID(c, authSvc)
		if !ok {
			return err
		}
		accountID, ok, err := accountIDParam(c)
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.UpdatePlainAccount(c.Context(), userID, accountID, input.toDTO())
		if err != nil {
			log.Errorf("Failed to update account %s: %v", accountID, err)
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated successfully", a)
	}
}

// DeleteAccount returns a Fiber handler deleting an account and its details.
// @Summary Delete an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response "Account deleted"
// @Failure 400 {object} common.ProblemDetails "System default account"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{id} [delete]
// @Security Bearer
func DeleteAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok, err := common.CurrentUserID(c, authSvc)
		if !ok {
			return err
		}
		accountID, ok, err := accountIDParam(c)
		if !ok {
			return err
		}
		if err := accountSvc.DeleteAccount(c.Context(), userID, accountID); err != nil {
			log.Errorf("Failed to delete account %s: %v", accountID, err)
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account deleted successfully", nil)
	}
}

// CreateCreditCardAccount returns a Fiber handler creating a credit card
// account.
// @Summary Create a credit card account
// @Description Available credit defaults to the limit and becomes the opening balance. Billing date defaults to 1, due date to 20.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateCreditCardRequest true "Credit card details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Auto pay account not found"
// @Router /accounts/credit-card [post]
// @Security Bearer
func CreateCreditCardAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok, err := common.CurrentUserID(c, authSvc)
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[CreateCreditCardRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.CreateCreditCardAccount(c.Context(), userID, input.toDTO())
		if err != nil {
			log.Errorf("Failed to create credit card account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create credit card account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Credit card account created successfully", a)
	}
}

// UpdateCreditCardAccount returns a Fiber handler applying a partial update
// to a credit card account.
// @Summary Update a credit card account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body UpdateCreditCardRequest true "Fields to change"
// @Success 200 {object} common.Response "Account updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 409 {object} common.ProblemDetails "Concurrent modification"
// @Router /accounts/credit-card/{id} [put]
// @Security Bearer
func UpdateCreditCardAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok, err := common.CurrentUserID(c, authSvc)
		if !ok {
			return err
		}
		accountID, ok, err := accountIDParam(c)
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateCreditCardRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.UpdateCreditCardAccount(c.Context(), userID, accountID, input.toDTO())
		if err != nil {
			log.Errorf("Failed to update credit card account %s: %v", accountID, err)
			return common.ProblemDetailsJSON(c, "Failed to update credit card account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Credit card account updated successfully", a)
	}
}

// CreateDebitCardAccount returns a Fiber handler creating a debit card
// account linked to one of the user's bank accounts.
// @Summary Create a debit card account
// @Description The balance is copied from the linked bank account at creation.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateDebitCardRequest true "Debit card details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Linked account not found"
// @Router /accounts/debit-card [post]
// @Security Bearer
func CreateDebitCardAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok, err := common.CurrentUserID(c, authSvc)
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[CreateDebitCardRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.CreateDebitCardAccount(c.Context(), userID, input.toDTO())
		if err != nil {
			log.Errorf("Failed to create debit card account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create debit card account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Debit card account created successfully", a)
	}
}

// UpdateDebitCardAccount returns a Fiber handler applying a partial update
// to a debit card account.
// @Summary Update a debit card account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body UpdateDebitCardRequest true "Fields to change"
// @Success 200 {object} common.Response "Account updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 409 {object} common.ProblemDetails "Concurrent modification"
// @Router /accounts/debit-card/{id} [put]
// @Security Bearer
func UpdateDebitCardAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok, err := common.CurrentUserID(c, authSvc)
		if !ok {
			return err
		}
		accountID, ok, err := accountIDParam(c)
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[UpdateDebitCardRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.UpdateDebitCardAccount(c.Context(), userID, accountID, input.toDTO())
		if err != nil {
			log.Errorf("Failed to update debit card account %s: %v", accountID, err)
			return common.ProblemDetailsJSON(c, "Failed to update debit card account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Debit card account updated successfully", a)
	}
}
