package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
)

// TransactionHandler maneja las peticiones HTTP de ventas.
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener venta con sus detalles
// @Tags         transactions
// @Produce      json
// @Param        transaction_id  path  int  true  "ID de la venta"
// @Success      200  {object}  dto.TransactionWithDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /transaction/{transaction_id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("transaction_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "transaction_id debe ser un entero"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondLookupError(c, err, "transacción no encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar venta (cabecera + detalles)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Venta"
// @Success      200   {object}  dto.CreateTransactionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /transaction [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido: " + err.Error()})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
