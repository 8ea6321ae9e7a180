package http

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate es seguro para uso concurrente y cachea los structs ya analizados.
var validate = newValidator()

// newValidator reporta los campos con su nombre json para que el mensaje coincida con el body enviado.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodifica el JSON del request y aplica las reglas `validate` del DTO.
// Si falla ya escribió la respuesta 400 y devuelve ok=false.
func parseBody(c *fiber.Ctx, out any) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(out); err != nil {
		return false, badRequest(c, "VALIDATION", validationMessage(err))
	}
	return true, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "entrada inválida"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace viene como "SignupRequest.email"; se quita el nombre del struct raíz.
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		fields = append(fields, fmt.Sprintf("%s (%s)", field, fe.Tag()))
	}
	return "campos inválidos: " + strings.Join(fields, ", ")
}

// companyIDParam parsea :companyId como entero positivo.
func companyIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("companyId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
