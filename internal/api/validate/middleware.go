package validate

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Kevin6098/roomi-sub001/pkg/apierror"
)

const (
	bodyKey  = "validated_body"
	queryKey = "validated_query"
)

// Body validates the request body against the schema and replaces it with
// the parsed, normalized value for downstream handlers.
func Body(schema Schema) fiber.Handler {
	return middleware(schema, bodyKey, func(c *fiber.Ctx) Binder {
		return func(dst any) error {
			raw := c.Body()
			if len(raw) == 0 {
				raw = []byte("{}")
			}
			if err := json.Unmarshal(raw, dst); err != nil {
				return &Error{Issues: []Issue{{Path: []string{"body"}, Message: "must be valid JSON"}}}
			}
			return nil
		}
	})
}

// Query validates the query parameters against the schema.
func Query(schema Schema) fiber.Handler {
	return middleware(schema, queryKey, func(c *fiber.Ctx) Binder {
		return func(dst any) error {
			if err := c.QueryParser(dst); err != nil {
				return &Error{Issues: []Issue{{Path: []string{"query"}, Message: "must be valid query parameters"}}}
			}
			return nil
		}
	})
}

func middleware(schema Schema, key string, bind func(*fiber.Ctx) Binder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parsed, err := schema.Parse(bind(c))
		if err != nil {
			var ve *Error
			if errors.As(err, &ve) {
				return apierror.NewValidation(ve.Error())
			}
			return err
		}
		c.Locals(key, parsed)
		return c.Next()
	}
}

// BodyOf returns the parsed body attached by Body.
func BodyOf[T any](c *fiber.Ctx) (*T, error) {
	return parsedOf[T](c, bodyKey)
}

// QueryOf returns the parsed query attached by Query.
func QueryOf[T any](c *fiber.Ctx) (*T, error) {
	return parsedOf[T](c, queryKey)
}

func parsedOf[T any](c *fiber.Ctx, key string) (*T, error) {
	val, ok := c.Locals(key).(*T)
	if !ok {
		return nil, apierror.NewInternal(errors.New("validated payload missing from request"))
	}
	return val, nil
}
