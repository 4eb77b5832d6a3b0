package http

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"

	"github.com/jhoicas/inventory-dashboard/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-dashboard/internal/interfaces/graphql"
	"github.com/jhoicas/inventory-dashboard/pkg/logger"
)

// GraphQLRequest cuerpo estándar de una petición GraphQL sobre HTTP.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// GraphQLHandler ejecuta documentos GraphQL contra el esquema del dashboard.
type GraphQLHandler struct {
	schema  gql.Schema
	timeout time.Duration
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewGraphQLHandler construye el handler. metrics y log pueden ser nil.
func NewGraphQLHandler(schema gql.Schema, timeout time.Duration, m *metrics.Metrics, log *logger.Logger) *GraphQLHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &GraphQLHandler{schema: schema, timeout: timeout, metrics: m, log: log.Named("graphql")}
}

// Serve POST / y POST /graphql. Devuelve {data, errors?}; los errores de los
// resolvers viajan con HTTP 200, solo un cuerpo ilegible produce 400.
func (h *GraphQLHandler) Serve(c *fiber.Ctx) error {
	var req GraphQLRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorEnvelope("Invalid JSON body"))
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorEnvelope("Must provide query string."))
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
	op := operationLabel(req.Query, req.OperationName)
	if h.metrics != nil {
		h.metrics.ObserveOperation(op, result.HasErrors(), time.Since(start))
	}
	if result.HasErrors() {
		h.log.Warn().
			Str("operation", op).
			Str("error", result.Errors[0].Message).
			Msg("operación con errores")
	}
	return c.JSON(result)
}

func errorEnvelope(message string) fiber.Map {
	return fiber.Map{"errors": []gqlerrors.FormattedError{{Message: message}}}
}

// operationLabel nombre del primer campo raíz de la operación ejecutada, acotado
// a los campos del esquema para no disparar la cardinalidad de las métricas.
func operationLabel(query, operationName string) string {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return "invalid"
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if operationName != "" && (op.Name == nil || op.Name.Value != operationName) {
			continue
		}
		if op.SelectionSet == nil {
			break
		}
		for _, sel := range op.SelectionSet.Selections {
			f, ok := sel.(*ast.Field)
			if !ok || f.Name == nil {
				continue
			}
			if _, known := graphql.RootFields[f.Name.Value]; known {
				return f.Name.Value
			}
		}
		break
	}
	return "unknown"
}
