// Package client es el espejo del lado cliente: habla con el endpoint GraphQL del
// dashboard y ofrece vistas previas locales con la misma lógica de consulta del servidor.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultURL endpoint usado cuando no se configura GRAPHQL_URL.
const DefaultURL = "http://localhost:4000/"

// allPageSize tamaño de página usado por AllProducts.
const allPageSize = 100

// Client cliente GraphQL del dashboard de inventario.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New construye el cliente. endpoint vacío usa DefaultURL; timeout <= 0 no limita.
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultURL
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// TransportError fallo de red o respuesta HTTP no 2xx.
type TransportError struct {
	StatusCode int // 0 si no hubo respuesta
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("graphql: transporte: %v", e.Err)
	}
	return fmt.Sprintf("graphql: HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GraphQLError el servidor respondió con errores; Message es el primero tal cual.
type GraphQLError struct {
	Message  string
	Messages []string
}

func (e *GraphQLError) Error() string { return e.Message }

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// do envía la operación y decodifica data en out.
func (c *Client) do(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("graphql: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var env response
	if err := json.Unmarshal(raw, &env); err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Body: string(raw), Err: err}
	}
	if len(env.Errors) > 0 {
		gerr := &GraphQLError{Message: env.Errors[0].Message}
		for _, e := range env.Errors {
			gerr.Messages = append(gerr.Messages, e.Message)
		}
		return gerr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("graphql: deserializar data: %w", err)
	}
	return nil
}
