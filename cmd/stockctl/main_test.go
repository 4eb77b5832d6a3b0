package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI responde con data fija y guarda la última petición recibida.
func fakeAPI(t *testing.T, data string, last *map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if last != nil {
			_ = json.Unmarshal(raw, last)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCLI_Products(t *testing.T) {
	var req map[string]interface{}
	srv := fakeAPI(t, `{"data":{"products":{"totalCount":1,"currentPage":1,"totalPages":1,
		"products":[{"id":"P-1003","name":"M8 Nut","sku":"NUT-08-200","warehouse":"PNQ-C","stock":80,"demand":80,"status":"Low"}]}}}`, &req)

	var out, errOut bytes.Buffer
	code := cli([]string{"-url", srv.URL, "products", "-status", "low", "-limit", "5"}, &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "P-1003")
	assert.Contains(t, out.String(), "página 1/1, 1 productos")

	vars := req["variables"].(map[string]interface{})
	assert.Equal(t, "low", vars["status"])
	assert.Equal(t, float64(5), vars["limit"])
}

func TestCLI_Transfer(t *testing.T) {
	var req map[string]interface{}
	srv := fakeAPI(t, `{"data":{"transferStock":{"id":"P-1001","warehouse":"PNQ-C","stock":180,"demand":120,"status":"Healthy"}}}`, &req)

	var out, errOut bytes.Buffer
	code := cli([]string{"-url", srv.URL, "transfer", "-id", "P-1001", "-from", "BLR-A", "-to", "PNQ-C", "-quantity", "5"}, &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "PNQ-C")
	vars := req["variables"].(map[string]interface{})
	assert.Equal(t, "BLR-A", vars["from"])
	assert.Equal(t, float64(5), vars["quantity"])
}

func TestCLI_ErrorGraphQL(t *testing.T) {
	srv := fakeAPI(t, `{"data":null,"errors":[{"message":"Product not found"}]}`, nil)

	var out, errOut bytes.Buffer
	code := cli([]string{"-url", srv.URL, "demand", "-id", "P-0000", "-demand", "3"}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "Product not found")
}

func TestCLI_ErrorDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var out, errOut bytes.Buffer
	code := cli([]string{"-url", url, "warehouses"}, &out, &errOut)
	assert.Equal(t, 3, code)
}

func TestCLI_Uso(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"sin comando", nil},
		{"comando desconocido", []string{"foo"}},
		{"demand sin id", []string{"demand", "-demand", "3"}},
		{"transfer incompleto", []string{"transfer", "-id", "P-1"}},
		{"flag inválido", []string{"kpis", "-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			assert.Equal(t, 2, cli(tt.args, &out, &errOut))
		})
	}
}
