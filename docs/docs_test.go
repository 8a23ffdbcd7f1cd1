package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestReadDoc_ListsPaymentRoutes(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("reading registered doc: %v", err)
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("registered doc is not valid json: %v", err)
	}

	cases := map[string]string{
		"/payments/pix":                         "post",
		"/rpc/payment.createPix":                "post",
		"/payments/pix/{transaction_id}/status": "get",
		"/rpc/payment.checkStatus":              "get",
		"/payments/attempts/{transaction_id}":   "get",
	}
	for path, method := range cases {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Fatalf("expected %s %s in swagger doc", method, path)
		}
	}
}
