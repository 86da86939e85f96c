package mail

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"tripmate/internal/domain"
)

//go:embed receipt.html
var receiptHTML string

var receiptTmpl = template.Must(
	template.New("receipt").Funcs(template.FuncMap{
		"money": func(v any) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.2f", f)
			}
			return fmt.Sprint(v)
		},
	}).Parse(receiptHTML),
)

// RenderReceipt renders the booking-confirmation body from a recorded
// transaction. The breakdown inside tx is already in presentation form.
func RenderReceipt(tx domain.Transaction) (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, tx); err != nil {
		return "", err
	}
	return buf.String(), nil
}
