package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexNumber es un campo numérico que el cliente puede enviar como número JSON o como string
// (los inputs de formulario suelen viajar como texto). Guarda el texto tal cual; null = "".
type FlexNumber string

// UnmarshalJSON acepta 12, 12.5, "12", "" y null.
func (f *FlexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("valor numérico inválido: %s", string(b))
	}
	*f = FlexNumber(n.String())
	return nil
}

func (f FlexNumber) String() string { return string(f) }
