package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faro-api/internal/application/assistant"
)

func TestExtractReply(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"clave A output", `{"A output":"hola","output":"no"}`, "hola"},
		{"clave output", `{"output":"  desde output  "}`, "desde output"},
		{"clave response", `{"response":"r"}`, "r"},
		{"clave message", `{"message":"m"}`, "m"},
		{"clave text", `{"text":"t"}`, "t"},
		{"clave content", `{"content":"c"}`, "c"},
		{"output vacío cae a la siguiente clave", `{"output":"","text":"t"}`, "t"},
		{"arreglo con objeto", `[{"output":"primero"},{"output":"segundo"}]`, "primero"},
		{"arreglo con string", `["hola"]`, "hola"},
		{"arreglo ignora message", `[{"message":"m"}]`, assistant.MsgNoReply},
		{"arreglo vacío", `[]`, assistant.MsgNoReply},
		{"string directo", `"directo"`, "directo"},
		{"objeto sin claves conocidas", `{"foo":"bar"}`, assistant.MsgNoReply},
		{"valor no string", `{"output":{"x":1}}`, assistant.MsgNoReply},
		{"solo espacios", `{"output":"   "}`, assistant.MsgEmptyReply},
		{"null", `null`, assistant.MsgNoReply},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := assistant.ExtractReply([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractReply_JSONInvalido(t *testing.T) {
	_, err := assistant.ExtractReply([]byte("<html>"))
	assert.Error(t, err)
}
