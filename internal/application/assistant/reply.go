package assistant

import (
	"encoding/json"
	"strings"
)

// Mensajes que ve el usuario cuando el asistente no produce una respuesta útil.
const (
	MsgNoReply       = "Lo siento, no pude procesar tu mensaje. Por favor, intenta de nuevo."
	MsgEmptyReply    = "Lo siento, no recibí una respuesta válida. Por favor, intenta de nuevo."
	MsgNotConfigured = "Error de configuración: Webhook no configurado. Contacta al administrador."
	MsgConnection    = "Error de conexión con el servidor. Verifica tu conexión e intenta de nuevo."
	MsgGeneric       = "Lo siento, hubo un error al procesar tu mensaje. Por favor, intenta de nuevo."
)

// Claves que se buscan en una respuesta objeto, en orden de prioridad.
var (
	objectKeys = []string{"A output", "output", "response", "message", "text", "content"}
	itemKeys   = []string{"A output", "output", "response"}
)

// ExtractReply obtiene el texto de la respuesta del flujo. Acepta un objeto con alguna de
// las claves conocidas, un arreglo (se mira solo el primer elemento) o un string JSON.
// Solo cuentan valores string no vacíos. El resultado va recortado y nunca es vacío.
func ExtractReply(body []byte) (string, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", err
	}

	reply := ""
	switch v := data.(type) {
	case map[string]any:
		reply = firstString(v, objectKeys)
	case []any:
		if len(v) > 0 {
			switch item := v[0].(type) {
			case map[string]any:
				reply = firstString(item, itemKeys)
			case string:
				reply = item
			}
		}
	case string:
		reply = v
	}

	if reply == "" {
		return MsgNoReply, nil
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return MsgEmptyReply, nil
	}
	return reply, nil
}

func firstString(m map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
