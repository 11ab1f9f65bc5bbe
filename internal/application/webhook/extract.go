// Package webhook extrae mensaje e identificador de conversación de payloads entrantes
// (asistente conversacional y pasarela de WhatsApp). No forma parte del proceso de exports.
package webhook

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/articulos-centros/internal/application/dto"
)

// Adapter define los campos a probar, en orden, para cada dato extraído.
// Un nombre con puntos ("text.body") recorre objetos anidados.
type Adapter struct {
	Name               string
	MessageFields      []string
	ConversationFields []string
	// ContextField se usa como prefijo del identificador sintético cuando no hay
	// ningún campo de conversación.
	ContextField string
	Now          func() time.Time
}

// AssistantAdapter payloads del asistente conversacional.
func AssistantAdapter() Adapter {
	return Adapter{
		Name:               "assistant",
		MessageFields:      []string{"message", "text", "input", "query", "prompt", "content"},
		ConversationFields: []string{"conversation_id", "conversationId", "thread_id", "threadId", "session_id", "sessionId"},
		ContextField:       "user_id",
		Now:                time.Now,
	}
}

// WhatsAppAdapter payloads de la pasarela de WhatsApp (formulario tipo Twilio o JSON de la Cloud API).
func WhatsAppAdapter() Adapter {
	return Adapter{
		Name:               "whatsapp",
		MessageFields:      []string{"Body", "body", "text.body", "message", "text"},
		ConversationFields: []string{"WaId", "wa_id", "From", "from", "conversation_id"},
		ContextField:       "ProfileName",
		Now:                time.Now,
	}
}

// Extract aplica el adaptador a un payload arbitrario. Gana el primer campo presente con
// valor no vacío; si no hay identificador se sintetiza "<contexto|anon>-<unix>".
func (a Adapter) Extract(payload map[string]any) dto.WebhookExtractionResponse {
	out := dto.WebhookExtractionResponse{
		Message:        firstValue(payload, a.MessageFields),
		ConversationID: firstValue(payload, a.ConversationFields),
	}
	if out.ConversationID == "" {
		out.ConversationID = a.fallbackID(payload)
	}
	return out
}

func (a Adapter) fallbackID(payload map[string]any) string {
	prefix := ""
	if a.ContextField != "" {
		prefix = firstValue(payload, []string{a.ContextField})
	}
	if prefix == "" {
		prefix = "anon"
	}
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return fmt.Sprintf("%s-%d", prefix, now().Unix())
}

func firstValue(payload map[string]any, fields []string) string {
	for _, f := range fields {
		v, ok := lookup(payload, f)
		if !ok {
			continue
		}
		if s := stringify(v); s != "" {
			return s
		}
	}
	return ""
}

func lookup(payload map[string]any, path string) (any, bool) {
	var cur any = payload
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// stringify convierte escalares a texto; objetos y listas no cuentan como valor.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
