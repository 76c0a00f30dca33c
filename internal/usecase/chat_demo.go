package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/zapatende/landing-api/internal/infra/integration/openai"
)

// Resposta amigável quando o modelo falha: o visitante nunca vê erro técnico.
const ChatFallbackMessage = "Opa, tive um probleminha técnico aqui 😅 Pode tentar de novo em um instante? Se preferir, chama a gente direto no WhatsApp que a equipe responde rapidinho!"

const chatSystemPrompt = "Você é a Zapi, atendente virtual da ZapAtende, um SaaS brasileiro que " +
	"automatiza o atendimento de pequenos negócios no WhatsApp com IA. Responda em português, " +
	"de forma curta, simpática e vendedora. Se perguntarem preço, diga que os planos começam " +
	"em R$97/mês e convide para o teste grátis de 7 dias. Nunca invente funcionalidades."

type ChatDemoUseCase struct {
	Model ChatModel
}

func NewChatDemoUseCase(model ChatModel) *ChatDemoUseCase {
	return &ChatDemoUseCase{Model: model}
}

// Execute nunca retorna erro: qualquer falha vira a resposta de fallback.
func (uc *ChatDemoUseCase) Execute(ctx context.Context, history []openai.Message, message string) string {
	if uc.Model == nil {
		return ChatFallbackMessage
	}

	messages := make([]openai.Message, 0, len(history)+2)
	messages = append(messages, openai.Message{Role: "system", Content: chatSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, openai.Message{Role: "user", Content: message})

	reply, err := uc.Model.Complete(ctx, messages)
	if err != nil {
		log.Printf("⚠️ Chat demo: falha no modelo: %v", err)
		return ChatFallbackMessage
	}
	if strings.TrimSpace(reply) == "" {
		return ChatFallbackMessage
	}
	return reply
}
