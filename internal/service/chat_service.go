package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"curso_backend/internal/config"
	"curso_backend/internal/curriculum"
	"curso_backend/internal/model"
	"curso_backend/internal/repository"
	"curso_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const chatHistoryWindow = 20

// Formato de la API REST de Gemini (generateContent / streamGenerateContent).
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type ChatService struct {
	Curriculum *CurriculumService
	Messages   *repository.ChatRepository
	Cfg        config.AIConfig
	HTTPClient *http.Client
}

func NewChatService(curriculumSvc *CurriculumService, messages *repository.ChatRepository, cfg config.AIConfig) *ChatService {
	return &ChatService{
		Curriculum: curriculumSvc,
		Messages:   messages,
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// NewSessionID genera el identificador de una conversación del panel de chat.
func (s *ChatService) NewSessionID() string {
	return uuid.NewString()
}

// systemPrompt arma la instrucción del asistente con el texto plano de la
// lección abierta, si la hay.
func (s *ChatService) systemPrompt(lang, topicID string) string {
	base := "Eres el asistente del curso. Responde en el idioma del alumno, de forma breve y centrada en el contenido del curso."
	if lang == "pt" {
		base = "Você é o assistente do curso. Responda no idioma do aluno, de forma breve e focada no conteúdo do curso."
	}
	if topicID == "" {
		return base
	}
	topic, err := s.Curriculum.GetTopic(lang, topicID)
	if err != nil {
		return base
	}
	return fmt.Sprintf("%s\n\nLección abierta:\n%s", base, curriculum.PlainText(topic))
}

func (s *ChatService) buildRequest(lang, topicID string, history []model.ChatMessage, prompt string) *geminiRequest {
	req := &geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: s.systemPrompt(lang, topicID)}},
		},
	}
	for _, h := range history {
		req.Contents = append(req.Contents, geminiContent{
			Role:  h.Role,
			Parts: []geminiPart{{Text: h.Content}},
		})
	}
	req.Contents = append(req.Contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: prompt}},
	})
	return req
}

// AskStream envía la pregunta a Gemini y devuelve la respuesta por trozos.
// Persiste la pregunta al entrar y la respuesta completa al cerrar el
// stream; un fallo de persistencia no corta la conversación.
func (s *ChatService) AskStream(ctx context.Context, userID uint, lang, topicID, sessionID, prompt string) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	history, err := s.Messages.History(userID, sessionID, chatHistoryWindow)
	if err != nil {
		logger.Log.Warn("fallo leyendo el historial de chat, se continúa sin él",
			zap.Uint("userID", userID), zap.String("sessionID", sessionID), zap.Error(err))
		history = nil
	}

	if err := s.Messages.Save(&model.ChatMessage{
		UserID:    userID,
		SessionID: sessionID,
		TopicID:   topicID,
		Role:      "user",
		Content:   prompt,
	}); err != nil {
		logger.Log.Warn("fallo guardando la pregunta del chat",
			zap.Uint("userID", userID), zap.String("sessionID", sessionID), zap.Error(err))
	}

	body, _ := json.Marshal(s.buildRequest(lang, topicID, history, prompt))

	go func() {
		defer close(out)
		defer close(errChan)

		url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s",
			strings.TrimRight(s.Cfg.BaseURL, "/"), s.Cfg.Model, s.Cfg.APIKey)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			errChan <- err
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.HTTPClient.Do(req)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(resp.Body)
			errChan <- fmt.Errorf("gemini respondió %d: %s", resp.StatusCode, string(raw))
			return
		}

		var full strings.Builder
		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var chunk geminiResponse
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				continue
			}
			if chunk.Error != nil {
				errChan <- fmt.Errorf("gemini: %s", chunk.Error.Message)
				return
			}
			for _, cand := range chunk.Candidates {
				for _, part := range cand.Content.Parts {
					if part.Text != "" {
						full.WriteString(part.Text)
						out <- part.Text
					}
				}
			}
		}

		if full.Len() > 0 {
			if err := s.Messages.Save(&model.ChatMessage{
				UserID:    userID,
				SessionID: sessionID,
				TopicID:   topicID,
				Role:      "model",
				Content:   full.String(),
			}); err != nil {
				logger.Log.Warn("fallo guardando la respuesta del chat",
					zap.Uint("userID", userID), zap.String("sessionID", sessionID), zap.Error(err))
			}
		}
	}()

	return out, errChan
}

// History devuelve las últimas rondas de la sesión en orden cronológico.
func (s *ChatService) History(userID uint, sessionID string) ([]model.ChatMessage, error) {
	return s.Messages.History(userID, sessionID, chatHistoryWindow)
}
