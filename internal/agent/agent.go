package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"pizzabot/internal/adapters/in/tools"
	"pizzabot/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultMaxSteps = 8

	// maxHistory bounds the messages kept per session.
	maxHistory = 40
)

// ErrTooManySteps is returned when the model keeps calling tools past the step limit.
var ErrTooManySteps = errors.New("model did not answer within the step limit")

type Agent struct {
	model    Model
	toolbox  Toolbox
	sessions SessionStore
	turns    *turnLocks
	maxSteps int
	logger   zerolog.Logger
}

func New(model Model, toolbox Toolbox, sessions SessionStore, maxSteps int, logger zerolog.Logger) (*Agent, error) {
	if model == nil {
		return nil, errs.NewValueIsRequiredError("model")
	}
	if toolbox == nil {
		return nil, errs.NewValueIsRequiredError("toolbox")
	}
	if sessions == nil {
		return nil, errs.NewValueIsRequiredError("session store")
	}
	if maxSteps < 1 {
		return nil, errs.NewValueIsOutOfRangeError("max steps", maxSteps, 1, "unbounded")
	}

	return &Agent{
		model:    model,
		toolbox:  toolbox,
		sessions: sessions,
		turns:    newTurnLocks(),
		maxSteps: maxSteps,
		logger:   logger,
	}, nil
}

// Reply is the outcome of one turn.
type Reply struct {
	SessionID string
	Text      string
	OrderID   string
}

// Reply runs one user turn. An empty sessionID starts a new session. The model is
// called up to maxSteps times; each call that requests tools has them executed and
// their results appended before the next call. Turns on the same session run one
// after another within this Agent.
func (a *Agent) Reply(ctx context.Context, sessionID string, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, errs.NewValueIsRequiredError("message")
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	release, err := a.turns.acquire(ctx, sessionID)
	if err != nil {
		return Reply{}, err
	}
	defer release()

	session, err := a.sessions.Load(ctx, sessionID)
	if err != nil {
		return Reply{}, err
	}
	session.ID = sessionID

	log := a.logger.With().Str("session", sessionID).Logger()

	messages := make([]Message, 0, len(session.Messages)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: systemPrompt})
	messages = append(messages, session.Messages...)
	messages = append(messages, Message{Role: RoleUser, Content: withOrderHint(session.OrderID, text)})

	declarations := a.toolbox.Declarations()
	for step := 0; step < a.maxSteps; step++ {
		answer, err := a.model.Complete(ctx, messages, declarations)
		if err != nil {
			return Reply{}, err
		}

		if len(answer.ToolCalls) == 0 {
			session.Messages = trimHistory(append(session.Messages,
				Message{Role: RoleUser, Content: text},
				Message{Role: RoleAssistant, Content: answer.Content},
			))
			if err = a.sessions.Save(ctx, session); err != nil {
				return Reply{}, err
			}
			log.Debug().Int("steps", step+1).Msg("turn answered")
			return Reply{SessionID: sessionID, Text: answer.Content, OrderID: session.OrderID}, nil
		}

		messages = append(messages, answer)
		for _, call := range answer.ToolCalls {
			result := a.toolbox.Invoke(ctx, call.Name, json.RawMessage(call.Arguments))
			if started, isStart := result.Data.(tools.StartOrderPayload); isStart && result.OK {
				session.OrderID = started.OrderID
			}

			content, err := json.Marshal(result)
			if err != nil {
				return Reply{}, err
			}
			log.Debug().Str("tool", call.Name).Bool("ok", result.OK).Msg("tool called")
			messages = append(messages, Message{
				Role:       RoleTool,
				Content:    string(content),
				ToolCallID: call.ID,
				Name:       call.Name,
			})
		}
	}

	// Keep an order started during the failed turn.
	if err = a.sessions.Save(ctx, session); err != nil {
		log.Warn().Err(err).Msg("save session after step limit")
	}
	return Reply{}, ErrTooManySteps
}

func trimHistory(messages []Message) []Message {
	if len(messages) <= maxHistory {
		return messages
	}
	return append([]Message(nil), messages[len(messages)-maxHistory:]...)
}
