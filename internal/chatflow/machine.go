// Package chatflow implements the multi-step pre-order conversation run by
// the chat widget. The dialogue collects one field per turn, shows a summary,
// and submits through the intake service on an explicit "confirm".
package chatflow

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/truethread/storefront/internal/intake"
)

// Step is the conversation state. Transitions only move forward, except the
// explicit cancel which restarts field collection at StepName.
type Step int

const (
	StepWelcome Step = iota
	StepName
	StepPhone
	StepOccasion
	StepMessage
	StepConfirm
	StepComplete
)

var stepNames = map[Step]string{
	StepWelcome:  "welcome",
	StepName:     "name",
	StepPhone:    "phone",
	StepOccasion: "occasion",
	StepMessage:  "message",
	StepConfirm:  "confirm",
	StepComplete: "complete",
}

func (s Step) String() string {
	return stepNames[s]
}

// next is the forward transition table for the field-collecting states.
var next = map[Step]Step{
	StepName:     StepPhone,
	StepPhone:    StepOccasion,
	StepOccasion: StepMessage,
	StepMessage:  StepConfirm,
}

// ErrNotAwaitingInput is returned when Advance is called in a state that does
// not consume user input (welcome before Start, or complete).
var ErrNotAwaitingInput = errors.New("chatflow: conversation is not awaiting input")

// Submitter is the slice of the intake service the conversation needs.
type Submitter interface {
	SubmitPreOrderRequest(ctx context.Context, r intake.PreOrderRequest) (string, error)
}

// Reply is what the widget renders after each turn.
type Reply struct {
	Messages []string
	Step     Step
	// ShareURL is the user-initiated WhatsApp deep link, set once the
	// request has been submitted. It is independent of the server's own
	// best-effort notification.
	ShareURL string
	Done     bool
}

// Machine drives a single pre-order conversation. It is owned by one session
// and driven entirely by successive user inputs; there is no timeout or idle
// cancellation.
type Machine struct {
	step       Step
	form       intake.PreOrderRequest
	submitter  Submitter
	adminPhone string
}

func NewMachine(submitter Submitter, adminPhone string) *Machine {
	return &Machine{step: StepWelcome, submitter: submitter, adminPhone: adminPhone}
}

func (m *Machine) Step() Step {
	return m.step
}

// Form returns the fields captured so far.
func (m *Machine) Form() intake.PreOrderRequest {
	return m.form
}

// Start emits the greeting and moves to name collection. Calling it twice
// restarts the conversation.
func (m *Machine) Start() Reply {
	m.form = intake.PreOrderRequest{}
	m.step = StepName
	return Reply{
		Messages: []string{
			"Hello! 👋 Welcome to our Seasonal Pre-Order service. I'm here to help you reserve your perfect outfit for weddings and special events! ✨",
			"What's your name?",
		},
		Step: m.step,
	}
}

// Advance consumes one user input and returns the bot's reply.
func (m *Machine) Advance(ctx context.Context, input string) (Reply, error) {
	input = strings.TrimSpace(input)

	switch m.step {
	case StepName:
		m.form.Name = input
		m.step = next[m.step]
		return Reply{
			Messages: []string{
				fmt.Sprintf("Nice to meet you, %s! 🌟", input),
				"Could you please share your phone number? We'll use this to contact you with customized options.",
			},
			Step: m.step,
		}, nil

	case StepPhone:
		m.form.Phone = input
		m.step = next[m.step]
		return Reply{
			Messages: []string{
				"Perfect! Got your number. 📱",
				"What's the special occasion? (e.g., Wedding, Reception, Sangeet, Anniversary)",
			},
			Step: m.step,
		}, nil

	case StepOccasion:
		m.form.Occasion = input
		m.step = next[m.step]
		return Reply{
			Messages: []string{
				fmt.Sprintf("%s - How wonderful! 💐", input),
				"Any specific requirements? Tell me about preferred colors, styles, date, or anything else you'd like us to know. (Type 'skip' if none)",
			},
			Step: m.step,
		}, nil

	case StepMessage:
		if strings.EqualFold(input, "skip") {
			m.form.Message = ""
		} else {
			m.form.Message = input
		}
		m.step = next[m.step]
		return Reply{
			Messages: []string{
				"Great! Let me confirm your pre-order request:",
				m.summary(),
			},
			Step: m.step,
		}, nil

	case StepConfirm:
		switch strings.ToLower(input) {
		case "confirm":
			return m.submit(ctx)
		case "cancel":
			m.form = intake.PreOrderRequest{}
			m.step = StepName
			return Reply{
				Messages: []string{"Let's start over! What's your name?"},
				Step:     m.step,
			}, nil
		default:
			return Reply{
				Messages: []string{"Please type 'confirm' to submit your request or 'cancel' to start over."},
				Step:     m.step,
			}, nil
		}

	default:
		return Reply{Step: m.step}, ErrNotAwaitingInput
	}
}

func (m *Machine) summary() string {
	var sb strings.Builder
	sb.WriteString("📋 *Summary*\n\n")
	fmt.Fprintf(&sb, "👤 Name: %s\n", m.form.Name)
	fmt.Fprintf(&sb, "📱 Phone: %s\n", m.form.Phone)
	fmt.Fprintf(&sb, "🎉 Occasion: %s\n", m.form.Occasion)
	if m.form.Message != "" {
		fmt.Fprintf(&sb, "💬 Details: %s\n", m.form.Message)
	}
	sb.WriteString("\nType 'confirm' to submit or 'cancel' to start over.")
	return sb.String()
}

func (m *Machine) submit(ctx context.Context) (Reply, error) {
	req := m.form
	req.Type = "seasonal"
	if _, err := m.submitter.SubmitPreOrderRequest(ctx, req); err != nil {
		// stay in confirm so the user can retry or cancel
		return Reply{
			Messages: []string{"❌ Sorry, there was an error submitting your request. Please try again or contact us directly."},
			Step:     m.step,
		}, err
	}
	m.step = StepComplete
	return Reply{
		Messages: []string{"✅ Success! Opening WhatsApp to send your request..."},
		Step:     m.step,
		ShareURL: m.shareURL(),
		Done:     true,
	}, nil
}

// shareURL builds the wa.me deep link pre-filled with the request summary.
func (m *Machine) shareURL() string {
	var sb strings.Builder
	sb.WriteString("🎊 *New Pre-Order Request*\n\n")
	fmt.Fprintf(&sb, "👤 Name: %s\n", m.form.Name)
	fmt.Fprintf(&sb, "📱 Phone: %s\n", m.form.Phone)
	fmt.Fprintf(&sb, "🎉 Occasion: %s\n", m.form.Occasion)
	if m.form.Message != "" {
		fmt.Fprintf(&sb, "💬 Details: %s\n", m.form.Message)
	}
	fmt.Fprintf(&sb, "🕒 Time: %s", time.Now().Format("02/01/2006, 15:04:05"))

	phone := strings.TrimPrefix(m.adminPhone, "+")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(sb.String()))
}
