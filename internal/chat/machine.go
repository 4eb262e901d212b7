package chat

import (
	"strings"

	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

// Conversation steps. The client holds the step and sends it back with every
// message; the server keeps no conversation state.
const (
	StepGreeting          = "greeting"
	StepMenu              = "menu"
	StepSelectService     = "select_service"
	StepFetchAppointments = "fetch_appointments"
	StepFetchCancel       = "fetch_cancel_appointments"
	StepAppointmentForm   = "appointment_form"
	StepVerifyOTP         = "verify_otp"
)

const (
	welcomeReply = "👋 Welcome to Consulting Services!\n\nWhat would you like to do?\n1️⃣ Book an appointment\n2️⃣ Reschedule appointment\n3️⃣ Cancel appointment"
	bookReply    = "📅 Great! Let me help you book an appointment.\n\nSelect a service:"
	updateReply  = "✏️ To reschedule, I need your email address. Please provide it:"
	cancelReply  = "❌ To cancel, I need your email address. Please provide it:"
)

// Reply is what the bot hands back to the client after each message.
type Reply struct {
	Response string         `json:"response"`
	NextStep string         `json:"nextStep"`
	Data     map[string]any `json:"data"`
}

// Machine maps a user message plus the client-held step onto the next reply.
type Machine struct {
	services []models.Service
}

func New(services []models.Service) *Machine {
	return &Machine{services: services}
}

// Advance runs one transition. Menu choices are only honored from the menu
// (or greeting / unset) step; any other step falls back to the welcome menu.
// Steps like select_service are driven by the client against the booking
// endpoints directly, not through the chat transition table.
func (m *Machine) Advance(message, step string) Reply {
	msg := strings.ToLower(strings.TrimSpace(message))
	atMenu := step == "" || step == StepMenu || step == StepGreeting

	switch {
	case atMenu && (msg == "1" || strings.Contains(msg, "book")):
		return Reply{
			Response: bookReply,
			NextStep: StepSelectService,
			Data:     map[string]any{"services": m.services},
		}
	case atMenu && (msg == "2" || strings.Contains(msg, "reschedule")):
		return Reply{
			Response: updateReply,
			NextStep: StepFetchAppointments,
			Data:     map[string]any{},
		}
	case atMenu && (msg == "3" || strings.Contains(msg, "cancel")):
		return Reply{
			Response: cancelReply,
			NextStep: StepFetchCancel,
			Data:     map[string]any{},
		}
	default:
		return Reply{
			Response: welcomeReply,
			NextStep: StepMenu,
			Data:     map[string]any{},
		}
	}
}
