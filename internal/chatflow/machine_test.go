package chatflow

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truethread/storefront/internal/intake"
)

type fakeSubmitter struct {
	submitted []intake.PreOrderRequest
	err       error
}

func (f *fakeSubmitter) SubmitPreOrderRequest(ctx context.Context, r intake.PreOrderRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.submitted = append(f.submitted, r)
	return "preorder_1", nil
}

func advance(t *testing.T, m *Machine, input string) Reply {
	t.Helper()
	reply, err := m.Advance(context.Background(), input)
	require.NoError(t, err)
	return reply
}

func TestMachine_HappyPath(t *testing.T) {
	sub := &fakeSubmitter{}
	m := NewMachine(sub, "+918147008048")

	assert.Equal(t, StepWelcome, m.Step())
	reply := m.Start()
	assert.Equal(t, StepName, reply.Step)

	reply = advance(t, m, "Asha")
	assert.Equal(t, StepPhone, reply.Step)
	assert.Contains(t, reply.Messages[0], "Asha")

	reply = advance(t, m, "9876543210")
	assert.Equal(t, StepOccasion, reply.Step)

	reply = advance(t, m, "Wedding")
	assert.Equal(t, StepMessage, reply.Step)

	reply = advance(t, m, "skip")
	assert.Equal(t, StepConfirm, reply.Step)
	// summary shows everything captured so far
	summary := reply.Messages[len(reply.Messages)-1]
	assert.Contains(t, summary, "Asha")
	assert.Contains(t, summary, "9876543210")
	assert.Contains(t, summary, "Wedding")

	reply = advance(t, m, "confirm")
	assert.Equal(t, StepComplete, reply.Step)
	assert.True(t, reply.Done)
	assert.Contains(t, reply.ShareURL, "https://wa.me/918147008048?text=")

	require.Len(t, sub.submitted, 1)
	got := sub.submitted[0]
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, "9876543210", got.Phone)
	assert.Equal(t, "Wedding", got.Occasion)
	assert.Equal(t, "", got.Message)
	assert.Equal(t, "seasonal", got.Type)
}

func TestMachine_MessageCapturedWhenNotSkipped(t *testing.T) {
	m := NewMachine(&fakeSubmitter{}, "+918147008048")
	m.Start()
	advance(t, m, "Asha")
	advance(t, m, "9876543210")
	advance(t, m, "Sangeet")
	advance(t, m, "Prefer pastel colors, needed by March 12")

	assert.Equal(t, "Prefer pastel colors, needed by March 12", m.Form().Message)
}

func TestMachine_SkipIsCaseInsensitive(t *testing.T) {
	m := NewMachine(&fakeSubmitter{}, "+918147008048")
	m.Start()
	advance(t, m, "Asha")
	advance(t, m, "9876543210")
	advance(t, m, "Wedding")
	advance(t, m, "SKIP")

	assert.Equal(t, "", m.Form().Message)
	assert.Equal(t, StepConfirm, m.Step())
}

func TestMachine_ConfirmRePromptsOnUnknownInput(t *testing.T) {
	sub := &fakeSubmitter{}
	m := NewMachine(sub, "+918147008048")
	m.Start()
	advance(t, m, "Asha")
	advance(t, m, "9876543210")
	advance(t, m, "Wedding")
	advance(t, m, "skip")

	reply := advance(t, m, "yes please")
	assert.Equal(t, StepConfirm, reply.Step)
	assert.Contains(t, reply.Messages[0], "'confirm'")
	assert.Empty(t, sub.submitted)
}

func TestMachine_CancelResetsFields(t *testing.T) {
	m := NewMachine(&fakeSubmitter{}, "+918147008048")
	m.Start()
	advance(t, m, "Asha")
	advance(t, m, "9876543210")
	advance(t, m, "Wedding")
	advance(t, m, "some details")

	reply := advance(t, m, "cancel")
	assert.Equal(t, StepName, reply.Step)
	assert.Equal(t, intake.PreOrderRequest{}, m.Form())
}

func TestMachine_SubmitFailureStaysInConfirm(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("store down")}
	m := NewMachine(sub, "+918147008048")
	m.Start()
	advance(t, m, "Asha")
	advance(t, m, "9876543210")
	advance(t, m, "Wedding")
	advance(t, m, "skip")

	reply, err := m.Advance(context.Background(), "confirm")
	assert.Error(t, err)
	assert.Equal(t, StepConfirm, reply.Step)
	assert.Equal(t, StepConfirm, m.Step())

	// a retry after the backend recovers still works
	sub.err = nil
	reply = advance(t, m, "confirm")
	assert.Equal(t, StepComplete, reply.Step)
}

func TestMachine_RejectsInputOutsideDialogue(t *testing.T) {
	m := NewMachine(&fakeSubmitter{}, "+918147008048")

	_, err := m.Advance(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNotAwaitingInput)
}
